package query

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Combine selects how a set of filters is joined.
type Combine int

const (
	CombineAnd Combine = iota
	CombineOr
)

// Apply compiles filters onto tx. With CombineAnd every predicate is chained
// as a conjunction; with CombineOr the predicates form one parenthesised
// disjunction. Apply may be called repeatedly on the same query; the usual
// pattern is an AND block of explicit filters followed by an OR block of
// search filters, yielding (a AND b) AND (x OR y).
//
// Every field is resolved through the FieldSet before touching SQL. Fields
// were already allow-listed at parse time, so an unresolvable field here is
// a programming error, not user input.
func Apply(tx *gorm.DB, filters []Filter, fields FieldSet, combine Combine) (*gorm.DB, error) {
	if len(filters) == 0 {
		return tx, nil
	}

	if combine == CombineOr {
		exprs := make([]clause.Expression, 0, len(filters))
		for _, f := range filters {
			cond, args, err := compile(f, fields)
			if err != nil {
				return nil, err
			}
			exprs = append(exprs, clause.Expr{SQL: cond, Vars: args})
		}
		// The AndConditions wrapper keeps the OR group as one unit, so the
		// parens survive even when the group is the sole WHERE condition.
		return tx.Where(clause.AndConditions{
			Exprs: []clause.Expression{clause.OrConditions{Exprs: exprs}},
		}), nil
	}

	for _, f := range filters {
		cond, args, err := compile(f, fields)
		if err != nil {
			return nil, err
		}
		tx = tx.Where(cond, args...)
	}
	return tx, nil
}

// compile maps one filter to a SQL condition. Column names come from the
// FieldSet, never from the filter itself.
func compile(f Filter, fields FieldSet) (string, []any, error) {
	column, ok := fields.Resolve(f.Field)
	if !ok {
		return "", nil, fmt.Errorf("query: unresolvable field %q", f.Field)
	}

	switch f.Operator {
	case OpEq, OpNe, OpGt, OpGte, OpLt, OpLte, OpIs, OpIsNot, OpLike, OpILike:
		if f.Value.Kind != KindScalar {
			return "", nil, fmt.Errorf("query: operator %q requires a scalar value", f.Operator)
		}
	case OpIn, OpNotIn:
		if f.Value.Kind != KindList {
			return "", nil, fmt.Errorf("query: operator %q requires a list value", f.Operator)
		}
	case OpBetween, OpNotBetween:
		if f.Value.Kind != KindRange {
			return "", nil, fmt.Errorf("query: operator %q requires a range value", f.Operator)
		}
	}

	switch f.Operator {
	case OpEq:
		return column + " = ?", []any{f.Value.Scalar}, nil
	case OpNe:
		return column + " <> ?", []any{f.Value.Scalar}, nil
	case OpGt:
		return column + " > ?", []any{f.Value.Scalar}, nil
	case OpGte:
		return column + " >= ?", []any{f.Value.Scalar}, nil
	case OpLt:
		return column + " < ?", []any{f.Value.Scalar}, nil
	case OpLte:
		return column + " <= ?", []any{f.Value.Scalar}, nil
	case OpIn:
		if len(f.Value.List) == 0 {
			// membership in the empty set never matches
			return "1 = 0", nil, nil
		}
		return column + " IN ?", []any{f.Value.List}, nil
	case OpNotIn:
		if len(f.Value.List) == 0 {
			return "1 = 1", nil, nil
		}
		return column + " NOT IN ?", []any{f.Value.List}, nil
	case OpIs:
		// null-safe identity, distinct from plain equality
		return column + " IS NOT DISTINCT FROM ?", []any{f.Value.Scalar}, nil
	case OpIsNot:
		return column + " IS DISTINCT FROM ?", []any{f.Value.Scalar}, nil
	case OpLike:
		return column + " LIKE ?", []any{f.Value.Scalar}, nil
	case OpILike:
		return column + " ILIKE ?", []any{f.Value.Scalar}, nil
	case OpBetween:
		return column + " BETWEEN ? AND ?", []any{f.Value.Lo, f.Value.Hi}, nil
	case OpNotBetween:
		return column + " NOT BETWEEN ? AND ?", []any{f.Value.Lo, f.Value.Hi}, nil
	}

	// unreachable when filters come from the parser; kept as an invariant check
	return "", nil, fmt.Errorf("query: unsupported operator %q", f.Operator)
}
