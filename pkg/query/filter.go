// Package query implements the shared filtering and pagination engine used
// by every list endpoint: a small query-string DSL parsed into typed Filter
// predicates, compiled onto a GORM query and executed with offset pagination.
package query

// Operator is the closed set of filter operators accepted by the DSL.
type Operator string

const (
	OpEq         Operator = "=="
	OpNe         Operator = "!="
	OpGt         Operator = ">"
	OpGte        Operator = ">="
	OpLt         Operator = "<"
	OpLte        Operator = "<="
	OpIn         Operator = "in"
	OpNotIn      Operator = "not in"
	OpIs         Operator = "is"
	OpIsNot      Operator = "is not"
	OpLike       Operator = "like"
	OpILike      Operator = "ilike"
	OpBetween    Operator = "between"
	OpNotBetween Operator = "not between"
)

var supportedOperators = map[Operator]struct{}{
	OpEq: {}, OpNe: {}, OpGt: {}, OpGte: {}, OpLt: {}, OpLte: {},
	OpIn: {}, OpNotIn: {}, OpIs: {}, OpIsNot: {},
	OpLike: {}, OpILike: {}, OpBetween: {}, OpNotBetween: {},
}

// Supported reports whether op is part of the operator vocabulary.
func (op Operator) Supported() bool {
	_, ok := supportedOperators[op]
	return ok
}

// ValueKind discriminates the shape of a filter value.
type ValueKind int

const (
	KindScalar ValueKind = iota
	KindList
	KindRange
)

// Value is a closed tagged variant: a scalar (string, int64, float64 or
// bool), a list of strings, or an ordered two-element range. The shape is
// fixed at parse time so the compiler can switch exhaustively instead of
// inferring it from the operator.
type Value struct {
	Kind   ValueKind
	Scalar any
	List   []string
	Lo, Hi any
}

func ScalarValue(v any) Value {
	return Value{Kind: KindScalar, Scalar: v}
}

func ListValue(items []string) Value {
	return Value{Kind: KindList, List: items}
}

func RangeValue(lo, hi any) Value {
	return Value{Kind: KindRange, Lo: lo, Hi: hi}
}

// Filter is an immutable (field, operator, value) predicate specification.
// It carries no reference to the entity it will be applied to; binding
// happens in Apply against a FieldSet.
type Filter struct {
	Field    string
	Operator Operator
	Value    Value
}
