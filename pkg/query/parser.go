package query

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// operatorSeparator splits a query key into field and operator, e.g.
// "created_at__gte". A key without the separator means equality.
const operatorSeparator = "__"

// reservedParams are consumed by the pagination/search layers and never
// treated as filters.
var reservedParams = map[string]struct{}{
	"filters":    {},
	"page":       {},
	"size":       {},
	"sort_by":    {},
	"sort_order": {},
	"search":     {},
}

// Parser turns raw query parameters into Filter predicates.
//
// By default parameters referencing unknown fields or operators are silently
// dropped, matching the permissive list-endpoint behavior clients already
// rely on. Strict mode turns those into errors instead.
type Parser struct {
	Strict bool
}

// ParseFilters parses params into filters, admitting only fields present in
// the FieldSet. Keys are visited in sorted order so the result is
// deterministic. Only the first value of a repeated parameter is considered.
func (p Parser) ParseFilters(params map[string][]string, fields FieldSet) ([]Filter, error) {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var filters []Filter
	for _, key := range keys {
		if _, reserved := reservedParams[key]; reserved {
			continue
		}

		raw := first(params[key])
		if raw == "" {
			continue
		}

		field, op := splitKey(key)

		if !fields.Contains(field) {
			if p.Strict {
				return nil, fmt.Errorf("unknown filter field %q", field)
			}
			continue
		}

		if !op.Supported() {
			if p.Strict {
				return nil, fmt.Errorf("unsupported filter operator %q for field %q", op, field)
			}
			continue
		}

		value, ok := parseValue(raw, op)
		if !ok {
			continue
		}

		filters = append(filters, Filter{Field: field, Operator: op, Value: value})
	}

	return filters, nil
}

// ParseFilters parses with the default permissive policy.
func ParseFilters(params map[string][]string, fields FieldSet) []Filter {
	filters, _ := Parser{}.ParseFilters(params, fields)
	return filters
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func splitKey(key string) (string, Operator) {
	if idx := strings.Index(key, operatorSeparator); idx >= 0 {
		return key[:idx], Operator(key[idx+len(operatorSeparator):])
	}
	return key, OpEq
}

// parseValue coerces a raw string value into the shape the operator expects.
// A false return drops the filter entirely.
func parseValue(raw string, op Operator) (Value, bool) {
	switch op {
	case OpIn, OpNotIn:
		return ListValue(splitList(raw)), true

	case OpBetween, OpNotBetween:
		parts := strings.Split(raw, ",")
		if len(parts) != 2 {
			return Value{}, false
		}
		lo, hi := parseRange(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
		return RangeValue(lo, hi), true
	}

	switch strings.ToLower(raw) {
	case "true":
		return ScalarValue(true), true
	case "false":
		return ScalarValue(false), true
	case "null", "none":
		// The null literal cannot express IS NULL through this shortcut;
		// the filter is dropped, mirroring the long-standing API behavior.
		return Value{}, false
	}

	return ScalarValue(parseScalar(raw)), true
}

// splitList splits a comma-separated value, trimming whitespace and dropping
// empty tokens. No type coercion is applied to list members.
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// parseRange coerces both bounds numerically: float64 when either token
// carries a decimal point, int64 otherwise. If either bound fails to parse,
// both fall back to the raw strings.
func parseRange(lo, hi string) (any, any) {
	if strings.Contains(lo, ".") || strings.Contains(hi, ".") {
		fl, errLo := strconv.ParseFloat(lo, 64)
		fh, errHi := strconv.ParseFloat(hi, 64)
		if errLo == nil && errHi == nil {
			return fl, fh
		}
	} else {
		il, errLo := strconv.ParseInt(lo, 10, 64)
		ih, errHi := strconv.ParseInt(hi, 10, 64)
		if errLo == nil && errHi == nil {
			return il, ih
		}
	}
	return lo, hi
}

// parseScalar attempts numeric coercion, keeping the string on failure.
func parseScalar(raw string) any {
	if strings.Contains(raw, ".") {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	} else if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	return raw
}
