package query

// SearchFilters builds one case-insensitive substring filter per field for a
// free-text search term. The returned filters are meant to be OR-combined:
// the term must appear in at least one of the fields. Literal % and _ inside
// the term are not escaped.
func SearchFilters(term string, fields []string) []Filter {
	if term == "" || len(fields) == 0 {
		return nil
	}

	pattern := "%" + term + "%"
	filters := make([]Filter, 0, len(fields))
	for _, field := range fields {
		filters = append(filters, Filter{
			Field:    field,
			Operator: OpILike,
			Value:    ScalarValue(pattern),
		})
	}
	return filters
}
