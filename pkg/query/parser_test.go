package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alertFields() FieldSet {
	return NewFieldSet("id", "title", "message", "status", "value", "is_estimated", "created_at", "updated_at")
}

func TestParseFilters_AllowListEnforcement(t *testing.T) {
	fields := alertFields()

	tests := []struct {
		name  string
		query string
	}{
		{"plain unknown field", "secret=value"},
		{"unknown field with operator", "secret__gte=10"},
		{"unknown field with in", "secret__in=a,b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			filters := ParseFilters(values, fields)
			assert.Empty(t, filters)
		})
	}
}

func TestParseFilters_OperatorRejection(t *testing.T) {
	values, _ := url.ParseQuery("status__bogus=info")
	filters := ParseFilters(values, alertFields())
	assert.Empty(t, filters)
}

func TestParseFilters_DefaultOperator(t *testing.T) {
	values, _ := url.ParseQuery("status=info")
	filters := ParseFilters(values, alertFields())

	require.Len(t, filters, 1)
	assert.Equal(t, "status", filters[0].Field)
	assert.Equal(t, OpEq, filters[0].Operator)
	assert.Equal(t, ScalarValue("info"), filters[0].Value)
}

func TestParseFilters_ListCoercion(t *testing.T) {
	values, _ := url.ParseQuery("id__in=a,b, ,c")
	filters := ParseFilters(values, alertFields())

	require.Len(t, filters, 1)
	assert.Equal(t, OpIn, filters[0].Operator)
	assert.Equal(t, ListValue([]string{"a", "b", "c"}), filters[0].Value)
}

func TestParseFilters_BetweenCoercion(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		lo, hi any
	}{
		{"both ints", "value__between=10,20", int64(10), int64(20)},
		{"mixed decimal coerces both to float", "value__between=10.5,20", 10.5, 20.0},
		{"non-numeric falls back to strings", "value__between=2024-01-01,2024-12-31", "2024-01-01", "2024-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			filters := ParseFilters(values, alertFields())

			require.Len(t, filters, 1)
			assert.Equal(t, OpBetween, filters[0].Operator)
			assert.Equal(t, RangeValue(tt.lo, tt.hi), filters[0].Value)
		})
	}
}

func TestParseFilters_BetweenArity(t *testing.T) {
	for _, raw := range []string{"value__between=10", "value__between=10,20,30"} {
		values, _ := url.ParseQuery(raw)
		filters := ParseFilters(values, alertFields())
		assert.Empty(t, filters, "query %q should drop the filter", raw)
	}
}

func TestParseFilters_BooleanCoercion(t *testing.T) {
	values, _ := url.ParseQuery("is_estimated=false")
	filters := ParseFilters(values, alertFields())

	require.Len(t, filters, 1)
	assert.Equal(t, ScalarValue(false), filters[0].Value)

	values, _ = url.ParseQuery("is_estimated=TRUE")
	filters = ParseFilters(values, alertFields())
	require.Len(t, filters, 1)
	assert.Equal(t, ScalarValue(true), filters[0].Value)
}

func TestParseFilters_NullLiteralDropsFilter(t *testing.T) {
	// The null/none shortcut cannot express IS NULL; the filter disappears.
	for _, raw := range []string{"status=null", "status=None", "status__is=null"} {
		values, _ := url.ParseQuery(raw)
		filters := ParseFilters(values, alertFields())
		assert.Empty(t, filters, "query %q should drop the filter", raw)
	}
}

func TestParseFilters_NumericCoercion(t *testing.T) {
	tests := []struct {
		query    string
		expected any
	}{
		{"value=42", int64(42)},
		{"value=3.14", 3.14},
		{"value=10.5.5", "10.5.5"},
		{"title=hello", "hello"},
	}

	for _, tt := range tests {
		values, _ := url.ParseQuery(tt.query)
		filters := ParseFilters(values, alertFields())

		require.Len(t, filters, 1, "query %q", tt.query)
		assert.Equal(t, ScalarValue(tt.expected), filters[0].Value, "query %q", tt.query)
	}
}

func TestParseFilters_ReservedAndEmptyParams(t *testing.T) {
	values, _ := url.ParseQuery("page=2&size=10&sort_by=title&sort_order=asc&search=x&filters=junk&status=&title=ok")
	filters := ParseFilters(values, alertFields())

	require.Len(t, filters, 1)
	assert.Equal(t, "title", filters[0].Field)
}

func TestParseFilters_DeterministicOrder(t *testing.T) {
	values, _ := url.ParseQuery("title=a&status=info&id__in=1,2")
	filters := ParseFilters(values, alertFields())

	require.Len(t, filters, 3)
	assert.Equal(t, "id", filters[0].Field)
	assert.Equal(t, "status", filters[1].Field)
	assert.Equal(t, "title", filters[2].Field)
}

func TestParseFilters_StrictMode(t *testing.T) {
	strict := Parser{Strict: true}

	values, _ := url.ParseQuery("secret=value")
	_, err := strict.ParseFilters(values, alertFields())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "secret")

	values, _ = url.ParseQuery("status__bogus=info")
	_, err = strict.ParseFilters(values, alertFields())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")

	values, _ = url.ParseQuery("status=info")
	filters, err := strict.ParseFilters(values, alertFields())
	require.NoError(t, err)
	assert.Len(t, filters, 1)
}

func TestParseFilters_OperatorVariants(t *testing.T) {
	tests := []struct {
		query    string
		operator Operator
	}{
		{"value__%3E=10", OpGt},
		{"value__%3E%3D=10", OpGte},
		{"value__%3C=10", OpLt},
		{"value__%3C%3D=10", OpLte},
		{"status__%21%3D=info", OpNe},
		{"title__like=John%25", OpLike},
		{"title__ilike=%25john%25", OpILike},
		{"id__not+in=a,b", OpNotIn},
		{"value__not+between=1,2", OpNotBetween},
	}

	for _, tt := range tests {
		values, err := url.ParseQuery(tt.query)
		require.NoError(t, err)
		filters := ParseFilters(values, alertFields())
		require.Len(t, filters, 1, "query %q", tt.query)
		assert.Equal(t, tt.operator, filters[0].Operator, "query %q", tt.query)
	}
}

func TestSearchFilters(t *testing.T) {
	filters := SearchFilters("john", []string{"title", "message"})

	require.Len(t, filters, 2)
	for i, field := range []string{"title", "message"} {
		assert.Equal(t, field, filters[i].Field)
		assert.Equal(t, OpILike, filters[i].Operator)
		assert.Equal(t, ScalarValue("%john%"), filters[i].Value)
	}
}

func TestSearchFilters_Empty(t *testing.T) {
	assert.Empty(t, SearchFilters("", []string{"title"}))
	assert.Empty(t, SearchFilters("john", nil))
}
