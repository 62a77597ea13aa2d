package query

import (
	"net/url"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type alertRow struct {
	ID        string
	Title     string
	Message   string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (alertRow) TableName() string { return "alerts" }

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:               gormlogger.Default.LogMode(gormlogger.Silent),
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return db, mock
}

func alertColumns() []string {
	return []string{"id", "title", "message", "status", "created_at", "updated_at"}
}

func TestCompile_OperatorMapping(t *testing.T) {
	fields := alertFields()

	tests := []struct {
		name     string
		filter   Filter
		cond     string
		args     []any
	}{
		{"eq", Filter{"status", OpEq, ScalarValue("info")}, "status = ?", []any{"info"}},
		{"ne", Filter{"status", OpNe, ScalarValue("info")}, "status <> ?", []any{"info"}},
		{"gt", Filter{"value", OpGt, ScalarValue(int64(10))}, "value > ?", []any{int64(10)}},
		{"gte", Filter{"value", OpGte, ScalarValue(int64(10))}, "value >= ?", []any{int64(10)}},
		{"lt", Filter{"value", OpLt, ScalarValue(int64(10))}, "value < ?", []any{int64(10)}},
		{"lte", Filter{"value", OpLte, ScalarValue(int64(10))}, "value <= ?", []any{int64(10)}},
		{"in", Filter{"id", OpIn, ListValue([]string{"a", "b"})}, "id IN ?", []any{[]string{"a", "b"}}},
		{"not in", Filter{"id", OpNotIn, ListValue([]string{"a"})}, "id NOT IN ?", []any{[]string{"a"}}},
		{"is", Filter{"status", OpIs, ScalarValue("info")}, "status IS NOT DISTINCT FROM ?", []any{"info"}},
		{"is not", Filter{"status", OpIsNot, ScalarValue("info")}, "status IS DISTINCT FROM ?", []any{"info"}},
		{"like", Filter{"title", OpLike, ScalarValue("John%")}, "title LIKE ?", []any{"John%"}},
		{"ilike", Filter{"title", OpILike, ScalarValue("%john%")}, "title ILIKE ?", []any{"%john%"}},
		{"between", Filter{"value", OpBetween, RangeValue(int64(10), int64(20))}, "value BETWEEN ? AND ?", []any{int64(10), int64(20)}},
		{"not between", Filter{"value", OpNotBetween, RangeValue(int64(10), int64(20))}, "value NOT BETWEEN ? AND ?", []any{int64(10), int64(20)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond, args, err := compile(tt.filter, fields)
			require.NoError(t, err)
			assert.Equal(t, tt.cond, cond)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestCompile_EmptyListDegenerates(t *testing.T) {
	fields := alertFields()

	cond, args, err := compile(Filter{"id", OpIn, ListValue(nil)}, fields)
	require.NoError(t, err)
	assert.Equal(t, "1 = 0", cond)
	assert.Empty(t, args)

	cond, _, err = compile(Filter{"id", OpNotIn, ListValue(nil)}, fields)
	require.NoError(t, err)
	assert.Equal(t, "1 = 1", cond)
}

func TestCompile_UnresolvableFieldIsError(t *testing.T) {
	_, _, err := compile(Filter{"secret", OpEq, ScalarValue("x")}, alertFields())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unresolvable field")
}

func TestCompile_ValueShapeMismatch(t *testing.T) {
	fields := alertFields()

	_, _, err := compile(Filter{"id", OpIn, ScalarValue("a")}, fields)
	require.Error(t, err)

	_, _, err = compile(Filter{"value", OpBetween, ScalarValue(int64(1))}, fields)
	require.Error(t, err)

	_, _, err = compile(Filter{"status", OpEq, ListValue([]string{"a"})}, fields)
	require.Error(t, err)
}

func TestCompile_UnknownOperatorIsError(t *testing.T) {
	_, _, err := compile(Filter{"status", Operator("bogus"), ScalarValue("x")}, alertFields())
	require.Error(t, err)
}

func TestApply_AndChain(t *testing.T) {
	db, mock := newMockDB(t)
	fields := alertFields()

	filters := []Filter{
		{"status", OpEq, ScalarValue("info")},
		{"title", OpILike, ScalarValue("%grid%")},
	}

	tx, err := Apply(db.Model(&alertRow{}), filters, fields, CombineAnd)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "alerts" WHERE status = \$1 AND title ILIKE \$2`).
		WithArgs("info", "%grid%").
		WillReturnRows(sqlmock.NewRows(alertColumns()))

	var rows []alertRow
	require.NoError(t, tx.Find(&rows).Error)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApply_OrGroupIsParenthesised(t *testing.T) {
	db, mock := newMockDB(t)
	fields := alertFields()

	search := SearchFilters("x", []string{"title", "message"})

	tx, err := Apply(db.Model(&alertRow{}), search, fields, CombineOr)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "alerts" WHERE \(title ILIKE \$1 OR message ILIKE \$2\)`).
		WithArgs("%x%", "%x%").
		WillReturnRows(sqlmock.NewRows(alertColumns()))

	var rows []alertRow
	require.NoError(t, tx.Find(&rows).Error)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Primary filters AND-ed, search filters OR-ed, both on the same base query:
// rows must match every explicit filter and at least one searched field.
func TestApply_CombinedFilterAndSearch(t *testing.T) {
	db, mock := newMockDB(t)
	fields := alertFields()

	values, _ := url.ParseQuery("status=info")
	primary := ParseFilters(values, fields)
	search := SearchFilters("x", []string{"title", "message"})

	tx, err := Apply(db.Model(&alertRow{}), primary, fields, CombineAnd)
	require.NoError(t, err)
	tx, err = Apply(tx, search, fields, CombineOr)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "alerts" WHERE status = \$1 AND \(title ILIKE \$2 OR message ILIKE \$3\)`).
		WithArgs("info", "%x%", "%x%").
		WillReturnRows(sqlmock.NewRows(alertColumns()).
			AddRow("a1", "x marks", "msg", "info", time.Now(), time.Now()))

	var rows []alertRow
	require.NoError(t, tx.Find(&rows).Error)
	require.Len(t, rows, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApply_NoFiltersIsNoOp(t *testing.T) {
	db, _ := newMockDB(t)

	tx, err := Apply(db, nil, alertFields(), CombineAnd)
	require.NoError(t, err)
	assert.Same(t, db, tx)
}
