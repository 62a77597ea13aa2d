package query

import (
	"net/url"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePageParams_Defaults(t *testing.T) {
	params, err := ParsePageParams(url.Values{}, 100, 500)
	require.NoError(t, err)

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 100, params.Size)
	assert.Equal(t, "created_at", params.SortBy)
	assert.Equal(t, "desc", params.SortOrder)
	assert.Equal(t, 0, params.Offset())
}

func TestParsePageParams_Valid(t *testing.T) {
	values, _ := url.ParseQuery("page=3&size=20&sort_by=title&sort_order=ASC")
	params, err := ParsePageParams(values, 100, 500)
	require.NoError(t, err)

	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 20, params.Size)
	assert.Equal(t, "title", params.SortBy)
	assert.Equal(t, "asc", params.SortOrder)
	assert.Equal(t, 40, params.Offset())
}

func TestParsePageParams_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"zero page", "page=0"},
		{"negative page", "page=-1"},
		{"non-numeric page", "page=abc"},
		{"zero size", "size=0"},
		{"size above max", "size=501"},
		{"bad sort order", "sort_order=sideways"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			_, err := ParsePageParams(values, 100, 500)
			assert.Error(t, err)
		})
	}
}

func TestPaginate_EnvelopeMath(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "alerts"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(105))
	mock.ExpectQuery(`SELECT \* FROM "alerts" ORDER BY created_at DESC LIMIT`).
		WillReturnRows(sqlmock.NewRows(alertColumns()).
			AddRow("a1", "t", "m", "info", time.Now(), time.Now()))

	params := PageParams{Page: 6, Size: 20, SortBy: "created_at", SortOrder: "desc"}
	page, err := Paginate[alertRow](db.Model(&alertRow{}), params, alertFields())
	require.NoError(t, err)

	assert.Equal(t, int64(105), page.Total)
	assert.Equal(t, 6, page.Pages)
	assert.False(t, page.HasNext)
	assert.True(t, page.HasPrev)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPaginate_FirstPage(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "alerts"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(105))
	mock.ExpectQuery(`SELECT \* FROM "alerts" ORDER BY created_at DESC LIMIT`).
		WillReturnRows(sqlmock.NewRows(alertColumns()))

	params := PageParams{Page: 1, Size: 20, SortBy: "created_at", SortOrder: "desc"}
	page, err := Paginate[alertRow](db.Model(&alertRow{}), params, alertFields())
	require.NoError(t, err)

	assert.True(t, page.HasNext)
	assert.False(t, page.HasPrev)
}

func TestPaginate_EmptyResultSet(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "alerts"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT \* FROM "alerts" ORDER BY created_at DESC LIMIT`).
		WillReturnRows(sqlmock.NewRows(alertColumns()))

	page, err := Paginate[alertRow](db.Model(&alertRow{}), DefaultPageParams(10), alertFields())
	require.NoError(t, err)

	assert.Equal(t, int64(0), page.Total)
	assert.Equal(t, 1, page.Pages, "pages is never zero")
	assert.Empty(t, page.Items)
	assert.False(t, page.HasNext)
	assert.False(t, page.HasPrev)
}

// An unknown sort_by never reaches the ORDER BY clause; it falls back to
// created_at.
func TestPaginate_SortByValidatedAgainstFieldSet(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "alerts"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "alerts" ORDER BY created_at ASC LIMIT`).
		WillReturnRows(sqlmock.NewRows(alertColumns()))

	params := PageParams{Page: 1, Size: 10, SortBy: "pg_sleep(10)--", SortOrder: "asc"}
	_, err := Paginate[alertRow](db.Model(&alertRow{}), params, alertFields())
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Seeded end-to-end scenario: three alerts, two with status info; filtering
// on status=info pages over exactly those two.
func TestPaginate_FilteredScenario(t *testing.T) {
	db, mock := newMockDB(t)
	fields := alertFields()

	values, _ := url.ParseQuery("status=info&page=1&size=10")
	filters := ParseFilters(values, fields)
	params, err := ParsePageParams(values, 100, 500)
	require.NoError(t, err)

	tx, err := Apply(db.Model(&alertRow{}), filters, fields, CombineAnd)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "alerts" WHERE status = \$1`).
		WithArgs("info").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	// LIMIT is bound as a parameter, so the page query carries two arguments
	mock.ExpectQuery(`SELECT \* FROM "alerts" WHERE status = \$1 ORDER BY created_at DESC LIMIT \$2`).
		WithArgs("info", 10).
		WillReturnRows(sqlmock.NewRows(alertColumns()).
			AddRow("a1", "first", "m1", "info", time.Now(), time.Now()).
			AddRow("a3", "third", "m3", "info", time.Now(), time.Now()))

	page, err := Paginate[alertRow](tx, params, fields)
	require.NoError(t, err)

	assert.Equal(t, int64(2), page.Total)
	require.Len(t, page.Items, 2)
	for _, item := range page.Items {
		assert.Equal(t, "info", item.Status)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMapEnvelope(t *testing.T) {
	page := &PaginatedResponse[int]{
		Items: []int{1, 2, 3}, Total: 3, Page: 1, Size: 10, Pages: 1,
	}

	mapped := Map(page, func(n int) string {
		return string(rune('a' + n - 1))
	})

	assert.Equal(t, []string{"a", "b", "c"}, mapped.Items)
	assert.Equal(t, int64(3), mapped.Total)
	assert.Equal(t, 1, mapped.Pages)
}
