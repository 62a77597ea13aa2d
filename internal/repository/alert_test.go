package repository

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Aaron-Ontoyin/enerlytics-backend/pkg/query"
)

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

func alertRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "message", "status", "created_at", "updated_at"})
}

func TestAlertRepository_ListExcludesExpiredByDefault(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAlertRepository(db)

	values, _ := url.ParseQuery("status=info")

	mock.ExpectQuery(`SELECT count\(\*\) FROM "alerts" WHERE status = \$1 AND status <> \$2`).
		WithArgs("info", "expired").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "alerts" WHERE status = \$1 AND status <> \$2 ORDER BY created_at DESC LIMIT \$3`).
		WithArgs("info", "expired", 10).
		WillReturnRows(alertRows().
			AddRow("5f0c3b52-6f5e-4f59-9f51-000000000001", "grid load", "load rising", "info", time.Now(), time.Now()))

	page, err := repo.List(context.Background(), values, query.DefaultPageParams(10), true)
	require.NoError(t, err)

	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "info", page.Items[0].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertRepository_ListWithSearch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAlertRepository(db)

	values, _ := url.ParseQuery("search=volt")

	mock.ExpectQuery(`SELECT count\(\*\) FROM "alerts" WHERE \(title ILIKE \$1 OR message ILIKE \$2 OR status ILIKE \$3\)`).
		WithArgs("%volt%", "%volt%", "%volt%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT \* FROM "alerts" WHERE \(title ILIKE \$1 OR message ILIKE \$2 OR status ILIKE \$3\) ORDER BY created_at DESC LIMIT \$4`).
		WithArgs("%volt%", "%volt%", "%volt%", 10).
		WillReturnRows(alertRows())

	page, err := repo.List(context.Background(), values, query.DefaultPageParams(10), false)
	require.NoError(t, err)

	assert.Equal(t, int64(0), page.Total)
	assert.Empty(t, page.Items)
	require.NoError(t, mock.ExpectationsWereMet())
}
