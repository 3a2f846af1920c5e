package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ecommerce-agent-api/infrastructure/database/postgres"
	"github.com/vfg2006/ecommerce-agent-api/internal/domain"
)

func newSQLMock(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return postgres.NewConnectionFromDB(db), mock
}

func stringPtr(s string) *string {
	return &s
}

func TestSalesRepository_InsertBatch(t *testing.T) {
	conn, mock := newSQLMock(t)
	repo := NewSalesRepository(conn)

	records := []*domain.SalesRecord{
		{Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), ItemID: 0, TotalSales: 100, TotalUnitsOrdered: 2},
		{Date: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), ItemID: 1, TotalSales: 50, TotalUnitsOrdered: 1},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO product_sales (date,item_id,total_sales,total_units_ordered) VALUES ($1,$2,$3,$4),($5,$6,$7,$8)")).
		WithArgs("2025-06-01", 0, 100.0, 2, "2025-06-02", 1, 50.0, 1).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := repo.InsertBatch(context.Background(), records)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesRepository_InsertBatchEmpty(t *testing.T) {
	conn, mock := newSQLMock(t)

	err := NewSalesRepository(conn).InsertBatch(context.Background(), nil)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesRepository_DateRange(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		rows      *sqlmock.Rows
		wantStart *time.Time
		wantEnd   *time.Time
	}{
		{
			name:      "Tabela com vendas",
			rows:      sqlmock.NewRows([]string{"min", "max"}).AddRow(start, end),
			wantStart: &start,
			wantEnd:   &end,
		},
		{
			name: "Tabela vazia",
			rows: sqlmock.NewRows([]string{"min", "max"}).AddRow(nil, nil),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newSQLMock(t)
			mock.ExpectQuery(regexp.QuoteMeta("SELECT MIN(date), MAX(date) FROM product_sales")).WillReturnRows(tt.rows)

			got, err := NewSalesRepository(conn).DateRange(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, got.SalesStart)
			assert.Equal(t, tt.wantEnd, got.SalesEnd)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSalesRepository_CountAndDelete(t *testing.T) {
	conn, mock := newSQLMock(t)
	repo := NewSalesRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM product_sales")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM product_sales")).
		WillReturnResult(sqlmock.NewResult(0, 7))

	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, total)

	deleted, err := repo.DeleteAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), deleted)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdMetricsRepository_ListByItem(t *testing.T) {
	conn, mock := newSQLMock(t)
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, date, item_id, ad_sales, impressions, ad_spend, clicks, units_sold, created_at FROM product_ad_metrics WHERE item_id = $1 ORDER BY date ASC, id ASC")).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "date", "item_id", "ad_sales", "impressions", "ad_spend", "clicks", "units_sold", "created_at"}).
			AddRow(int64(1), day, 3, 200.0, 1000, 50.0, 10, 4, day))

	records, err := NewAdMetricsRepository(conn).ListByItem(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 3, records[0].ItemID)
	assert.Equal(t, 5.0, records[0].CPC())
	assert.Equal(t, 1.0, records[0].CTR())
	assert.Equal(t, 400.0, records[0].RoAS())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdMetricsRepository_InsertBatchRollback(t *testing.T) {
	conn, mock := newSQLMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO product_ad_metrics").WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	err := NewAdMetricsRepository(conn).InsertBatch(context.Background(), []*domain.AdMetricsRecord{
		{Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), ItemID: 1},
	})

	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEligibilityRepository_InsertBatch(t *testing.T) {
	conn, mock := newSQLMock(t)
	checkedAt := time.Date(2025, 6, 4, 8, 50, 7, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO product_eligibility (item_id,eligibility_datetime,eligibility,message) VALUES ($1,$2,$3,$4),($5,$6,$7,$8)")).
		WithArgs(1, checkedAt, true, nil, 2, checkedAt, false, "Not eligible").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := NewEligibilityRepository(conn).InsertBatch(context.Background(), []*domain.EligibilityRecord{
		{ItemID: 1, EligibilityDateTime: checkedAt, Eligible: true},
		{ItemID: 2, EligibilityDateTime: checkedAt, Eligible: false, Message: stringPtr("Not eligible")},
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEligibilityRepository_CountDistinctItems(t *testing.T) {
	conn, mock := newSQLMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(DISTINCT item_id) FROM product_eligibility")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	total, err := NewEligibilityRepository(conn).CountDistinctItems(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 12, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
