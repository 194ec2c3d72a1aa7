package dailysummary

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGormMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	assert.NoError(t, err)
	return db, mock
}

func TestRepository_ActivityDates(t *testing.T) {
	db, mock := newGormMock(t)
	repo := NewRepository(db)

	first := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	second := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT d FROM (")).
		WillReturnRows(sqlmock.NewRows([]string{"d"}).AddRow(first).AddRow(second))

	got, err := repo.ActivityDates(context.Background(), "company-1", "project-1", first)
	assert.NoError(t, err)
	assert.Equal(t, []time.Time{first, second}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteStale(t *testing.T) {
	db, mock := newGormMock(t)
	repo := NewRepository(db)

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	keep := []time.Time{from}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "daily_expense_summaries"`)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	removed, err := repo.DeleteStale(context.Background(), "company-1", "project-1", from, keep)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DayTotals_CreditDownPayment(t *testing.T) {
	db, mock := newGormMock(t)
	repo := NewRepository(db)
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	// material costs are what was paid at purchase time, for cash and credit alike
	mock.ExpectQuery(`SUM\(mp\.paid_amount - COALESCE\(\(SELECT SUM\(sp\.amount\) FROM supplier_payments sp WHERE sp\.purchase_id = mp\.id\), 0\)\), 0\)\s+FROM material_purchases mp`).
		WillReturnRows(sqlmock.NewRows([]string{
			"fund_transfers", "incoming_project_transfers", "worker_wages", "material_costs",
			"worker_transfers", "supplier_payments", "outgoing_project_transfers",
		}).AddRow("0", "0", "0", "300.00", "0", "0", "0"))

	got, err := repo.DayTotals(context.Background(), "company-1", "project-1", date)
	assert.NoError(t, err)
	assert.Equal(t, "300", got.MaterialCosts.String())
	assert.Equal(t, "300", got.Expenses().String())
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.NotContains(t, dayTotalsSQL, "purchase_type")
}

func TestRepository_ActivityDates_IncludesCreditDownPayments(t *testing.T) {
	db, mock := newGormMock(t)
	repo := NewRepository(db)
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM material_purchases mp\s+WHERE mp\.company_id = \$\d+ AND mp\.project_id = \$\d+ AND mp\.purchase_date >= \$\d+\s+AND mp\.paid_amount - COALESCE\(.*\), 0\) > 0`).
		WillReturnRows(sqlmock.NewRows([]string{"d"}).AddRow(date))

	got, err := repo.ActivityDates(context.Background(), "company-1", "project-1", date)
	assert.NoError(t, err)
	assert.Equal(t, []time.Time{date}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.NotContains(t, activityDatesSQL, "purchase_type")
}
