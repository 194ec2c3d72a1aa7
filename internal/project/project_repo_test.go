package project

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGormMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestRepository_HasLedgerRecords(t *testing.T) {
	t.Run("only an inter-project transfer references the project", func(t *testing.T) {
		db, mock := newGormMock(t)
		repo := NewRepository(db)

		mock.ExpectQuery(`FROM project_fund_transfers\s+WHERE company_id = \$\d+ AND \(from_project_id = \$\d+ OR to_project_id = \$\d+\)`).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		used, err := repo.HasLedgerRecords(context.Background(), "company-1", "project-1")
		require.NoError(t, err)
		assert.True(t, used)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no records", func(t *testing.T) {
		db, mock := newGormMock(t)
		repo := NewRepository(db)

		mock.ExpectQuery(`FROM supplier_payments WHERE company_id = \$\d+ AND project_id = \$\d+`).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		used, err := repo.HasLedgerRecords(context.Background(), "company-1", "project-1")
		require.NoError(t, err)
		assert.False(t, used)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("checks every money table", func(t *testing.T) {
		for _, table := range []string{
			"worker_attendance",
			"worker_transfers",
			"material_purchases",
			"supplier_payments",
			"fund_transfers",
			"project_fund_transfers",
		} {
			assert.Contains(t, ledgerRecordsSQL, "FROM "+table)
		}
		// purchases and payments are hard-deleted
		assert.NotContains(t, ledgerRecordsSQL, "deleted_at")
	})
}
