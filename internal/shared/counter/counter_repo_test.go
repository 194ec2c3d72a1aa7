package counter

import (
	"context"
	"regexp"
	"testing"

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

func TestRepository_GetNextValue(t *testing.T) {
	db, mock := newGormMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO company_counters")).
		WithArgs("company-1", TypePurchaseNumber).
		WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(7))

	got, err := repo.GetNextValue(context.Background(), "company-1", TypePurchaseNumber)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentNumber(t *testing.T) {
	assert.Equal(t, "PUR-000012", DocumentNumber("PUR", 12))
	assert.Equal(t, "EXP-1234567", DocumentNumber("EXP", 1234567))
}
