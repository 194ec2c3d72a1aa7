package counter

import (
	"context"
	"database/sql"
	"fmt"

	"go-sitebooks/internal/shared/dbtx"

	"gorm.io/gorm"
)

const (
	TypePurchaseNumber = "purchase_number"
	TypeExportNumber   = "export_number"
)

//go:generate mockgen -source=counter_repo.go -destination=mock/counter_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	GetNextValue(ctx context.Context, companyID string, counterType string) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// GetNextValue increments the per company sequence atomically.
func (r *repository) GetNextValue(ctx context.Context, companyID string, counterType string) (int64, error) {
	var next int64
	err := dbtx.Conn(ctx, r.db, r.tx).Raw(`
		INSERT INTO company_counters (company_id, counter_type, last_value, updated_at)
		VALUES (?, ?, 1, now())
		ON CONFLICT (company_id, counter_type) DO UPDATE
		SET last_value = company_counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`, companyID, counterType).Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}

// DocumentNumber formats a sequence value, e.g. ("PUR", 12) -> "PUR-000012".
func DocumentNumber(prefix string, value int64) string {
	return fmt.Sprintf("%s-%06d", prefix, value)
}
