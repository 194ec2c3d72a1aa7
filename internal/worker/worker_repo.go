package worker

import (
	"context"
	"database/sql"

	"go-sitebooks/internal/shared/dbtx"
	"go-sitebooks/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=worker_repo.go -destination=mock/worker_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, w *Worker) error
	FindAllByCompany(ctx context.Context, companyID string) ([]Worker, error)
	FindActiveByCompany(ctx context.Context, companyID string) ([]Worker, error)
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Worker, error)
	Update(ctx context.Context, w *Worker) error
	Delete(ctx context.Context, companyID string, id string) error
	HasLedgerRecords(ctx context.Context, companyID string, id string) (bool, error)
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

func (r *repository) Create(ctx context.Context, w *Worker) error {
	return dbtx.Conn(ctx, r.db, r.tx).Create(w).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Worker, error) {
	var workers []Worker
	err := dbtx.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Order("name ASC").
		Find(&workers).Error
	return workers, err
}

func (r *repository) FindActiveByCompany(ctx context.Context, companyID string) ([]Worker, error) {
	var workers []Worker
	err := dbtx.Conn(ctx, r.db, r.tx).
		Select("id", "name", "type", "daily_wage").
		Scopes(tenant.Scope(companyID)).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&workers).Error
	return workers, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Worker, error) {
	var w Worker
	err := dbtx.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		First(&w, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *repository) Update(ctx context.Context, w *Worker) error {
	return dbtx.Conn(ctx, r.db, r.tx).Save(w).Error
}

func (r *repository) Delete(ctx context.Context, companyID string, id string) error {
	res := dbtx.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&Worker{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) HasLedgerRecords(ctx context.Context, companyID string, id string) (bool, error) {
	var found bool
	err := dbtx.Conn(ctx, r.db, r.tx).Raw(`
		SELECT EXISTS (SELECT 1 FROM worker_attendance WHERE company_id = ? AND worker_id = ?)
		    OR EXISTS (SELECT 1 FROM worker_transfers WHERE company_id = ? AND worker_id = ?)
	`, companyID, id, companyID, id).Scan(&found).Error
	return found, err
}
