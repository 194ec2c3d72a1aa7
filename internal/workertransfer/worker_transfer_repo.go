package workertransfer

import (
	"context"
	"database/sql"

	"go-sitebooks/internal/shared/dbtx"
	"go-sitebooks/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=worker_transfer_repo.go -destination=mock/worker_transfer_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, t *WorkerTransfer) error
	FindByID(ctx context.Context, companyID, id string) (*WorkerTransfer, error)
	FindAll(ctx context.Context, companyID string, f Filter) ([]TransferView, error)
	Update(ctx context.Context, t *WorkerTransfer) error
	Delete(ctx context.Context, companyID, id string) error
	WorkerExists(ctx context.Context, companyID, workerID string) (bool, error)
	ProjectExists(ctx context.Context, companyID, projectID string) (bool, error)
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

func (r *repository) Create(ctx context.Context, t *WorkerTransfer) error {
	return dbtx.Conn(ctx, r.db, r.tx).Create(t).Error
}

func (r *repository) FindByID(ctx context.Context, companyID, id string) (*WorkerTransfer, error) {
	var t WorkerTransfer
	err := dbtx.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) FindAll(ctx context.Context, companyID string, f Filter) ([]TransferView, error) {
	var rows []TransferView
	q := dbtx.Conn(ctx, r.db, r.tx).
		Table("worker_transfers AS t").
		Select("t.*, w.name AS worker_name, p.name AS project_name").
		Joins("JOIN workers w ON w.id = t.worker_id").
		Joins("JOIN projects p ON p.id = t.project_id").
		Where("t.company_id = ?", companyID)

	if f.WorkerID != "" {
		q = q.Where("t.worker_id = ?", f.WorkerID)
	}
	if f.ProjectID != "" {
		q = q.Where("t.project_id = ?", f.ProjectID)
	}
	if f.From != nil {
		q = q.Where("t.transfer_date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("t.transfer_date <= ?", *f.To)
	}

	err := q.Order("t.transfer_date DESC, t.created_at DESC").Scan(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, t *WorkerTransfer) error {
	return dbtx.Conn(ctx, r.db, r.tx).Save(t).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	res := dbtx.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&WorkerTransfer{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) WorkerExists(ctx context.Context, companyID, workerID string) (bool, error) {
	return exists(dbtx.Conn(ctx, r.db, r.tx), "workers", companyID, workerID)
}

func (r *repository) ProjectExists(ctx context.Context, companyID, projectID string) (bool, error) {
	return exists(dbtx.Conn(ctx, r.db, r.tx), "projects", companyID, projectID)
}

func exists(db *gorm.DB, table, companyID, id string) (bool, error) {
	var count int64
	err := db.Table(table).
		Where("company_id = ? AND id = ? AND deleted_at IS NULL", companyID, id).
		Count(&count).Error
	return count > 0, err
}
