package fundtransfer

import (
	"context"
	"database/sql"

	"go-sitebooks/internal/shared/dbtx"
	"go-sitebooks/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=fund_transfer_repo.go -destination=mock/fund_transfer_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, t *FundTransfer) error
	FindByID(ctx context.Context, companyID, id string) (*FundTransfer, error)
	FindAll(ctx context.Context, companyID string, f Filter) ([]FundTransferView, error)
	Delete(ctx context.Context, companyID, id string) error

	CreateProjectTransfer(ctx context.Context, t *ProjectTransfer) error
	FindProjectTransferByID(ctx context.Context, companyID, id string) (*ProjectTransfer, error)
	FindProjectTransfers(ctx context.Context, companyID string, f Filter) ([]ProjectTransferView, error)
	DeleteProjectTransfer(ctx context.Context, companyID, id string) error

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

func (r *repository) Create(ctx context.Context, t *FundTransfer) error {
	return dbtx.Conn(ctx, r.db, r.tx).Create(t).Error
}

func (r *repository) FindByID(ctx context.Context, companyID, id string) (*FundTransfer, error) {
	var t FundTransfer
	err := dbtx.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) FindAll(ctx context.Context, companyID string, f Filter) ([]FundTransferView, error) {
	var rows []FundTransferView
	q := dbtx.Conn(ctx, r.db, r.tx).
		Table("fund_transfers AS ft").
		Select("ft.*, p.name AS project_name").
		Joins("JOIN projects p ON p.id = ft.project_id").
		Where("ft.company_id = ?", companyID)

	if f.ProjectID != "" {
		q = q.Where("ft.project_id = ?", f.ProjectID)
	}
	if f.From != nil {
		q = q.Where("ft.transfer_date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("ft.transfer_date <= ?", *f.To)
	}

	err := q.Order("ft.transfer_date DESC, ft.created_at DESC").Scan(&rows).Error
	return rows, err
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	return deleteScoped(dbtx.Conn(ctx, r.db, r.tx), companyID, id, &FundTransfer{})
}

func (r *repository) CreateProjectTransfer(ctx context.Context, t *ProjectTransfer) error {
	return dbtx.Conn(ctx, r.db, r.tx).Create(t).Error
}

func (r *repository) FindProjectTransferByID(ctx context.Context, companyID, id string) (*ProjectTransfer, error) {
	var t ProjectTransfer
	err := dbtx.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) FindProjectTransfers(ctx context.Context, companyID string, f Filter) ([]ProjectTransferView, error) {
	var rows []ProjectTransferView
	q := dbtx.Conn(ctx, r.db, r.tx).
		Table("project_fund_transfers AS pt").
		Select("pt.*, fp.name AS from_project_name, tp.name AS to_project_name").
		Joins("JOIN projects fp ON fp.id = pt.from_project_id").
		Joins("JOIN projects tp ON tp.id = pt.to_project_id").
		Where("pt.company_id = ?", companyID)

	if f.ProjectID != "" {
		q = q.Where("(pt.from_project_id = ? OR pt.to_project_id = ?)", f.ProjectID, f.ProjectID)
	}
	if f.From != nil {
		q = q.Where("pt.transfer_date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("pt.transfer_date <= ?", *f.To)
	}

	err := q.Order("pt.transfer_date DESC, pt.created_at DESC").Scan(&rows).Error
	return rows, err
}

func (r *repository) DeleteProjectTransfer(ctx context.Context, companyID, id string) error {
	return deleteScoped(dbtx.Conn(ctx, r.db, r.tx), companyID, id, &ProjectTransfer{})
}

func (r *repository) ProjectExists(ctx context.Context, companyID, projectID string) (bool, error) {
	var count int64
	err := dbtx.Conn(ctx, r.db, r.tx).
		Table("projects").
		Where("company_id = ? AND id = ? AND deleted_at IS NULL", companyID, projectID).
		Count(&count).Error
	return count > 0, err
}

func deleteScoped(db *gorm.DB, companyID, id string, model any) error {
	res := db.Scopes(tenant.Scope(companyID)).Where("id = ?", id).Delete(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
