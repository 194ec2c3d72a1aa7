package project

import (
	"context"
	"database/sql"

	"go-sitebooks/internal/shared/dbtx"
	"go-sitebooks/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=project_repo.go -destination=mock/project_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Project) error
	FindAllByCompany(ctx context.Context, companyID string, status string) ([]Project, error)
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Project, error)
	Update(ctx context.Context, p *Project) error
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

func (r *repository) Create(ctx context.Context, p *Project) error {
	return dbtx.Conn(ctx, r.db, r.tx).Create(p).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, status string) ([]Project, error) {
	var projects []Project
	q := dbtx.Conn(ctx, r.db, r.tx).Scopes(tenant.Scope(companyID))
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("name ASC").Find(&projects).Error
	return projects, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Project, error) {
	var p Project
	err := dbtx.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Update(ctx context.Context, p *Project) error {
	return dbtx.Conn(ctx, r.db, r.tx).Save(p).Error
}

func (r *repository) Delete(ctx context.Context, companyID string, id string) error {
	res := dbtx.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&Project{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

const ledgerRecordsSQL = `
SELECT EXISTS (SELECT 1 FROM worker_attendance WHERE company_id = @company AND project_id = @project)
    OR EXISTS (SELECT 1 FROM worker_transfers WHERE company_id = @company AND project_id = @project)
    OR EXISTS (SELECT 1 FROM material_purchases WHERE company_id = @company AND project_id = @project)
    OR EXISTS (SELECT 1 FROM supplier_payments WHERE company_id = @company AND project_id = @project)
    OR EXISTS (SELECT 1 FROM fund_transfers WHERE company_id = @company AND project_id = @project)
    OR EXISTS (SELECT 1 FROM project_fund_transfers
        WHERE company_id = @company AND (from_project_id = @project OR to_project_id = @project))`

// HasLedgerRecords reports whether any money movement references the project.
func (r *repository) HasLedgerRecords(ctx context.Context, companyID string, id string) (bool, error) {
	var found bool
	err := dbtx.Conn(ctx, r.db, r.tx).
		Raw(ledgerRecordsSQL, map[string]any{"company": companyID, "project": id}).
		Scan(&found).Error
	return found, err
}
