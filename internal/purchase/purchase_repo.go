package purchase

import (
	"context"
	"database/sql"

	"go-sitebooks/internal/shared/dbtx"
	"go-sitebooks/internal/tenant"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=purchase_repo.go -destination=mock/purchase_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Purchase) error
	FindByID(ctx context.Context, companyID, id string) (*Purchase, error)
	LockByID(ctx context.Context, companyID, id string) (*Purchase, error)
	FindAll(ctx context.Context, companyID string, f Filter) ([]PurchaseView, error)
	Update(ctx context.Context, p *Purchase) error
	Delete(ctx context.Context, companyID, id string) error
	ProjectExists(ctx context.Context, companyID, projectID string) (bool, error)
	SupplierExists(ctx context.Context, companyID, supplierID string) (bool, error)
	LinkedPaymentsTotal(ctx context.Context, companyID, purchaseID string) (decimal.Decimal, error)
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

func (r *repository) Create(ctx context.Context, p *Purchase) error {
	return dbtx.Conn(ctx, r.db, r.tx).Create(p).Error
}

func (r *repository) FindByID(ctx context.Context, companyID, id string) (*Purchase, error) {
	var p Purchase
	err := dbtx.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// LockByID reads the purchase with FOR UPDATE; supplier payments lock the
// same row before touching paid and remaining amounts.
func (r *repository) LockByID(ctx context.Context, companyID, id string) (*Purchase, error) {
	var p Purchase
	err := dbtx.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindAll(ctx context.Context, companyID string, f Filter) ([]PurchaseView, error) {
	var rows []PurchaseView
	q := dbtx.Conn(ctx, r.db, r.tx).
		Table("material_purchases AS mp").
		Select("mp.*, p.name AS project_name, s.name AS supplier_name").
		Joins("JOIN projects p ON p.id = mp.project_id").
		Joins("LEFT JOIN suppliers s ON s.id = mp.supplier_id").
		Where("mp.company_id = ?", companyID)

	if f.ProjectID != "" {
		q = q.Where("mp.project_id = ?", f.ProjectID)
	}
	if f.SupplierID != "" {
		q = q.Where("mp.supplier_id = ?", f.SupplierID)
	}
	if f.PurchaseType != "" {
		q = q.Where("mp.purchase_type = ?", f.PurchaseType)
	}
	if f.From != nil {
		q = q.Where("mp.purchase_date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("mp.purchase_date <= ?", *f.To)
	}

	err := q.Order("mp.purchase_date DESC, mp.purchase_number DESC").Scan(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, p *Purchase) error {
	return dbtx.Conn(ctx, r.db, r.tx).Save(p).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	res := dbtx.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&Purchase{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ProjectExists(ctx context.Context, companyID, projectID string) (bool, error) {
	var count int64
	err := dbtx.Conn(ctx, r.db, r.tx).
		Table("projects").
		Where("company_id = ? AND id = ? AND deleted_at IS NULL", companyID, projectID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) SupplierExists(ctx context.Context, companyID, supplierID string) (bool, error) {
	var count int64
	err := dbtx.Conn(ctx, r.db, r.tx).
		Table("suppliers").
		Where("company_id = ? AND id = ? AND deleted_at IS NULL", companyID, supplierID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) LinkedPaymentsTotal(ctx context.Context, companyID, purchaseID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := dbtx.Conn(ctx, r.db, r.tx).
		Table("supplier_payments").
		Select("COALESCE(SUM(amount), 0)").
		Where("company_id = ? AND purchase_id = ?", companyID, purchaseID).
		Row().Scan(&total)
	return total, err
}
