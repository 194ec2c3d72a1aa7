package supplier

import (
	"context"
	"database/sql"

	"go-sitebooks/internal/shared/dbtx"
	"go-sitebooks/internal/tenant"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=supplier_repo.go -destination=mock/supplier_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *Supplier) error
	FindAllWithBalance(ctx context.Context, companyID string) ([]SupplierBalance, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Supplier, error)
	Update(ctx context.Context, s *Supplier) error
	Delete(ctx context.Context, companyID, id string) error
	HasLedgerRecords(ctx context.Context, companyID, id string) (bool, error)

	CreatePayment(ctx context.Context, p *Payment) error
	FindPayments(ctx context.Context, companyID string, f PaymentFilter) ([]PaymentView, error)
	FindPaymentByID(ctx context.Context, companyID, id string) (*Payment, error)
	DeletePayment(ctx context.Context, companyID, id string) error
	ProjectExists(ctx context.Context, companyID, projectID string) (bool, error)
	LockPurchase(ctx context.Context, companyID, purchaseID string) (*PurchaseBalance, error)
	UpdatePurchaseBalance(ctx context.Context, purchaseID string, paid, remaining decimal.Decimal) error
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

func (r *repository) Create(ctx context.Context, s *Supplier) error {
	return dbtx.Conn(ctx, r.db, r.tx).Create(s).Error
}

// FindAllWithBalance adds purchase and payment totals. Purchase paid amounts
// already include linked payments, so only unlinked payments are added.
func (r *repository) FindAllWithBalance(ctx context.Context, companyID string) ([]SupplierBalance, error) {
	var rows []SupplierBalance
	err := dbtx.Conn(ctx, r.db, r.tx).Raw(`
		SELECT s.*,
		       COALESCE(pu.total, 0) AS total_purchases,
		       COALESCE(pu.paid, 0) + COALESCE(pa.unlinked, 0) AS total_paid
		FROM suppliers s
		LEFT JOIN (
			SELECT supplier_id, SUM(total_amount) AS total, SUM(paid_amount) AS paid
			FROM material_purchases
			WHERE company_id = ?
			GROUP BY supplier_id
		) pu ON pu.supplier_id = s.id
		LEFT JOIN (
			SELECT supplier_id, SUM(amount) AS unlinked
			FROM supplier_payments
			WHERE company_id = ? AND purchase_id IS NULL
			GROUP BY supplier_id
		) pa ON pa.supplier_id = s.id
		WHERE s.company_id = ? AND s.deleted_at IS NULL
		ORDER BY s.name ASC
	`, companyID, companyID, companyID).Scan(&rows).Error
	return rows, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Supplier, error) {
	var s Supplier
	err := dbtx.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) Update(ctx context.Context, s *Supplier) error {
	return dbtx.Conn(ctx, r.db, r.tx).Save(s).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	res := dbtx.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&Supplier{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) HasLedgerRecords(ctx context.Context, companyID, id string) (bool, error) {
	var found bool
	err := dbtx.Conn(ctx, r.db, r.tx).Raw(`
		SELECT EXISTS (SELECT 1 FROM material_purchases WHERE company_id = ? AND supplier_id = ?)
		    OR EXISTS (SELECT 1 FROM supplier_payments WHERE company_id = ? AND supplier_id = ?)
	`, companyID, id, companyID, id).Scan(&found).Error
	return found, err
}

func (r *repository) CreatePayment(ctx context.Context, p *Payment) error {
	return dbtx.Conn(ctx, r.db, r.tx).Create(p).Error
}

func (r *repository) FindPayments(ctx context.Context, companyID string, f PaymentFilter) ([]PaymentView, error) {
	var rows []PaymentView
	q := dbtx.Conn(ctx, r.db, r.tx).
		Table("supplier_payments AS sp").
		Select("sp.*, s.name AS supplier_name, p.name AS project_name, mp.purchase_number").
		Joins("JOIN suppliers s ON s.id = sp.supplier_id").
		Joins("JOIN projects p ON p.id = sp.project_id").
		Joins("LEFT JOIN material_purchases mp ON mp.id = sp.purchase_id").
		Where("sp.company_id = ?", companyID)

	if f.SupplierID != "" {
		q = q.Where("sp.supplier_id = ?", f.SupplierID)
	}
	if f.ProjectID != "" {
		q = q.Where("sp.project_id = ?", f.ProjectID)
	}
	if f.From != nil {
		q = q.Where("sp.payment_date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("sp.payment_date <= ?", *f.To)
	}

	err := q.Order("sp.payment_date DESC, sp.created_at DESC").Scan(&rows).Error
	return rows, err
}

func (r *repository) FindPaymentByID(ctx context.Context, companyID, id string) (*Payment, error) {
	var p Payment
	err := dbtx.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) DeletePayment(ctx context.Context, companyID, id string) error {
	res := dbtx.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&Payment{})
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

// LockPurchase reads the purchase with FOR UPDATE so concurrent payments
// against it serialize.
func (r *repository) LockPurchase(ctx context.Context, companyID, purchaseID string) (*PurchaseBalance, error) {
	var p PurchaseBalance
	err := dbtx.Conn(ctx, r.db, r.tx).
		Table("material_purchases").
		Select("id, supplier_id, project_id, total_amount, paid_amount, remaining_amount").
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("company_id = ? AND id = ?", companyID, purchaseID).
		Take(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) UpdatePurchaseBalance(ctx context.Context, purchaseID string, paid, remaining decimal.Decimal) error {
	return dbtx.Conn(ctx, r.db, r.tx).
		Table("material_purchases").
		Where("id = ?", purchaseID).
		Updates(map[string]any{
			"paid_amount":      paid,
			"remaining_amount": remaining,
			"updated_at":       gorm.Expr("now()"),
		}).Error
}
