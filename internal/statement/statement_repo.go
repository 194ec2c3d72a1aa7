package statement

import (
	"context"
	"database/sql"
	"time"

	"go-sitebooks/internal/shared/dateutil"
	"go-sitebooks/internal/shared/dbtx"
	"go-sitebooks/internal/tenant"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=statement_repo.go -destination=mock/statement_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	WorkerName(ctx context.Context, companyID, workerID string) (string, error)
	ProjectName(ctx context.Context, companyID, projectID string) (string, error)
	SupplierName(ctx context.Context, companyID, supplierID string) (string, error)

	Attendance(ctx context.Context, companyID, workerID, projectID string, r dateutil.Range) ([]AttendanceRow, error)
	WorkerTransfers(ctx context.Context, companyID, workerID, projectID string, r dateutil.Range) ([]TransferRow, error)
	Purchases(ctx context.Context, companyID, projectID, supplierID string, r dateutil.Range) ([]PurchaseRow, error)
	SupplierPayments(ctx context.Context, companyID, projectID, supplierID string, r dateutil.Range) ([]PaymentRow, error)
	ProjectFunds(ctx context.Context, companyID, projectID string, r dateutil.Range) ([]FundRow, error)
	SupplierOpeningBalance(ctx context.Context, companyID, supplierID string, before time.Time) (decimal.Decimal, error)

	CreateExport(ctx context.Context, job *ExportJob) error
	FindExport(ctx context.Context, companyID, id string) (*ExportJob, error)
	UpdateExport(ctx context.Context, job *ExportJob) error
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

func (r *repository) WorkerName(ctx context.Context, companyID, workerID string) (string, error) {
	return r.name(ctx, "workers", companyID, workerID)
}

func (r *repository) ProjectName(ctx context.Context, companyID, projectID string) (string, error) {
	return r.name(ctx, "projects", companyID, projectID)
}

func (r *repository) SupplierName(ctx context.Context, companyID, supplierID string) (string, error) {
	return r.name(ctx, "suppliers", companyID, supplierID)
}

// name returns gorm.ErrRecordNotFound for unknown or deleted rows.
func (r *repository) name(ctx context.Context, table, companyID, id string) (string, error) {
	var row struct {
		Name string `gorm:"column:name"`
	}
	err := dbtx.Conn(ctx, r.db, r.tx).
		Table(table).
		Select("name").
		Where("company_id = ? AND id = ? AND deleted_at IS NULL", companyID, id).
		Take(&row).Error
	return row.Name, err
}

func (r *repository) Attendance(ctx context.Context, companyID, workerID, projectID string, rg dateutil.Range) ([]AttendanceRow, error) {
	var rows []AttendanceRow
	q := dbtx.Conn(ctx, r.db, r.tx).
		Table("worker_attendance AS a").
		Select(`a.id, a.worker_id, w.name AS worker_name, a.project_id, p.name AS project_name,
			a.attendance_date, a.is_present, a.work_days, a.hours_worked, a.daily_wage,
			a.actual_wage, a.paid_amount, a.work_description`).
		Joins("JOIN workers w ON w.id = a.worker_id").
		Joins("JOIN projects p ON p.id = a.project_id").
		Where("a.company_id = ? AND a.attendance_date BETWEEN ? AND ?", companyID, rg.From, rg.To)
	if workerID != "" {
		q = q.Where("a.worker_id = ?", workerID)
	}
	if projectID != "" {
		q = q.Where("a.project_id = ?", projectID)
	}
	err := q.Order("a.attendance_date ASC, w.name ASC").Scan(&rows).Error
	return rows, err
}

func (r *repository) WorkerTransfers(ctx context.Context, companyID, workerID, projectID string, rg dateutil.Range) ([]TransferRow, error) {
	var rows []TransferRow
	q := dbtx.Conn(ctx, r.db, r.tx).
		Table("worker_transfers AS t").
		Select(`t.id, t.worker_id, w.name AS worker_name, t.project_id, p.name AS project_name,
			t.transfer_date, t.amount, t.recipient_name, t.transfer_method`).
		Joins("JOIN workers w ON w.id = t.worker_id").
		Joins("JOIN projects p ON p.id = t.project_id").
		Where("t.company_id = ? AND t.transfer_date BETWEEN ? AND ?", companyID, rg.From, rg.To)
	if workerID != "" {
		q = q.Where("t.worker_id = ?", workerID)
	}
	if projectID != "" {
		q = q.Where("t.project_id = ?", projectID)
	}
	err := q.Order("t.transfer_date ASC, t.created_at ASC").Scan(&rows).Error
	return rows, err
}

func (r *repository) Purchases(ctx context.Context, companyID, projectID, supplierID string, rg dateutil.Range) ([]PurchaseRow, error) {
	var rows []PurchaseRow
	q := dbtx.Conn(ctx, r.db, r.tx).
		Table("material_purchases AS mp").
		Select(`mp.id, mp.purchase_number, p.name AS project_name, s.name AS supplier_name,
			mp.material_name, mp.purchase_type, mp.purchase_date, mp.total_amount, mp.paid_amount,
			mp.paid_amount - COALESCE((SELECT SUM(sp.amount) FROM supplier_payments sp WHERE sp.purchase_id = mp.id), 0) AS paid_at_purchase`).
		Joins("JOIN projects p ON p.id = mp.project_id").
		Joins("LEFT JOIN suppliers s ON s.id = mp.supplier_id").
		Where("mp.company_id = ? AND mp.purchase_date BETWEEN ? AND ?", companyID, rg.From, rg.To)
	if projectID != "" {
		q = q.Where("mp.project_id = ?", projectID)
	}
	if supplierID != "" {
		q = q.Where("mp.supplier_id = ?", supplierID)
	}
	err := q.Order("mp.purchase_date ASC, mp.purchase_number ASC").Scan(&rows).Error
	return rows, err
}

func (r *repository) SupplierPayments(ctx context.Context, companyID, projectID, supplierID string, rg dateutil.Range) ([]PaymentRow, error) {
	var rows []PaymentRow
	q := dbtx.Conn(ctx, r.db, r.tx).
		Table("supplier_payments AS sp").
		Select(`sp.id, s.name AS supplier_name, p.name AS project_name, sp.payment_date,
			sp.amount, sp.payment_method, sp.reference_number`).
		Joins("JOIN suppliers s ON s.id = sp.supplier_id").
		Joins("JOIN projects p ON p.id = sp.project_id").
		Where("sp.company_id = ? AND sp.payment_date BETWEEN ? AND ?", companyID, rg.From, rg.To)
	if projectID != "" {
		q = q.Where("sp.project_id = ?", projectID)
	}
	if supplierID != "" {
		q = q.Where("sp.supplier_id = ?", supplierID)
	}
	err := q.Order("sp.payment_date ASC, sp.created_at ASC").Scan(&rows).Error
	return rows, err
}

const projectFundsSQL = `
SELECT ft.id, ft.transfer_date, ft.amount, COALESCE(ft.sender_name, '') AS counterparty,
	TRUE AS incoming, FALSE AS between_projects
FROM fund_transfers ft
WHERE ft.company_id = @company AND ft.project_id = @project AND ft.transfer_date BETWEEN @from AND @to
UNION ALL
SELECT pt.id, pt.transfer_date, pt.amount, fp.name AS counterparty,
	TRUE AS incoming, TRUE AS between_projects
FROM project_fund_transfers pt JOIN projects fp ON fp.id = pt.from_project_id
WHERE pt.company_id = @company AND pt.to_project_id = @project AND pt.transfer_date BETWEEN @from AND @to
UNION ALL
SELECT pt.id, pt.transfer_date, pt.amount, tp.name AS counterparty,
	FALSE AS incoming, TRUE AS between_projects
FROM project_fund_transfers pt JOIN projects tp ON tp.id = pt.to_project_id
WHERE pt.company_id = @company AND pt.from_project_id = @project AND pt.transfer_date BETWEEN @from AND @to
ORDER BY transfer_date ASC`

func (r *repository) ProjectFunds(ctx context.Context, companyID, projectID string, rg dateutil.Range) ([]FundRow, error) {
	var rows []FundRow
	err := dbtx.Conn(ctx, r.db, r.tx).
		Raw(projectFundsSQL, map[string]any{
			"company": companyID,
			"project": projectID,
			"from":    rg.From,
			"to":      rg.To,
		}).
		Scan(&rows).Error
	return rows, err
}

const supplierOpeningSQL = `
SELECT
	COALESCE((SELECT SUM(mp.total_amount - mp.paid_amount
		+ COALESCE((SELECT SUM(sp.amount) FROM supplier_payments sp WHERE sp.purchase_id = mp.id), 0))
		FROM material_purchases mp
		WHERE mp.company_id = @company AND mp.supplier_id = @supplier AND mp.purchase_date < @before), 0)
	- COALESCE((SELECT SUM(sp.amount) FROM supplier_payments sp
		WHERE sp.company_id = @company AND sp.supplier_id = @supplier AND sp.payment_date < @before), 0)`

// SupplierOpeningBalance is what the company owed the supplier before the date.
func (r *repository) SupplierOpeningBalance(ctx context.Context, companyID, supplierID string, before time.Time) (decimal.Decimal, error) {
	var opening decimal.Decimal
	err := dbtx.Conn(ctx, r.db, r.tx).
		Raw(supplierOpeningSQL, map[string]any{"company": companyID, "supplier": supplierID, "before": before}).
		Row().
		Scan(&opening)
	return opening, err
}

func (r *repository) CreateExport(ctx context.Context, job *ExportJob) error {
	return dbtx.Conn(ctx, r.db, r.tx).Create(job).Error
}

func (r *repository) FindExport(ctx context.Context, companyID, id string) (*ExportJob, error) {
	var job ExportJob
	err := dbtx.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		First(&job, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *repository) UpdateExport(ctx context.Context, job *ExportJob) error {
	return dbtx.Conn(ctx, r.db, r.tx).
		Model(&ExportJob{}).
		Scopes(tenant.Scope(job.CompanyID.String())).
		Where("id = ?", job.ID).
		Updates(map[string]any{
			"status":       job.Status,
			"file_url":     job.FileURL,
			"error":        job.Error,
			"completed_at": job.CompletedAt,
		}).Error
}
