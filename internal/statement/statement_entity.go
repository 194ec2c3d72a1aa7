package statement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	KindWorker         = "worker"
	KindProjectDaily   = "project_daily"
	KindSupplier       = "supplier"
	KindProjectWorkers = "project_workers"
)

const (
	ExportPending = "PENDING"
	ExportDone    = "DONE"
	ExportFailed  = "FAILED"
)

const exportNumberPrefix = "EXP"

func IsValidKind(k string) bool {
	switch k {
	case KindWorker, KindProjectDaily, KindSupplier, KindProjectWorkers:
		return true
	}
	return false
}

// ExportJob tracks an asynchronous statement rendering.
type ExportJob struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	CompanyID    uuid.UUID  `gorm:"column:company_id;type:uuid;not null;uniqueIndex:uq_export_number,priority:1"`
	ExportNumber string     `gorm:"column:export_number;size:20;not null;uniqueIndex:uq_export_number,priority:2"`
	Kind         string     `gorm:"column:kind;size:30;not null"`
	Format       string     `gorm:"column:format;size:10;not null"`
	Params       string     `gorm:"column:params;type:jsonb;not null"`
	Status       string     `gorm:"column:status;size:10;not null"`
	FileURL      *string    `gorm:"column:file_url;type:text"`
	Error        *string    `gorm:"column:error;type:text"`
	RequestedBy  *uuid.UUID `gorm:"column:requested_by;type:uuid"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
	CompletedAt  *time.Time `gorm:"column:completed_at"`
}

func (ExportJob) TableName() string {
	return "statement_exports"
}

type AttendanceRow struct {
	ID              uuid.UUID       `gorm:"column:id"`
	WorkerID        uuid.UUID       `gorm:"column:worker_id"`
	WorkerName      string          `gorm:"column:worker_name"`
	ProjectID       uuid.UUID       `gorm:"column:project_id"`
	ProjectName     string          `gorm:"column:project_name"`
	AttendanceDate  time.Time       `gorm:"column:attendance_date"`
	IsPresent       bool            `gorm:"column:is_present"`
	WorkDays        decimal.Decimal `gorm:"column:work_days"`
	HoursWorked     decimal.Decimal `gorm:"column:hours_worked"`
	DailyWage       decimal.Decimal `gorm:"column:daily_wage"`
	ActualWage      decimal.Decimal `gorm:"column:actual_wage"`
	PaidAmount      decimal.Decimal `gorm:"column:paid_amount"`
	WorkDescription *string         `gorm:"column:work_description"`
}

type TransferRow struct {
	ID             uuid.UUID       `gorm:"column:id"`
	WorkerID       uuid.UUID       `gorm:"column:worker_id"`
	WorkerName     string          `gorm:"column:worker_name"`
	ProjectID      uuid.UUID       `gorm:"column:project_id"`
	ProjectName    string          `gorm:"column:project_name"`
	TransferDate   time.Time       `gorm:"column:transfer_date"`
	Amount         decimal.Decimal `gorm:"column:amount"`
	RecipientName  string          `gorm:"column:recipient_name"`
	TransferMethod string          `gorm:"column:transfer_method"`
}

// PurchaseRow.PaidAtPurchase excludes supplier payments linked to the purchase.
type PurchaseRow struct {
	ID             uuid.UUID       `gorm:"column:id"`
	PurchaseNumber string          `gorm:"column:purchase_number"`
	ProjectName    string          `gorm:"column:project_name"`
	SupplierName   *string         `gorm:"column:supplier_name"`
	MaterialName   string          `gorm:"column:material_name"`
	PurchaseType   string          `gorm:"column:purchase_type"`
	PurchaseDate   time.Time       `gorm:"column:purchase_date"`
	TotalAmount    decimal.Decimal `gorm:"column:total_amount"`
	PaidAmount     decimal.Decimal `gorm:"column:paid_amount"`
	PaidAtPurchase decimal.Decimal `gorm:"column:paid_at_purchase"`
}

type PaymentRow struct {
	ID              uuid.UUID       `gorm:"column:id"`
	SupplierName    string          `gorm:"column:supplier_name"`
	ProjectName     string          `gorm:"column:project_name"`
	PaymentDate     time.Time       `gorm:"column:payment_date"`
	Amount          decimal.Decimal `gorm:"column:amount"`
	PaymentMethod   string          `gorm:"column:payment_method"`
	ReferenceNumber *string         `gorm:"column:reference_number"`
}

// FundRow covers fund injections and transfers from or to other projects.
type FundRow struct {
	ID           uuid.UUID       `gorm:"column:id"`
	TransferDate time.Time       `gorm:"column:transfer_date"`
	Amount       decimal.Decimal `gorm:"column:amount"`
	Counterparty string          `gorm:"column:counterparty"`
	Incoming     bool            `gorm:"column:incoming"`
	Between      bool            `gorm:"column:between_projects"`
}
