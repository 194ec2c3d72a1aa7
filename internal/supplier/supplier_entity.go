package supplier

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Supplier struct {
	ID            uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	CompanyID     uuid.UUID      `gorm:"column:company_id;type:uuid;not null;uniqueIndex:uq_supplier_name,priority:1"`
	Name          string         `gorm:"column:name;size:255;not null;uniqueIndex:uq_supplier_name,priority:2"`
	ContactPerson *string        `gorm:"column:contact_person;size:255"`
	Phone         *string        `gorm:"column:phone;size:20"`
	Address       *string        `gorm:"column:address;type:text"`
	PaymentTerms  *string        `gorm:"column:payment_terms;size:255"`
	IsActive      bool           `gorm:"column:is_active;not null;default:true"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Supplier) TableName() string {
	return "suppliers"
}

// SupplierBalance is a supplier with its running account totals.
type SupplierBalance struct {
	Supplier
	TotalPurchases decimal.Decimal `gorm:"column:total_purchases"`
	TotalPaid      decimal.Decimal `gorm:"column:total_paid"`
}

type Payment struct {
	ID              uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	CompanyID       uuid.UUID       `gorm:"column:company_id;type:uuid;not null;index"`
	SupplierID      uuid.UUID       `gorm:"column:supplier_id;type:uuid;not null;index"`
	ProjectID       uuid.UUID       `gorm:"column:project_id;type:uuid;not null;index"`
	PurchaseID      *uuid.UUID      `gorm:"column:purchase_id;type:uuid;index"`
	Amount          decimal.Decimal `gorm:"column:amount;type:numeric(15,2);not null"`
	PaymentMethod   string          `gorm:"column:payment_method;size:20;not null"`
	ReferenceNumber *string         `gorm:"column:reference_number;size:50"`
	PaymentDate     time.Time       `gorm:"column:payment_date;type:date;not null"`
	Notes           *string         `gorm:"column:notes;type:text"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (Payment) TableName() string {
	return "supplier_payments"
}

type PaymentView struct {
	Payment
	SupplierName   string  `gorm:"column:supplier_name"`
	ProjectName    string  `gorm:"column:project_name"`
	PurchaseNumber *string `gorm:"column:purchase_number"`
}

// PurchaseBalance is the part of a material purchase a payment settles.
type PurchaseBalance struct {
	ID              uuid.UUID       `gorm:"column:id"`
	SupplierID      *uuid.UUID      `gorm:"column:supplier_id"`
	ProjectID       uuid.UUID       `gorm:"column:project_id"`
	TotalAmount     decimal.Decimal `gorm:"column:total_amount"`
	PaidAmount      decimal.Decimal `gorm:"column:paid_amount"`
	RemainingAmount decimal.Decimal `gorm:"column:remaining_amount"`
}

type PaymentFilter struct {
	SupplierID string
	ProjectID  string
	From       *time.Time
	To         *time.Time
}
