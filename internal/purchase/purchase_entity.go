package purchase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TypeCash   = "cash"
	TypeCredit = "credit"

	numberPrefix = "PUR"
)

type Purchase struct {
	ID               uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	CompanyID        uuid.UUID       `gorm:"column:company_id;type:uuid;not null;uniqueIndex:uq_purchase_number,priority:1"`
	ProjectID        uuid.UUID       `gorm:"column:project_id;type:uuid;not null;index"`
	SupplierID       *uuid.UUID      `gorm:"column:supplier_id;type:uuid;index"`
	PurchaseNumber   string          `gorm:"column:purchase_number;size:20;not null;uniqueIndex:uq_purchase_number,priority:2"`
	MaterialName     string          `gorm:"column:material_name;size:255;not null"`
	MaterialCategory *string         `gorm:"column:material_category;size:100"`
	Unit             string          `gorm:"column:unit;size:30;not null"`
	Quantity         decimal.Decimal `gorm:"column:quantity;type:numeric(15,3);not null"`
	UnitPrice        decimal.Decimal `gorm:"column:unit_price;type:numeric(15,2);not null"`
	TotalAmount      decimal.Decimal `gorm:"column:total_amount;type:numeric(15,2);not null"`
	PurchaseType     string          `gorm:"column:purchase_type;size:10;not null"`
	PaidAmount       decimal.Decimal `gorm:"column:paid_amount;type:numeric(15,2);not null;default:0"`
	RemainingAmount  decimal.Decimal `gorm:"column:remaining_amount;type:numeric(15,2);not null;default:0"`
	InvoiceNumber    *string         `gorm:"column:invoice_number;size:50"`
	PurchaseDate     time.Time       `gorm:"column:purchase_date;type:date;not null"`
	Notes            *string         `gorm:"column:notes;type:text"`
	CreatedAt        time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Purchase) TableName() string {
	return "material_purchases"
}

type PurchaseView struct {
	Purchase
	ProjectName  string  `gorm:"column:project_name"`
	SupplierName *string `gorm:"column:supplier_name"`
}

type Filter struct {
	ProjectID    string
	SupplierID   string
	PurchaseType string
	From         *time.Time
	To           *time.Time
}
