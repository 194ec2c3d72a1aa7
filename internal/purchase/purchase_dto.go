package purchase

import "github.com/shopspring/decimal"

type PurchaseRequest struct {
	ProjectID        string           `json:"project_id" binding:"required,uuid"`
	SupplierID       *string          `json:"supplier_id" binding:"omitempty,uuid"`
	MaterialName     string           `json:"material_name" binding:"required,max=255"`
	MaterialCategory *string          `json:"material_category" binding:"omitempty,max=100"`
	Unit             string           `json:"unit" binding:"required,max=30"`
	Quantity         decimal.Decimal  `json:"quantity"`
	UnitPrice        decimal.Decimal  `json:"unit_price"`
	PurchaseType     string           `json:"purchase_type" binding:"required"`
	PaidAmount       *decimal.Decimal `json:"paid_amount"`
	InvoiceNumber    *string          `json:"invoice_number" binding:"omitempty,max=50"`
	PurchaseDate     string           `json:"purchase_date" binding:"required"`
	Notes            *string          `json:"notes"`
}

type PurchaseResponse struct {
	ID               string          `json:"id"`
	PurchaseNumber   string          `json:"purchase_number"`
	ProjectID        string          `json:"project_id"`
	ProjectName      string          `json:"project_name,omitempty"`
	SupplierID       *string         `json:"supplier_id,omitempty"`
	SupplierName     *string         `json:"supplier_name,omitempty"`
	MaterialName     string          `json:"material_name"`
	MaterialCategory *string         `json:"material_category,omitempty"`
	Unit             string          `json:"unit"`
	Quantity         decimal.Decimal `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	PurchaseType     string          `json:"purchase_type"`
	PaidAmount       decimal.Decimal `json:"paid_amount"`
	RemainingAmount  decimal.Decimal `json:"remaining_amount"`
	InvoiceNumber    *string         `json:"invoice_number,omitempty"`
	PurchaseDate     string          `json:"purchase_date"`
	Notes            *string         `json:"notes,omitempty"`
}

// PurchaseTotals summarises a filtered list.
type PurchaseTotals struct {
	Count           int             `json:"count"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
}
