package supplier

import "github.com/shopspring/decimal"

type SupplierRequest struct {
	Name          string  `json:"name" binding:"required,max=255"`
	ContactPerson *string `json:"contact_person" binding:"omitempty,max=255"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	PaymentTerms  *string `json:"payment_terms" binding:"omitempty,max=255"`
	IsActive      *bool   `json:"is_active"`
}

type SupplierResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	ContactPerson  *string         `json:"contact_person,omitempty"`
	Phone          *string         `json:"phone,omitempty"`
	Address        *string         `json:"address,omitempty"`
	PaymentTerms   *string         `json:"payment_terms,omitempty"`
	IsActive       bool            `json:"is_active"`
	TotalPurchases decimal.Decimal `json:"total_purchases"`
	TotalPaid      decimal.Decimal `json:"total_paid"`
	Outstanding    decimal.Decimal `json:"outstanding"`
	CreatedAt      string          `json:"created_at"`
}

type PaymentRequest struct {
	ProjectID       string          `json:"project_id" binding:"required,uuid"`
	PurchaseID      *string         `json:"purchase_id" binding:"omitempty,uuid"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethod   string          `json:"payment_method" binding:"required,oneof=cash bank hawala cheque"`
	ReferenceNumber *string         `json:"reference_number" binding:"omitempty,max=50"`
	PaymentDate     string          `json:"payment_date" binding:"required"`
	Notes           *string         `json:"notes"`
}

type PaymentResponse struct {
	ID              string          `json:"id"`
	SupplierID      string          `json:"supplier_id"`
	SupplierName    string          `json:"supplier_name,omitempty"`
	ProjectID       string          `json:"project_id"`
	ProjectName     string          `json:"project_name,omitempty"`
	PurchaseID      *string         `json:"purchase_id,omitempty"`
	PurchaseNumber  *string         `json:"purchase_number,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethod   string          `json:"payment_method"`
	ReferenceNumber *string         `json:"reference_number,omitempty"`
	PaymentDate     string          `json:"payment_date"`
	Notes           *string         `json:"notes,omitempty"`
}
