package workertransfer

import "github.com/shopspring/decimal"

type TransferRequest struct {
	WorkerID       string          `json:"worker_id" binding:"required,uuid"`
	ProjectID      string          `json:"project_id" binding:"required,uuid"`
	Amount         decimal.Decimal `json:"amount"`
	RecipientName  string          `json:"recipient_name" binding:"required,max=150"`
	RecipientPhone *string         `json:"recipient_phone"`
	TransferMethod string          `json:"transfer_method" binding:"required"`
	TransferNumber *string         `json:"transfer_number" binding:"omitempty,max=50"`
	TransferDate   string          `json:"transfer_date" binding:"required"`
	Notes          *string         `json:"notes"`
}

type TransferResponse struct {
	ID             string          `json:"id"`
	WorkerID       string          `json:"worker_id"`
	WorkerName     string          `json:"worker_name,omitempty"`
	ProjectID      string          `json:"project_id"`
	ProjectName    string          `json:"project_name,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	RecipientName  string          `json:"recipient_name"`
	RecipientPhone *string         `json:"recipient_phone,omitempty"`
	TransferMethod string          `json:"transfer_method"`
	TransferNumber *string         `json:"transfer_number,omitempty"`
	TransferDate   string          `json:"transfer_date"`
	Notes          *string         `json:"notes,omitempty"`
}
