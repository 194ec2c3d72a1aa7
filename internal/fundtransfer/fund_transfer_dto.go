package fundtransfer

import "github.com/shopspring/decimal"

type FundTransferRequest struct {
	ProjectID      string          `json:"project_id" binding:"required,uuid"`
	Amount         decimal.Decimal `json:"amount"`
	SenderName     *string         `json:"sender_name" binding:"omitempty,max=150"`
	TransferType   string          `json:"transfer_type" binding:"required,oneof=cash bank hawala"`
	TransferNumber *string         `json:"transfer_number" binding:"omitempty,max=50"`
	TransferDate   string          `json:"transfer_date" binding:"required"`
	Notes          *string         `json:"notes"`
}

type FundTransferResponse struct {
	ID             string          `json:"id"`
	ProjectID      string          `json:"project_id"`
	ProjectName    string          `json:"project_name,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	SenderName     *string         `json:"sender_name,omitempty"`
	TransferType   string          `json:"transfer_type"`
	TransferNumber *string         `json:"transfer_number,omitempty"`
	TransferDate   string          `json:"transfer_date"`
	Notes          *string         `json:"notes,omitempty"`
}

type ProjectTransferRequest struct {
	FromProjectID string          `json:"from_project_id" binding:"required,uuid"`
	ToProjectID   string          `json:"to_project_id" binding:"required,uuid"`
	Amount        decimal.Decimal `json:"amount"`
	Reason        *string         `json:"reason"`
	TransferDate  string          `json:"transfer_date" binding:"required"`
}

type ProjectTransferResponse struct {
	ID              string          `json:"id"`
	FromProjectID   string          `json:"from_project_id"`
	FromProjectName string          `json:"from_project_name,omitempty"`
	ToProjectID     string          `json:"to_project_id"`
	ToProjectName   string          `json:"to_project_name,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	Reason          *string         `json:"reason,omitempty"`
	TransferDate    string          `json:"transfer_date"`
}
