package statement

import (
	"go-sitebooks/internal/dailysummary"

	"github.com/shopspring/decimal"
)

const (
	FormatJSON = "json"
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
	FormatPDF  = "pdf"
	FormatHTML = "html"
)

// Params selects the subject and period of a statement.
type Params struct {
	WorkerID   string `json:"worker_id,omitempty" form:"worker_id"`
	ProjectID  string `json:"project_id,omitempty" form:"project_id"`
	SupplierID string `json:"supplier_id,omitempty" form:"supplier_id"`
	From       string `json:"from" form:"from"`
	To         string `json:"to" form:"to"`
}

type Period struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type WorkerEntry struct {
	Date        string          `json:"date"`
	Kind        string          `json:"kind"`
	ProjectID   string          `json:"project_id"`
	ProjectName string          `json:"project_name"`
	WorkDays    decimal.Decimal `json:"work_days"`
	Hours       decimal.Decimal `json:"hours"`
	Earned      decimal.Decimal `json:"earned"`
	Paid        decimal.Decimal `json:"paid"`
	Transferred decimal.Decimal `json:"transferred"`
	Description string          `json:"description,omitempty"`
}

type ProjectBreakdown struct {
	ProjectID   string          `json:"project_id"`
	ProjectName string          `json:"project_name"`
	WorkDays    decimal.Decimal `json:"work_days"`
	Earned      decimal.Decimal `json:"earned"`
	Paid        decimal.Decimal `json:"paid"`
	Transferred decimal.Decimal `json:"transferred"`
	Remaining   decimal.Decimal `json:"remaining"`
}

type WorkerTotals struct {
	TotalWorkDays    decimal.Decimal `json:"total_work_days"`
	TotalHours       decimal.Decimal `json:"total_hours"`
	TotalEarned      decimal.Decimal `json:"total_earned"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	TotalTransferred decimal.Decimal `json:"total_transferred"`
	Remaining        decimal.Decimal `json:"remaining"`
	AttendanceCount  int             `json:"attendance_count"`
	TransferCount    int             `json:"transfer_count"`
}

type WorkerReport struct {
	WorkerID   string             `json:"worker_id"`
	WorkerName string             `json:"worker_name"`
	Period     Period             `json:"period"`
	Entries    []WorkerEntry      `json:"entries"`
	Projects   []ProjectBreakdown `json:"projects"`
	Totals     WorkerTotals       `json:"totals"`
}

type LineItem struct {
	Kind        string          `json:"kind"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Incoming    bool            `json:"incoming"`
}

type ProjectDay struct {
	Date    string                       `json:"date"`
	Summary dailysummary.SummaryResponse `json:"summary"`
	Items   []LineItem                   `json:"items"`
}

type ProjectTotals struct {
	TotalIncome                   decimal.Decimal `json:"total_income"`
	TotalExpenses                 decimal.Decimal `json:"total_expenses"`
	TotalFundTransfers            decimal.Decimal `json:"total_fund_transfers"`
	TotalIncomingProjectTransfers decimal.Decimal `json:"total_incoming_project_transfers"`
	TotalWorkerWages              decimal.Decimal `json:"total_worker_wages"`
	TotalMaterialCosts            decimal.Decimal `json:"total_material_costs"`
	TotalWorkerTransfers          decimal.Decimal `json:"total_worker_transfers"`
	TotalSupplierPayments         decimal.Decimal `json:"total_supplier_payments"`
	TotalOutgoingProjectTransfers decimal.Decimal `json:"total_outgoing_project_transfers"`
}

type ProjectReport struct {
	ProjectID      string          `json:"project_id"`
	ProjectName    string          `json:"project_name"`
	Period         Period          `json:"period"`
	Days           []ProjectDay    `json:"days"`
	Totals         ProjectTotals   `json:"totals"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
}

type SupplierEntry struct {
	Date        string          `json:"date"`
	Kind        string          `json:"kind"`
	Reference   string          `json:"reference"`
	ProjectName string          `json:"project_name"`
	Description string          `json:"description,omitempty"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

type SupplierTotals struct {
	TotalPurchases      decimal.Decimal `json:"total_purchases"`
	TotalPaidAtPurchase decimal.Decimal `json:"total_paid_at_purchase"`
	TotalPayments       decimal.Decimal `json:"total_payments"`
	Outstanding         decimal.Decimal `json:"outstanding"`
}

type SupplierReport struct {
	SupplierID     string          `json:"supplier_id"`
	SupplierName   string          `json:"supplier_name"`
	Period         Period          `json:"period"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	Entries        []SupplierEntry `json:"entries"`
	Totals         SupplierTotals  `json:"totals"`
}

type WorkerSummaryRow struct {
	WorkerID    string          `json:"worker_id"`
	WorkerName  string          `json:"worker_name"`
	Days        decimal.Decimal `json:"days"`
	Earned      decimal.Decimal `json:"earned"`
	Paid        decimal.Decimal `json:"paid"`
	Transferred decimal.Decimal `json:"transferred"`
	Remaining   decimal.Decimal `json:"remaining"`
}

type ProjectWorkersReport struct {
	ProjectID   string             `json:"project_id"`
	ProjectName string             `json:"project_name"`
	Period      Period             `json:"period"`
	Rows        []WorkerSummaryRow `json:"rows"`
	Totals      WorkerSummaryRow   `json:"totals"`
}

type ExportRequest struct {
	Kind   string `json:"kind" binding:"required,oneof=worker project_daily supplier project_workers"`
	Format string `json:"format" binding:"required,oneof=xlsx csv pdf html"`
	Params Params `json:"params"`
}

type ExportResponse struct {
	ID           string  `json:"id"`
	ExportNumber string  `json:"export_number"`
	Kind         string  `json:"kind"`
	Format       string  `json:"format"`
	Params       Params  `json:"params"`
	Status       string  `json:"status"`
	FileURL      *string `json:"file_url,omitempty"`
	Error        *string `json:"error,omitempty"`
	CreatedAt    string  `json:"created_at"`
	CompletedAt  *string `json:"completed_at,omitempty"`
}

// Rendered is a statement serialized into a downloadable file.
type Rendered struct {
	Data        []byte
	ContentType string
	FileName    string
}
