package dailysummary

import "github.com/shopspring/decimal"

type SummaryResponse struct {
	ProjectID                     string          `json:"project_id"`
	SummaryDate                   string          `json:"summary_date"`
	CarriedForward                decimal.Decimal `json:"carried_forward"`
	TotalIncome                   decimal.Decimal `json:"total_income"`
	TotalExpenses                 decimal.Decimal `json:"total_expenses"`
	TotalFundTransfers            decimal.Decimal `json:"total_fund_transfers"`
	TotalIncomingProjectTransfers decimal.Decimal `json:"total_incoming_project_transfers"`
	TotalWorkerWages              decimal.Decimal `json:"total_worker_wages"`
	TotalMaterialCosts            decimal.Decimal `json:"total_material_costs"`
	TotalWorkerTransfers          decimal.Decimal `json:"total_worker_transfers"`
	TotalSupplierPayments         decimal.Decimal `json:"total_supplier_payments"`
	TotalOutgoingProjectTransfers decimal.Decimal `json:"total_outgoing_project_transfers"`
	RemainingBalance              decimal.Decimal `json:"remaining_balance"`
}

type RebuildRequest struct {
	From string `json:"from" binding:"required"`
}

type RebuildResult struct {
	ProjectID  string `json:"project_id"`
	From       string `json:"from"`
	Recomputed int    `json:"recomputed"`
	Removed    int64  `json:"removed"`
}
