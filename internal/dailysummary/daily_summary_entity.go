package dailysummary

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DailySummary is the cash position of one project at the end of one day.
type DailySummary struct {
	ID                            uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	CompanyID                     uuid.UUID       `gorm:"column:company_id;type:uuid;not null;index"`
	ProjectID                     uuid.UUID       `gorm:"column:project_id;type:uuid;not null;uniqueIndex:uq_daily_summary_project_date,priority:1"`
	SummaryDate                   time.Time       `gorm:"column:summary_date;type:date;not null;uniqueIndex:uq_daily_summary_project_date,priority:2"`
	CarriedForward                decimal.Decimal `gorm:"column:carried_forward;type:numeric(15,2);not null;default:0"`
	TotalIncome                   decimal.Decimal `gorm:"column:total_income;type:numeric(15,2);not null;default:0"`
	TotalExpenses                 decimal.Decimal `gorm:"column:total_expenses;type:numeric(15,2);not null;default:0"`
	TotalFundTransfers            decimal.Decimal `gorm:"column:total_fund_transfers;type:numeric(15,2);not null;default:0"`
	TotalIncomingProjectTransfers decimal.Decimal `gorm:"column:total_incoming_project_transfers;type:numeric(15,2);not null;default:0"`
	TotalWorkerWages              decimal.Decimal `gorm:"column:total_worker_wages;type:numeric(15,2);not null;default:0"`
	TotalMaterialCosts            decimal.Decimal `gorm:"column:total_material_costs;type:numeric(15,2);not null;default:0"`
	TotalWorkerTransfers          decimal.Decimal `gorm:"column:total_worker_transfers;type:numeric(15,2);not null;default:0"`
	TotalSupplierPayments         decimal.Decimal `gorm:"column:total_supplier_payments;type:numeric(15,2);not null;default:0"`
	TotalOutgoingProjectTransfers decimal.Decimal `gorm:"column:total_outgoing_project_transfers;type:numeric(15,2);not null;default:0"`
	RemainingBalance              decimal.Decimal `gorm:"column:remaining_balance;type:numeric(15,2);not null;default:0"`
	UpdatedAt                     time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (DailySummary) TableName() string {
	return "daily_expense_summaries"
}

// DayTotals are the raw ledger sums of one project and day.
type DayTotals struct {
	FundTransfers            decimal.Decimal `gorm:"column:fund_transfers"`
	IncomingProjectTransfers decimal.Decimal `gorm:"column:incoming_project_transfers"`
	WorkerWages              decimal.Decimal `gorm:"column:worker_wages"`
	MaterialCosts            decimal.Decimal `gorm:"column:material_costs"`
	WorkerTransfers          decimal.Decimal `gorm:"column:worker_transfers"`
	SupplierPayments         decimal.Decimal `gorm:"column:supplier_payments"`
	OutgoingProjectTransfers decimal.Decimal `gorm:"column:outgoing_project_transfers"`
}

func (t DayTotals) Income() decimal.Decimal {
	return t.FundTransfers.Add(t.IncomingProjectTransfers)
}

func (t DayTotals) Expenses() decimal.Decimal {
	return t.WorkerWages.
		Add(t.MaterialCosts).
		Add(t.WorkerTransfers).
		Add(t.SupplierPayments).
		Add(t.OutgoingProjectTransfers)
}

// Build fills a summary for date from the previous day's remaining balance.
func Build(s *DailySummary, carried decimal.Decimal, t DayTotals) {
	s.CarriedForward = carried
	s.TotalFundTransfers = t.FundTransfers
	s.TotalIncomingProjectTransfers = t.IncomingProjectTransfers
	s.TotalWorkerWages = t.WorkerWages
	s.TotalMaterialCosts = t.MaterialCosts
	s.TotalWorkerTransfers = t.WorkerTransfers
	s.TotalSupplierPayments = t.SupplierPayments
	s.TotalOutgoingProjectTransfers = t.OutgoingProjectTransfers
	s.TotalIncome = t.Income()
	s.TotalExpenses = t.Expenses()
	s.RemainingBalance = carried.Add(s.TotalIncome).Sub(s.TotalExpenses)
}
