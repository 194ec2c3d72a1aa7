package statement

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Document is the tabular form every renderer consumes. Cells hold a
// string, an int or a decimal.Decimal.
type Document struct {
	Title    string
	Subtitle string
	Header   []string
	Rows     [][]any
	Totals   []any
}

func cellText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case decimal.Decimal:
		return x.StringFixed(2)
	default:
		return fmt.Sprint(x)
	}
}

func isNumeric(v any) bool {
	switch v.(type) {
	case int, decimal.Decimal:
		return true
	}
	return false
}

func periodText(p Period) string {
	return fmt.Sprintf("Period: %s to %s", p.From, p.To)
}

func (r WorkerReport) Document() Document {
	doc := Document{
		Title:    "Worker statement: " + r.WorkerName,
		Subtitle: periodText(r.Period),
		Header:   []string{"Date", "Type", "Project", "Work days", "Hours", "Earned", "Paid", "Transferred", "Description"},
		Rows:     make([][]any, 0, len(r.Entries)),
	}
	for _, e := range r.Entries {
		doc.Rows = append(doc.Rows, []any{
			e.Date, e.Kind, e.ProjectName, e.WorkDays, e.Hours, e.Earned, e.Paid, e.Transferred, e.Description,
		})
	}
	t := r.Totals
	doc.Totals = []any{
		"Totals", "", "", t.TotalWorkDays, t.TotalHours, t.TotalEarned, t.TotalPaid, t.TotalTransferred,
		"Remaining " + t.Remaining.StringFixed(2),
	}
	return doc
}

func (r ProjectReport) Document() Document {
	doc := Document{
		Title: "Daily expense report: " + r.ProjectName,
		Subtitle: fmt.Sprintf("%s, opening %s, closing %s",
			periodText(r.Period), r.OpeningBalance.StringFixed(2), r.ClosingBalance.StringFixed(2)),
		Header: []string{
			"Date", "Carried forward", "Income", "Wages", "Materials",
			"Worker transfers", "Supplier payments", "Outgoing transfers", "Expenses", "Remaining",
		},
		Rows: make([][]any, 0, len(r.Days)),
	}
	for _, d := range r.Days {
		s := d.Summary
		doc.Rows = append(doc.Rows, []any{
			d.Date, s.CarriedForward, s.TotalIncome, s.TotalWorkerWages, s.TotalMaterialCosts,
			s.TotalWorkerTransfers, s.TotalSupplierPayments, s.TotalOutgoingProjectTransfers,
			s.TotalExpenses, s.RemainingBalance,
		})
	}
	t := r.Totals
	doc.Totals = []any{
		"Totals", r.OpeningBalance, t.TotalIncome, t.TotalWorkerWages, t.TotalMaterialCosts,
		t.TotalWorkerTransfers, t.TotalSupplierPayments, t.TotalOutgoingProjectTransfers,
		t.TotalExpenses, r.ClosingBalance,
	}
	return doc
}

func (r SupplierReport) Document() Document {
	doc := Document{
		Title:    "Supplier statement: " + r.SupplierName,
		Subtitle: fmt.Sprintf("%s, opening balance %s", periodText(r.Period), r.OpeningBalance.StringFixed(2)),
		Header:   []string{"Date", "Type", "Reference", "Project", "Description", "Debit", "Credit", "Balance"},
		Rows:     make([][]any, 0, len(r.Entries)),
	}
	for _, e := range r.Entries {
		doc.Rows = append(doc.Rows, []any{
			e.Date, e.Kind, e.Reference, e.ProjectName, e.Description, e.Debit, e.Credit, e.Balance,
		})
	}
	t := r.Totals
	doc.Totals = []any{
		"Totals", "", "", "", "", t.TotalPurchases, t.TotalPaidAtPurchase.Add(t.TotalPayments), t.Outstanding,
	}
	return doc
}

func (r ProjectWorkersReport) Document() Document {
	doc := Document{
		Title:    "Project workers: " + r.ProjectName,
		Subtitle: periodText(r.Period),
		Header:   []string{"Worker", "Days", "Earned", "Paid", "Transferred", "Remaining"},
		Rows:     make([][]any, 0, len(r.Rows)),
	}
	for _, w := range r.Rows {
		doc.Rows = append(doc.Rows, []any{w.WorkerName, w.Days, w.Earned, w.Paid, w.Transferred, w.Remaining})
	}
	t := r.Totals
	doc.Totals = []any{"Totals", t.Days, t.Earned, t.Paid, t.Transferred, t.Remaining}
	return doc
}
