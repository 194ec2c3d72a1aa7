package statement

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"go-sitebooks/internal/dailysummary"
	"go-sitebooks/internal/shared/dateutil"

	"github.com/shopspring/decimal"
)

const (
	entryAttendance = "attendance"
	entryTransfer   = "transfer"
	entryPurchase   = "purchase"
	entryPayment    = "payment"
)

func periodOf(r dateutil.Range) Period {
	return Period{From: dateutil.Format(r.From), To: dateutil.Format(r.To)}
}

// BuildWorkerReport orders attendance before transfers on the same day.
func BuildWorkerReport(workerID, workerName string, r dateutil.Range, att []AttendanceRow, trs []TransferRow) WorkerReport {
	type keyed struct {
		date  time.Time
		order int
		entry WorkerEntry
	}
	list := make([]keyed, 0, len(att)+len(trs))

	totals := WorkerTotals{
		TotalWorkDays:    decimal.Zero,
		TotalHours:       decimal.Zero,
		TotalEarned:      decimal.Zero,
		TotalPaid:        decimal.Zero,
		TotalTransferred: decimal.Zero,
	}
	byProject := map[string]*ProjectBreakdown{}
	var projectOrder []string
	project := func(id, name string) *ProjectBreakdown {
		if p, ok := byProject[id]; ok {
			return p
		}
		p := &ProjectBreakdown{
			ProjectID:   id,
			ProjectName: name,
			WorkDays:    decimal.Zero,
			Earned:      decimal.Zero,
			Paid:        decimal.Zero,
			Transferred: decimal.Zero,
		}
		byProject[id] = p
		projectOrder = append(projectOrder, id)
		return p
	}

	for _, a := range att {
		desc := ""
		if a.WorkDescription != nil {
			desc = *a.WorkDescription
		}
		if !a.IsPresent {
			desc = strings.TrimSpace("absent " + desc)
		}
		list = append(list, keyed{date: a.AttendanceDate, order: 0, entry: WorkerEntry{
			Date:        dateutil.Format(a.AttendanceDate),
			Kind:        entryAttendance,
			ProjectID:   a.ProjectID.String(),
			ProjectName: a.ProjectName,
			WorkDays:    a.WorkDays,
			Hours:       a.HoursWorked,
			Earned:      a.ActualWage,
			Paid:        a.PaidAmount,
			Transferred: decimal.Zero,
			Description: desc,
		}})

		totals.TotalWorkDays = totals.TotalWorkDays.Add(a.WorkDays)
		totals.TotalHours = totals.TotalHours.Add(a.HoursWorked)
		totals.TotalEarned = totals.TotalEarned.Add(a.ActualWage)
		totals.TotalPaid = totals.TotalPaid.Add(a.PaidAmount)
		totals.AttendanceCount++

		p := project(a.ProjectID.String(), a.ProjectName)
		p.WorkDays = p.WorkDays.Add(a.WorkDays)
		p.Earned = p.Earned.Add(a.ActualWage)
		p.Paid = p.Paid.Add(a.PaidAmount)
	}

	for _, t := range trs {
		list = append(list, keyed{date: t.TransferDate, order: 1, entry: WorkerEntry{
			Date:        dateutil.Format(t.TransferDate),
			Kind:        entryTransfer,
			ProjectID:   t.ProjectID.String(),
			ProjectName: t.ProjectName,
			WorkDays:    decimal.Zero,
			Hours:       decimal.Zero,
			Earned:      decimal.Zero,
			Paid:        decimal.Zero,
			Transferred: t.Amount,
			Description: fmt.Sprintf("%s via %s", t.RecipientName, t.TransferMethod),
		}})

		totals.TotalTransferred = totals.TotalTransferred.Add(t.Amount)
		totals.TransferCount++

		p := project(t.ProjectID.String(), t.ProjectName)
		p.Transferred = p.Transferred.Add(t.Amount)
	}

	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].date.Equal(list[j].date) {
			return list[i].date.Before(list[j].date)
		}
		return list[i].order < list[j].order
	})

	entries := make([]WorkerEntry, len(list))
	for i, k := range list {
		entries[i] = k.entry
	}

	projects := make([]ProjectBreakdown, 0, len(projectOrder))
	for _, id := range projectOrder {
		p := byProject[id]
		p.Remaining = p.Earned.Sub(p.Paid).Sub(p.Transferred)
		projects = append(projects, *p)
	}
	sort.SliceStable(projects, func(i, j int) bool { return projects[i].ProjectName < projects[j].ProjectName })

	totals.Remaining = totals.TotalEarned.Sub(totals.TotalPaid).Sub(totals.TotalTransferred)

	return WorkerReport{
		WorkerID:   workerID,
		WorkerName: workerName,
		Period:     periodOf(r),
		Entries:    entries,
		Projects:   projects,
		Totals:     totals,
	}
}

// BuildProjectReport lays the day's ledger lines under each stored summary.
func BuildProjectReport(
	projectID, projectName string,
	r dateutil.Range,
	summaries []dailysummary.SummaryResponse,
	att []AttendanceRow,
	purchases []PurchaseRow,
	transfers []TransferRow,
	payments []PaymentRow,
	funds []FundRow,
) ProjectReport {
	items := map[string][]LineItem{}
	add := func(d time.Time, it LineItem) {
		key := dateutil.Format(d)
		items[key] = append(items[key], it)
	}

	for _, f := range funds {
		kind := "fund_transfer"
		desc := "Fund transfer"
		if f.Between {
			kind = "project_transfer"
			if f.Incoming {
				desc = "From project " + f.Counterparty
			} else {
				desc = "To project " + f.Counterparty
			}
		} else if f.Counterparty != "" {
			desc = "Fund transfer from " + f.Counterparty
		}
		add(f.TransferDate, LineItem{Kind: kind, Description: desc, Amount: f.Amount, Incoming: f.Incoming})
	}
	for _, a := range att {
		if a.PaidAmount.IsZero() {
			continue
		}
		add(a.AttendanceDate, LineItem{Kind: "wage", Description: "Wage " + a.WorkerName, Amount: a.PaidAmount})
	}
	for _, p := range purchases {
		if !p.PaidAtPurchase.IsPositive() {
			continue
		}
		add(p.PurchaseDate, LineItem{Kind: entryPurchase, Description: p.PurchaseNumber + " " + p.MaterialName, Amount: p.PaidAtPurchase})
	}
	for _, t := range transfers {
		add(t.TransferDate, LineItem{Kind: "worker_transfer", Description: t.WorkerName + " to " + t.RecipientName, Amount: t.Amount})
	}
	for _, p := range payments {
		add(p.PaymentDate, LineItem{Kind: "supplier_payment", Description: "Payment " + p.SupplierName, Amount: p.Amount})
	}

	report := ProjectReport{
		ProjectID:      projectID,
		ProjectName:    projectName,
		Period:         periodOf(r),
		Days:           make([]ProjectDay, 0, len(summaries)),
		OpeningBalance: decimal.Zero,
		ClosingBalance: decimal.Zero,
		Totals: ProjectTotals{
			TotalIncome:                   decimal.Zero,
			TotalExpenses:                 decimal.Zero,
			TotalFundTransfers:            decimal.Zero,
			TotalIncomingProjectTransfers: decimal.Zero,
			TotalWorkerWages:              decimal.Zero,
			TotalMaterialCosts:            decimal.Zero,
			TotalWorkerTransfers:          decimal.Zero,
			TotalSupplierPayments:         decimal.Zero,
			TotalOutgoingProjectTransfers: decimal.Zero,
		},
	}

	for i, s := range summaries {
		if i == 0 {
			report.OpeningBalance = s.CarriedForward
		}
		report.ClosingBalance = s.RemainingBalance

		t := &report.Totals
		t.TotalIncome = t.TotalIncome.Add(s.TotalIncome)
		t.TotalExpenses = t.TotalExpenses.Add(s.TotalExpenses)
		t.TotalFundTransfers = t.TotalFundTransfers.Add(s.TotalFundTransfers)
		t.TotalIncomingProjectTransfers = t.TotalIncomingProjectTransfers.Add(s.TotalIncomingProjectTransfers)
		t.TotalWorkerWages = t.TotalWorkerWages.Add(s.TotalWorkerWages)
		t.TotalMaterialCosts = t.TotalMaterialCosts.Add(s.TotalMaterialCosts)
		t.TotalWorkerTransfers = t.TotalWorkerTransfers.Add(s.TotalWorkerTransfers)
		t.TotalSupplierPayments = t.TotalSupplierPayments.Add(s.TotalSupplierPayments)
		t.TotalOutgoingProjectTransfers = t.TotalOutgoingProjectTransfers.Add(s.TotalOutgoingProjectTransfers)

		dayItems := items[s.SummaryDate]
		if dayItems == nil {
			dayItems = []LineItem{}
		}
		report.Days = append(report.Days, ProjectDay{Date: s.SummaryDate, Summary: s, Items: dayItems})
	}
	return report
}

// BuildSupplierReport runs the balance from the opening amount; purchases
// come before payments on the same day.
func BuildSupplierReport(supplierID, supplierName string, r dateutil.Range, opening decimal.Decimal, purchases []PurchaseRow, payments []PaymentRow) SupplierReport {
	type keyed struct {
		date  time.Time
		order int
		entry SupplierEntry
	}
	list := make([]keyed, 0, len(purchases)+len(payments))

	totals := SupplierTotals{
		TotalPurchases:      decimal.Zero,
		TotalPaidAtPurchase: decimal.Zero,
		TotalPayments:       decimal.Zero,
	}

	for _, p := range purchases {
		list = append(list, keyed{date: p.PurchaseDate, order: 0, entry: SupplierEntry{
			Date:        dateutil.Format(p.PurchaseDate),
			Kind:        entryPurchase,
			Reference:   p.PurchaseNumber,
			ProjectName: p.ProjectName,
			Description: p.MaterialName + " (" + p.PurchaseType + ")",
			Debit:       p.TotalAmount,
			Credit:      p.PaidAtPurchase,
		}})
		totals.TotalPurchases = totals.TotalPurchases.Add(p.TotalAmount)
		totals.TotalPaidAtPurchase = totals.TotalPaidAtPurchase.Add(p.PaidAtPurchase)
	}
	for _, p := range payments {
		ref := ""
		if p.ReferenceNumber != nil {
			ref = *p.ReferenceNumber
		}
		list = append(list, keyed{date: p.PaymentDate, order: 1, entry: SupplierEntry{
			Date:        dateutil.Format(p.PaymentDate),
			Kind:        entryPayment,
			Reference:   ref,
			ProjectName: p.ProjectName,
			Description: "Payment by " + p.PaymentMethod,
			Debit:       decimal.Zero,
			Credit:      p.Amount,
		}})
		totals.TotalPayments = totals.TotalPayments.Add(p.Amount)
	}

	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].date.Equal(list[j].date) {
			return list[i].date.Before(list[j].date)
		}
		return list[i].order < list[j].order
	})

	balance := opening
	entries := make([]SupplierEntry, len(list))
	for i, k := range list {
		balance = balance.Add(k.entry.Debit).Sub(k.entry.Credit)
		k.entry.Balance = balance
		entries[i] = k.entry
	}
	totals.Outstanding = balance

	return SupplierReport{
		SupplierID:     supplierID,
		SupplierName:   supplierName,
		Period:         periodOf(r),
		OpeningBalance: opening,
		Entries:        entries,
		Totals:         totals,
	}
}

func BuildProjectWorkersReport(projectID, projectName string, r dateutil.Range, att []AttendanceRow, trs []TransferRow) ProjectWorkersReport {
	rows := map[string]*WorkerSummaryRow{}
	row := func(id, name string) *WorkerSummaryRow {
		if w, ok := rows[id]; ok {
			return w
		}
		w := &WorkerSummaryRow{
			WorkerID:    id,
			WorkerName:  name,
			Days:        decimal.Zero,
			Earned:      decimal.Zero,
			Paid:        decimal.Zero,
			Transferred: decimal.Zero,
		}
		rows[id] = w
		return w
	}

	for _, a := range att {
		w := row(a.WorkerID.String(), a.WorkerName)
		w.Days = w.Days.Add(a.WorkDays)
		w.Earned = w.Earned.Add(a.ActualWage)
		w.Paid = w.Paid.Add(a.PaidAmount)
	}
	for _, t := range trs {
		w := row(t.WorkerID.String(), t.WorkerName)
		w.Transferred = w.Transferred.Add(t.Amount)
	}

	totals := WorkerSummaryRow{
		WorkerName:  "Total",
		Days:        decimal.Zero,
		Earned:      decimal.Zero,
		Paid:        decimal.Zero,
		Transferred: decimal.Zero,
	}
	out := make([]WorkerSummaryRow, 0, len(rows))
	for _, w := range rows {
		w.Remaining = w.Earned.Sub(w.Paid).Sub(w.Transferred)
		out = append(out, *w)

		totals.Days = totals.Days.Add(w.Days)
		totals.Earned = totals.Earned.Add(w.Earned)
		totals.Paid = totals.Paid.Add(w.Paid)
		totals.Transferred = totals.Transferred.Add(w.Transferred)
	}
	totals.Remaining = totals.Earned.Sub(totals.Paid).Sub(totals.Transferred)

	sort.Slice(out, func(i, j int) bool {
		if out[i].WorkerName != out[j].WorkerName {
			return out[i].WorkerName < out[j].WorkerName
		}
		return out[i].WorkerID < out[j].WorkerID
	})

	return ProjectWorkersReport{
		ProjectID:   projectID,
		ProjectName: projectName,
		Period:      periodOf(r),
		Rows:        out,
		Totals:      totals,
	}
}
