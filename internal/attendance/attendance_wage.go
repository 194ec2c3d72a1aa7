package attendance

import (
	"strings"
	"time"

	attendanceerrors "go-sitebooks/internal/attendance/errors"
	"go-sitebooks/internal/shared/money"

	"github.com/shopspring/decimal"
)

var (
	maxWorkDays  = decimal.NewFromInt(2)
	workDaySteps = decimal.NewFromInt(4)
)

// applyInput copies in onto a and recomputes every derived amount.
// fallbackWage is the worker's current wage, used when no override is given.
func applyInput(a *Attendance, in AttendanceInput, fallbackWage decimal.Decimal) error {
	a.IsPresent = in.IsPresent == nil || *in.IsPresent
	a.StartTime = trimmed(in.StartTime)
	a.EndTime = trimmed(in.EndTime)
	a.WorkDescription = in.WorkDescription
	a.Notes = in.Notes

	a.DailyWage = fallbackWage
	if in.DailyWage != nil {
		a.DailyWage = *in.DailyWage
	}
	a.DailyWage = money.Round(a.DailyWage)
	if !money.Positive(a.DailyWage) {
		return attendanceerrors.ErrInvalidDailyWage
	}

	switch {
	case !a.IsPresent:
		a.WorkDays = decimal.Zero
	case in.WorkDays != nil:
		a.WorkDays = *in.WorkDays
	default:
		a.WorkDays = decimal.NewFromInt(1)
	}
	if !validWorkDays(a.WorkDays) {
		return attendanceerrors.ErrInvalidWorkDays
	}

	a.HoursWorked = decimal.Zero
	if in.HoursWorked != nil && !in.HoursWorked.IsNegative() {
		a.HoursWorked = in.HoursWorked.Round(2)
	}
	if a.StartTime != nil || a.EndTime != nil {
		hours, err := hoursBetween(a.StartTime, a.EndTime)
		if err != nil {
			return err
		}
		a.HoursWorked = hours
	}

	a.ActualWage = money.Round(a.DailyWage.Mul(a.WorkDays))

	a.PaidAmount = decimal.Zero
	if in.PaidAmount != nil {
		a.PaidAmount = money.Round(*in.PaidAmount)
	}
	if a.PaidAmount.IsNegative() || a.PaidAmount.GreaterThan(a.ActualWage) {
		return attendanceerrors.ErrInvalidPaidAmount
	}

	a.RemainingAmount = a.ActualWage.Sub(a.PaidAmount)
	a.PaymentType = paymentType(a.ActualWage, a.PaidAmount)
	return nil
}

func validWorkDays(d decimal.Decimal) bool {
	if d.IsNegative() || d.GreaterThan(maxWorkDays) {
		return false
	}
	q := d.Mul(workDaySteps)
	return q.Equal(q.Truncate(0))
}

func paymentType(actual, paid decimal.Decimal) string {
	switch {
	case paid.Equal(actual):
		return PaymentFull
	case paid.IsZero():
		return PaymentCredit
	default:
		return PaymentPartial
	}
}

// hoursBetween requires both bounds on the same day.
func hoursBetween(start, end *string) (decimal.Decimal, error) {
	if start == nil || end == nil {
		return decimal.Zero, attendanceerrors.ErrInvalidTimeRange
	}
	s, err := time.Parse("15:04", *start)
	if err != nil {
		return decimal.Zero, attendanceerrors.ErrInvalidTimeRange
	}
	e, err := time.Parse("15:04", *end)
	if err != nil {
		return decimal.Zero, attendanceerrors.ErrInvalidTimeRange
	}
	if !e.After(s) {
		return decimal.Zero, attendanceerrors.ErrInvalidTimeRange
	}
	minutes := decimal.NewFromInt(int64(e.Sub(s) / time.Minute))
	return minutes.Div(decimal.NewFromInt(60)).Round(2), nil
}

func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	return &s
}
