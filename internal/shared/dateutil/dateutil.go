package dateutil

import (
	"net/http"
	"strings"
	"time"

	"go-sitebooks/internal/shared/apperror"
)

const Layout = "2006-01-02"

// MaxRangeDays caps report ranges to a bit over one year.
const MaxRangeDays = 366

var ErrRangeTooLong = apperror.New(
	apperror.CodeInvalidInput,
	"date range must not exceed 366 days",
	http.StatusBadRequest,
)

// Parse reads a YYYY-MM-DD value as a UTC date.
func Parse(field, v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, apperror.RequiredField(field)
	}
	t, err := time.ParseInLocation(Layout, v, time.UTC)
	if err != nil {
		return time.Time{}, apperror.InvalidField(field)
	}
	return t, nil
}

// ParseOptional returns nil for an empty value.
func ParseOptional(field, v string) (*time.Time, error) {
	if strings.TrimSpace(v) == "" {
		return nil, nil
	}
	t, err := Parse(field, v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func Format(t time.Time) string {
	return t.Format(Layout)
}

// Range is an inclusive pair of dates.
type Range struct {
	From time.Time
	To   time.Time
}

// ParseRange validates from <= to and the maximum span.
func ParseRange(from, to string) (Range, error) {
	f, err := Parse("from", from)
	if err != nil {
		return Range{}, err
	}
	t, err := Parse("to", to)
	if err != nil {
		return Range{}, err
	}
	if f.After(t) {
		return Range{}, apperror.ErrInvalidDateRange
	}
	if int(t.Sub(f).Hours()/24)+1 > MaxRangeDays {
		return Range{}, ErrRangeTooLong
	}
	return Range{From: f, To: t}, nil
}

// Days lists every date of the range in order.
func (r Range) Days() []time.Time {
	var out []time.Time
	for d := r.From; !d.After(r.To); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}

func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}

// Truncate drops the clock part keeping the calendar date in UTC.
func Truncate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
