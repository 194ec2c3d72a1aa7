// Package money holds the decimal helpers shared by the ledger modules.
// Amounts are kept as shopspring decimals end to end and rounded to two
// places before they are persisted.
package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

const Places = 2

var ErrInvalidAmount = errors.New("invalid amount")

// Round rounds half away from zero to two decimal places.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// Parse accepts user formatted amounts such as "20,000", "YER 1,500.50" or
// "-300". Everything except digits, the decimal point and a leading minus
// sign is dropped.
func Parse(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = strings.TrimSpace(strings.TrimPrefix(s, "-"))
	}

	var b strings.Builder
	b.Grow(len(s) + 1)
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	clean := b.String()
	if clean == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	if neg {
		clean = "-" + clean
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// Sum adds the values returned by pick for every item.
func Sum[T any](items []T, pick func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(pick(it))
	}
	return total
}

// Format renders an amount with thousands separators and two decimals,
// e.g. 1234567.5 -> "1,234,567.50".
func Format(d decimal.Decimal) string {
	s := Round(d).StringFixed(Places)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	pre := len(intPart) % 3
	if pre > 0 {
		b.WriteString(intPart[:pre])
	}
	for i := pre; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	out := b.String() + "." + frac
	if neg {
		return "-" + out
	}
	return out
}

// Positive reports whether d is strictly greater than zero.
func Positive(d decimal.Decimal) bool {
	return d.GreaterThan(decimal.Zero)
}
