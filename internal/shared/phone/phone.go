// Package phone validates and normalizes phone numbers to E.164.
package phone

import (
	"errors"
	"strings"

	"go-sitebooks/internal/shared/env"

	"github.com/ttacon/libphonenumber"
)

const defaultRegion = "YE"

var ErrInvalidPhone = errors.New("invalid phone number")

// DefaultRegion is the region assumed for numbers without a country code.
func DefaultRegion() string {
	return strings.ToUpper(env.String("DEFAULT_PHONE_REGION", defaultRegion))
}

// Normalize parses raw for region and returns it in E.164 form.
func Normalize(raw, region string) (string, error) {
	p, err := libphonenumber.Parse(strings.TrimSpace(raw), region)
	if err != nil || !libphonenumber.IsValidNumber(p) {
		return "", ErrInvalidPhone
	}
	return libphonenumber.Format(p, libphonenumber.E164), nil
}

// NormalizeOptional returns nil for a nil or blank number.
func NormalizeOptional(raw *string, region string) (*string, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	n, err := Normalize(*raw, region)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
