// Package valueobject defines immutable value types shared across the domain.
package valueobject

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrMalformedAmount is returned when a raw amount cannot be parsed as a number.
var ErrMalformedAmount = errors.New("malformed amount")

// ParseAmount parses a decimal amount from its textual form.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, ErrMalformedAmount
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, ErrMalformedAmount
	}
	return d, nil
}

// AmountOrZero parses raw and treats anything unparseable as zero.
// The second return value reports whether raw was well formed.
func AmountOrZero(raw string) (decimal.Decimal, bool) {
	d, err := ParseAmount(raw)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
