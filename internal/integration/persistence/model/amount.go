// Package model defines database models for persistence layer.
package model

import (
	"database/sql/driver"
	"fmt"
	"log/slog"
	"math"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/valueobject"
)

// Amount is a decimal column that never fails to scan. Values the database hands
// back that are not numbers read as zero and are logged, so one bad row cannot
// poison the sums built on top of it.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps d.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// Scan implements sql.Scanner.
func (a *Amount) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		a.Decimal = decimal.Zero
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			slog.Warn("Malformed amount read from database, treating as zero", "value", v)
			a.Decimal = decimal.Zero
			return nil
		}
		a.Decimal = decimal.NewFromFloat(v)
	case int64:
		a.Decimal = decimal.NewFromInt(v)
	case []byte:
		a.Decimal = parseStoredAmount(string(v))
	case string:
		a.Decimal = parseStoredAmount(v)
	default:
		return fmt.Errorf("unsupported amount type %T", value)
	}
	return nil
}

// Value implements driver.Valuer.
func (a Amount) Value() (driver.Value, error) {
	return a.Decimal.String(), nil
}

func parseStoredAmount(raw string) decimal.Decimal {
	d, ok := valueobject.AmountOrZero(raw)
	if !ok {
		slog.Warn("Malformed amount read from database, treating as zero", "value", raw)
	}
	return d
}
