// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/domain/valueobject"
)

// PreferenceStore persists per-user display preferences.
type PreferenceStore interface {
	// GetCurrency returns the stored currency. found is false when nothing
	// usable is stored, in which case the default currency is returned.
	GetCurrency(ctx context.Context, userID uuid.UUID) (currency valueobject.Currency, found bool, err error)

	// SetCurrency overwrites the stored currency.
	SetCurrency(ctx context.Context, userID uuid.UUID, currency valueobject.Currency) error

	// Ping checks connectivity with the backing store.
	Ping(ctx context.Context) error
}
