// Package preference contains display preference use cases.
package preference

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/valueobject"
)

// GetCurrencyInput represents the input for reading the display currency.
type GetCurrencyInput struct {
	UserID uuid.UUID
}

// GetCurrencyOutput represents the display currency and whether it was stored.
type GetCurrencyOutput struct {
	Currency valueobject.Currency
	Stored   bool
}

// GetCurrencyUseCase reads the user's display currency.
type GetCurrencyUseCase struct {
	preferences adapter.PreferenceStore
}

// NewGetCurrencyUseCase creates a new GetCurrencyUseCase instance.
func NewGetCurrencyUseCase(preferences adapter.PreferenceStore) *GetCurrencyUseCase {
	return &GetCurrencyUseCase{
		preferences: preferences,
	}
}

// Execute returns the stored currency. A failing store degrades to the default
// currency instead of failing the request.
func (uc *GetCurrencyUseCase) Execute(ctx context.Context, input GetCurrencyInput) (*GetCurrencyOutput, error) {
	currency, found, err := uc.preferences.GetCurrency(ctx, input.UserID)
	if err != nil {
		slog.Warn("Failed to read currency preference, using default",
			"userID", input.UserID,
			"error", err,
		)
		return &GetCurrencyOutput{Currency: valueobject.DefaultCurrency}, nil
	}

	return &GetCurrencyOutput{
		Currency: currency,
		Stored:   found,
	}, nil
}
