// Package preference contains display preference use cases.
package preference

import (
	"context"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/domain/valueobject"
)

// SetCurrencyInput represents the input for changing the display currency.
type SetCurrencyInput struct {
	UserID uuid.UUID
	Code   string
}

// SetCurrencyOutput represents the newly stored currency.
type SetCurrencyOutput struct {
	Currency valueobject.Currency
}

// SetCurrencyUseCase stores the user's display currency.
type SetCurrencyUseCase struct {
	preferences adapter.PreferenceStore
}

// NewSetCurrencyUseCase creates a new SetCurrencyUseCase instance.
func NewSetCurrencyUseCase(preferences adapter.PreferenceStore) *SetCurrencyUseCase {
	return &SetCurrencyUseCase{
		preferences: preferences,
	}
}

// Execute validates the code against the catalog and stores it.
func (uc *SetCurrencyUseCase) Execute(ctx context.Context, input SetCurrencyInput) (*SetCurrencyOutput, error) {
	currency, ok := valueobject.LookupCurrency(input.Code)
	if !ok {
		return nil, domainerror.NewPreferenceError(
			domainerror.ErrCodeUnsupportedCurrency,
			"currency '"+input.Code+"' is not supported",
			domainerror.ErrUnsupportedCurrency,
		)
	}

	if err := uc.preferences.SetCurrency(ctx, input.UserID, currency); err != nil {
		return nil, domainerror.NewPreferenceError(
			domainerror.ErrCodePreferenceStoreFailure,
			"failed to save currency preference",
			err,
		)
	}

	return &SetCurrencyOutput{
		Currency: currency,
	}, nil
}
