// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/application/aggregation"
	"github.com/budget-tracker/backend/internal/domain/valueobject"
)

// ExportTransactionsInput represents the input for the CSV export.
type ExportTransactionsInput struct {
	UserID  uuid.UUID
	Filters valueobject.TransactionFilters
}

// ExportTransactionsOutput holds the rendered CSV and its download name.
type ExportTransactionsOutput struct {
	Filename string
	Content  string
	Rows     int
}

// ExportTransactionsUseCase renders the filtered transaction list as CSV in the
// user's display currency.
type ExportTransactionsUseCase struct {
	list        *ListTransactionsUseCase
	preferences adapter.PreferenceStore
	clock       adapter.Clock
}

// NewExportTransactionsUseCase creates a new ExportTransactionsUseCase instance.
func NewExportTransactionsUseCase(
	list *ListTransactionsUseCase,
	preferences adapter.PreferenceStore,
	clock adapter.Clock,
) *ExportTransactionsUseCase {
	return &ExportTransactionsUseCase{
		list:        list,
		preferences: preferences,
		clock:       clock,
	}
}

// Execute performs the export.
func (uc *ExportTransactionsUseCase) Execute(ctx context.Context, input ExportTransactionsInput) (*ExportTransactionsOutput, error) {
	listed, err := uc.list.Execute(ctx, ListTransactionsInput(input))
	if err != nil {
		return nil, err
	}

	currency, _, err := uc.preferences.GetCurrency(ctx, input.UserID)
	if err != nil {
		slog.Warn("Failed to load currency preference, exporting in default currency",
			"userID", input.UserID,
			"error", err,
		)
		currency = valueobject.DefaultCurrency
	}

	return &ExportTransactionsOutput{
		Filename: fmt.Sprintf("transactions-%s.csv", uc.clock.Now().Format("2006-01-02")),
		Content:  aggregation.ExportCSV(listed.Transactions, currency),
		Rows:     len(listed.Transactions),
	}, nil
}
