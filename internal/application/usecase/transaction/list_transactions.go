// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/application/aggregation"
	"github.com/budget-tracker/backend/internal/domain/entity"
	"github.com/budget-tracker/backend/internal/domain/valueobject"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	UserID  uuid.UUID
	Filters valueobject.TransactionFilters
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.TransactionWithCategory
}

// ListTransactionsUseCase fetches the most recent transactions and runs them
// through the filter and sort stage.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
	limit           int
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
// limit caps how many of the most recent transactions are considered.
func NewListTransactionsUseCase(
	transactionRepo adapter.TransactionRepository,
	clock adapter.Clock,
	limit int,
) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
		clock:           clock,
		limit:           limit,
	}
}

// Execute performs the listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	recent, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID: input.UserID,
		Limit:  uc.limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &ListTransactionsOutput{
		Transactions: aggregation.Apply(recent, input.Filters, uc.clock.Now()),
	}, nil
}
