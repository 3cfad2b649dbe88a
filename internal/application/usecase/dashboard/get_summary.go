// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/application/aggregation"
)

// GetSummaryInput represents the input for the dashboard summary.
type GetSummaryInput struct {
	UserID uuid.UUID
}

// GetSummaryOutput holds the all-time, month and year summaries.
type GetSummaryOutput struct {
	Summaries aggregation.PeriodSummaries
}

// GetSummaryUseCase computes the dashboard summary cards.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
	limit           int
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(transactionRepo adapter.TransactionRepository, clock adapter.Clock, limit int) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
		clock:           clock,
		limit:           limit,
	}
}

// Execute computes the summaries over the most recent transactions.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	transactions, err := fetchRecent(ctx, uc.transactionRepo, input.UserID, uc.limit)
	if err != nil {
		return nil, err
	}

	return &GetSummaryOutput{
		Summaries: aggregation.SummarizePeriods(transactions, uc.clock.Now()),
	}, nil
}
