// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/application/aggregation"
)

// GetCategoryBreakdownInput represents the input for getting category breakdown.
type GetCategoryBreakdownInput struct {
	UserID uuid.UUID
}

// GetCategoryBreakdownOutput represents the output of getting category breakdown.
type GetCategoryBreakdownOutput struct {
	Categories []aggregation.BreakdownItem
}

// GetCategoryBreakdownUseCase handles getting spending breakdown by category.
type GetCategoryBreakdownUseCase struct {
	transactionRepo adapter.TransactionRepository
	limit           int
	top             int
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(transactionRepo adapter.TransactionRepository, limit, top int) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{
		transactionRepo: transactionRepo,
		limit:           limit,
		top:             top,
	}
}

// Execute groups the most recent expenses by category.
func (uc *GetCategoryBreakdownUseCase) Execute(
	ctx context.Context,
	input GetCategoryBreakdownInput,
) (*GetCategoryBreakdownOutput, error) {
	transactions, err := fetchRecent(ctx, uc.transactionRepo, input.UserID, uc.limit)
	if err != nil {
		return nil, err
	}

	return &GetCategoryBreakdownOutput{
		Categories: aggregation.Breakdown(transactions, uc.top),
	}, nil
}
