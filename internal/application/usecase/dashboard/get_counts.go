// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/budget-tracker/backend/internal/application/adapter"
)

// GetCountsInput represents the input for the navigation badge counts.
type GetCountsInput struct {
	UserID uuid.UUID
}

// GetCountsOutput holds the badge counts.
type GetCountsOutput struct {
	Categories int64
	Budgets    int64
}

// GetCountsUseCase counts a user's categories and budgets.
type GetCountsUseCase struct {
	categoryRepo adapter.CategoryRepository
	budgetRepo   adapter.BudgetRepository
}

// NewGetCountsUseCase creates a new GetCountsUseCase instance.
func NewGetCountsUseCase(categoryRepo adapter.CategoryRepository, budgetRepo adapter.BudgetRepository) *GetCountsUseCase {
	return &GetCountsUseCase{
		categoryRepo: categoryRepo,
		budgetRepo:   budgetRepo,
	}
}

// Execute runs both counts concurrently.
func (uc *GetCountsUseCase) Execute(ctx context.Context, input GetCountsInput) (*GetCountsOutput, error) {
	var output GetCountsOutput

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := uc.categoryRepo.CountByUser(gctx, input.UserID)
		if err != nil {
			return fmt.Errorf("failed to count categories: %w", err)
		}
		output.Categories = n
		return nil
	})
	g.Go(func() error {
		n, err := uc.budgetRepo.CountByUser(gctx, input.UserID)
		if err != nil {
			return fmt.Errorf("failed to count budgets: %w", err)
		}
		output.Budgets = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &output, nil
}
