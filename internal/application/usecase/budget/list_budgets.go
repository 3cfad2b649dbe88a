// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/application/aggregation"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// maxConcurrentSpendQueries bounds the per-budget transaction queries in flight.
const maxConcurrentSpendQueries = 4

// ListBudgetsInput represents the input for listing budgets.
type ListBudgetsInput struct {
	UserID uuid.UUID
}

// BudgetOutput is a budget with its spend recomputed from transactions.
type BudgetOutput struct {
	Budget   *entity.BudgetWithCategory
	Progress aggregation.BudgetProgress
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []*BudgetOutput
}

// ListBudgetsUseCase lists budgets together with their spend.
type ListBudgetsUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(
	budgetRepo adapter.BudgetRepository,
	transactionRepo adapter.TransactionRepository,
) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the listing. Spend is never cached; every call re-reads the
// expenses inside each budget's window.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	budgets, err := uc.budgetRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	outputs := make([]*BudgetOutput, len(budgets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentSpendQueries)

	for i, b := range budgets {
		i, b := i, b
		g.Go(func() error {
			expenseType := entity.TransactionTypeExpense
			transactions, err := uc.transactionRepo.FindByFilter(gctx, adapter.TransactionFilter{
				UserID:     input.UserID,
				CategoryID: &b.Budget.CategoryID,
				Type:       &expenseType,
				StartDate:  &b.Budget.StartDate,
				EndDate:    &b.Budget.EndDate,
			})
			if err != nil {
				return fmt.Errorf("failed to load spend for budget %s: %w", b.Budget.ID, err)
			}

			outputs[i] = &BudgetOutput{
				Budget:   b,
				Progress: aggregation.EvaluateBudget(b.Budget, transactions),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &ListBudgetsOutput{
		Budgets: outputs,
	}, nil
}
