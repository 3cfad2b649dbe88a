// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget in the database.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// FindByUser retrieves a user's budgets, newest first, with the category projection resolved.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BudgetWithCategory, error)

	// CountByUser returns how many budgets a user owns.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// Delete permanently removes a budget.
	Delete(ctx context.Context, id uuid.UUID) error
}
