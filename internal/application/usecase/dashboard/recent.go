// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// fetchRecent loads the most recent transactions the dashboard cards aggregate over.
func fetchRecent(
	ctx context.Context,
	transactionRepo adapter.TransactionRepository,
	userID uuid.UUID,
	limit int,
) ([]*entity.TransactionWithCategory, error) {
	transactions, err := transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent transactions: %w", err)
	}
	return transactions, nil
}
