// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// DuplicateTransactionInput represents the input for transaction duplication.
type DuplicateTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
}

// DuplicateTransactionOutput represents the output of transaction duplication.
type DuplicateTransactionOutput struct {
	Transaction *entity.TransactionWithCategory
}

// DuplicateTransactionUseCase copies a transaction onto today's date.
type DuplicateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewDuplicateTransactionUseCase creates a new DuplicateTransactionUseCase instance.
func NewDuplicateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	clock adapter.Clock,
) *DuplicateTransactionUseCase {
	return &DuplicateTransactionUseCase{
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute performs the duplication.
func (uc *DuplicateTransactionUseCase) Execute(ctx context.Context, input DuplicateTransactionInput) (*DuplicateTransactionOutput, error) {
	source, err := uc.transactionRepo.FindByIDWithCategory(ctx, input.TransactionID)
	if err != nil && !errors.Is(err, domainerror.ErrTransactionNotFound) {
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	if err != nil || source.Transaction.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	duplicate := source.Transaction.Duplicate(uc.clock.Now())

	if err := uc.transactionRepo.Create(ctx, duplicate); err != nil {
		return nil, fmt.Errorf("failed to duplicate transaction: %w", err)
	}

	return &DuplicateTransactionOutput{
		Transaction: &entity.TransactionWithCategory{
			Transaction: duplicate,
			Category:    source.Category,
		},
	}, nil
}
