// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
const MaxDescriptionLength = 255

// validateFields checks the user-editable fields shared by create and update.
func validateFields(description string, amount decimal.Decimal, transactionType entity.TransactionType) error {
	if len([]rune(description)) > MaxDescriptionLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	if amount.IsNegative() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must not be negative",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if !transactionType.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	return nil
}

// resolveCategory loads the category a transaction points at and checks that the
// user owns it and that its type matches the transaction type.
// A nil categoryID leaves the transaction uncategorized.
func resolveCategory(
	ctx context.Context,
	categoryRepo adapter.CategoryRepository,
	userID uuid.UUID,
	categoryID *uuid.UUID,
	transactionType entity.TransactionType,
) (*entity.CategoryRef, error) {
	if categoryID == nil {
		return nil, nil
	}

	category, err := categoryRepo.FindByID(ctx, *categoryID)
	if err != nil && !errors.Is(err, domainerror.ErrCategoryNotFound) {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if err != nil || category.UserID != userID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFoundForTransaction,
		)
	}

	if !category.Type.Matches(transactionType) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCategoryTypeMismatch,
			fmt.Sprintf("a %s category cannot label an %s transaction", category.Type, transactionType),
			domainerror.ErrCategoryTypeMismatch,
		)
	}

	return category.Ref(), nil
}

// findOwned loads a transaction and hides records owned by other users.
func findOwned(
	ctx context.Context,
	transactionRepo adapter.TransactionRepository,
	transactionID, userID uuid.UUID,
) (*entity.Transaction, error) {
	transaction, err := transactionRepo.FindByID(ctx, transactionID)
	if err != nil && !errors.Is(err, domainerror.ErrTransactionNotFound) {
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	if err != nil || transaction.UserID != userID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}
	return transaction, nil
}
