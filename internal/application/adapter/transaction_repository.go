// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// TransactionFilter defines the store-side narrowing applied before aggregation.
// Search, sort and the relative date filters run in the aggregation engine, not here.
type TransactionFilter struct {
	UserID     uuid.UUID
	StartDate  *time.Time // Inclusive
	EndDate    *time.Time // Inclusive
	CategoryID *uuid.UUID
	Type       *entity.TransactionType
	Limit      int // 0 means no limit
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByIDWithCategory retrieves a transaction with its category by ID.
	FindByIDWithCategory(ctx context.Context, id uuid.UUID) (*entity.TransactionWithCategory, error)

	// FindByFilter retrieves transactions newest first, with the category projection resolved.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.TransactionWithCategory, error)

	// Update updates every field of an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete permanently removes a transaction.
	Delete(ctx context.Context, id uuid.UUID) error
}
