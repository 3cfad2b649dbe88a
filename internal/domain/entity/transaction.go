// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// Transaction represents a single dated income or expense record.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        time.Time       // Calendar date, midnight UTC
	Description string          // Optional
	Amount      decimal.Decimal // Non-negative; the sign is carried by Type
	Type        TransactionType
	CategoryID  *uuid.UUID // Optional, can be uncategorized
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	date time.Time,
	description string,
	amount decimal.Decimal,
	transactionType TransactionType,
	categoryID *uuid.UUID,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        CivilDate(date),
		Description: description,
		Amount:      amount,
		Type:        transactionType,
		CategoryID:  categoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Duplicate returns a copy of the transaction with a fresh ID dated on the given day.
func (t *Transaction) Duplicate(date time.Time) *Transaction {
	var categoryID *uuid.UUID
	if t.CategoryID != nil {
		id := *t.CategoryID
		categoryID = &id
	}
	return NewTransaction(t.UserID, date, t.Description, t.Amount, t.Type, categoryID)
}

// CategoryRef is the denormalized {name, color} projection of a transaction's category.
type CategoryRef struct {
	Name  string
	Color string
}

// TransactionWithCategory represents a transaction with its resolved category.
// Category is nil when the transaction is uncategorized or its category no longer exists.
type TransactionWithCategory struct {
	Transaction *Transaction
	Category    *CategoryRef
}

// CategoryName returns the resolved category name, or "" when unresolved.
func (t *TransactionWithCategory) CategoryName() string {
	if t.Category == nil {
		return ""
	}
	return t.Category.Name
}

// CivilDate strips the time of day from t, keeping its calendar date, as midnight UTC.
func CivilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
