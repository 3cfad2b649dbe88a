// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPeriod represents the length of a budget window.
type BudgetPeriod string

const (
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

// IsValid reports whether p is one of the known budget periods.
func (p BudgetPeriod) IsValid() bool {
	switch p {
	case BudgetPeriodWeekly, BudgetPeriodMonthly, BudgetPeriodYearly:
		return true
	}
	return false
}

// EndDate returns start advanced by one period using calendar arithmetic.
func (p BudgetPeriod) EndDate(start time.Time) time.Time {
	switch p {
	case BudgetPeriodWeekly:
		return start.AddDate(0, 0, 7)
	case BudgetPeriodYearly:
		return start.AddDate(1, 0, 0)
	default:
		return start.AddDate(0, 1, 0)
	}
}

// BudgetStatus is the informational tier derived from spent / amount.
type BudgetStatus string

const (
	BudgetStatusNormal     BudgetStatus = "normal"
	BudgetStatusWarning    BudgetStatus = "warning"
	BudgetStatusOverBudget BudgetStatus = "over_budget"
)

// Budget represents a spending ceiling for one expense category over a fixed date window.
type Budget struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	Period     BudgetPeriod
	StartDate  time.Time
	EndDate    time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewBudget creates a new Budget starting on the given day; the end date is derived from the period.
func NewBudget(userID, categoryID uuid.UUID, amount decimal.Decimal, period BudgetPeriod, start time.Time) *Budget {
	now := time.Now().UTC()
	startDate := CivilDate(start)

	return &Budget{
		ID:         uuid.New(),
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     amount,
		Period:     period,
		StartDate:  startDate,
		EndDate:    period.EndDate(startDate),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// BudgetWithCategory represents a budget with its category projection.
type BudgetWithCategory struct {
	Budget   *Budget
	Category *CategoryRef
}
