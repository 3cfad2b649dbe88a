package aggregation

import (
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

const (
	warningThreshold    = 80
	overBudgetThreshold = 100
)

// BudgetProgress is a budget's derived spend and status.
type BudgetProgress struct {
	Spent      decimal.Decimal     `json:"spent"`
	Percentage decimal.Decimal     `json:"percentage"`
	Status     entity.BudgetStatus `json:"status"`
}

// BudgetSpent sums expenses in the budget's category dated within
// [StartDate, EndDate], both ends inclusive.
func BudgetSpent(budget *entity.Budget, transactions []*entity.TransactionWithCategory) decimal.Decimal {
	spent := decimal.Zero
	for _, t := range transactions {
		if t == nil || t.Transaction == nil {
			continue
		}
		txn := t.Transaction
		if txn.Type != entity.TransactionTypeExpense {
			continue
		}
		if txn.CategoryID == nil || *txn.CategoryID != budget.CategoryID {
			continue
		}
		if txn.Date.Before(budget.StartDate) || txn.Date.After(budget.EndDate) {
			continue
		}
		spent = spent.Add(txn.Amount)
	}
	return spent
}

// EvaluateBudget computes spend, percentage of the ceiling and the status tier.
// The tier comes from the exact ratio; only the reported percentage is rounded.
func EvaluateBudget(budget *entity.Budget, transactions []*entity.TransactionWithCategory) BudgetProgress {
	spent := BudgetSpent(budget, transactions)

	ratio := decimal.Zero
	if !budget.Amount.IsZero() {
		ratio = spent.Mul(hundred).Div(budget.Amount)
	}

	return BudgetProgress{
		Spent:      spent,
		Percentage: ratio.Round(2),
		Status:     BudgetStatusFor(ratio),
	}
}

// BudgetStatusFor maps a spend percentage to normal (<= 80), warning (<= 100)
// or over budget.
func BudgetStatusFor(percentage decimal.Decimal) entity.BudgetStatus {
	switch {
	case percentage.GreaterThan(decimal.NewFromInt(overBudgetThreshold)):
		return entity.BudgetStatusOverBudget
	case percentage.GreaterThan(decimal.NewFromInt(warningThreshold)):
		return entity.BudgetStatusWarning
	default:
		return entity.BudgetStatusNormal
	}
}
