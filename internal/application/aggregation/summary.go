package aggregation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// Summary holds income and expense totals and their difference.
type Summary struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
}

// Summarize totals income and expenses. When cutoff is non-nil only transactions
// dated on or after it are counted.
func Summarize(transactions []*entity.TransactionWithCategory, cutoff *time.Time) Summary {
	income := decimal.Zero
	expenses := decimal.Zero

	for _, t := range transactions {
		if t == nil || t.Transaction == nil {
			continue
		}
		if cutoff != nil && t.Transaction.Date.Before(*cutoff) {
			continue
		}
		switch t.Transaction.Type {
		case entity.TransactionTypeIncome:
			income = income.Add(t.Transaction.Amount)
		case entity.TransactionTypeExpense:
			expenses = expenses.Add(t.Transaction.Amount)
		}
	}

	return Summary{
		Income:   income,
		Expenses: expenses,
		Balance:  income.Sub(expenses),
	}
}

// MonthStart returns the first day of now's month.
func MonthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// YearStart returns January 1st of now's year.
func YearStart(now time.Time) time.Time {
	return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
}

// PeriodSummaries is the all-time, month-to-date and year-to-date view of one list.
type PeriodSummaries struct {
	AllTime Summary `json:"all_time"`
	Month   Summary `json:"month"`
	Year    Summary `json:"year"`
}

// SummarizePeriods computes the three dashboard summaries relative to now.
func SummarizePeriods(transactions []*entity.TransactionWithCategory, now time.Time) PeriodSummaries {
	monthStart := MonthStart(now)
	yearStart := YearStart(now)

	return PeriodSummaries{
		AllTime: Summarize(transactions, nil),
		Month:   Summarize(transactions, &monthStart),
		Year:    Summarize(transactions, &yearStart),
	}
}
