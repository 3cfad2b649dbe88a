package aggregation

import (
	"testing"
	"time"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

func TestSummarize_EmptyList(t *testing.T) {
	got := Summarize(nil, nil)
	if !got.Income.IsZero() || !got.Expenses.IsZero() || !got.Balance.IsZero() {
		t.Errorf("expected all-zero summary, got %+v", got)
	}
}

func TestSummarize_TotalsAndCutoff(t *testing.T) {
	list := []*entity.TransactionWithCategory{
		txn(entity.TransactionTypeIncome, "1000", "2024-02-20"),
		txn(entity.TransactionTypeExpense, "250.50", "2024-02-28"),
		txn(entity.TransactionTypeIncome, "200", "2024-03-01"),
		txn(entity.TransactionTypeExpense, "75.25", "2024-03-10"),
	}

	all := Summarize(list, nil)
	if !all.Income.Equal(dec("1200")) || !all.Expenses.Equal(dec("325.75")) || !all.Balance.Equal(dec("874.25")) {
		t.Errorf("unexpected all-time summary %+v", all)
	}

	cutoff := date("2024-03-01")
	month := Summarize(list, &cutoff)
	if !month.Income.Equal(dec("200")) || !month.Expenses.Equal(dec("75.25")) {
		t.Errorf("unexpected cutoff summary %+v", month)
	}
}

func TestSummarize_Additivity(t *testing.T) {
	a := []*entity.TransactionWithCategory{
		txn(entity.TransactionTypeIncome, "10.10", "2024-01-01"),
		txn(entity.TransactionTypeExpense, "3.30", "2024-01-15"),
	}
	b := []*entity.TransactionWithCategory{
		txn(entity.TransactionTypeIncome, "0.20", "2024-02-01"),
		txn(entity.TransactionTypeExpense, "9.99", "2023-12-31"),
	}
	union := append(append([]*entity.TransactionWithCategory{}, a...), b...)

	for _, cutoff := range []*time.Time{nil, ptr(date("2024-01-01"))} {
		whole := Summarize(union, cutoff)
		left := Summarize(a, cutoff)
		right := Summarize(b, cutoff)

		if !whole.Income.Equal(left.Income.Add(right.Income)) {
			t.Errorf("income not additive: %s != %s + %s", whole.Income, left.Income, right.Income)
		}
		if !whole.Expenses.Equal(left.Expenses.Add(right.Expenses)) {
			t.Errorf("expenses not additive: %s != %s + %s", whole.Expenses, left.Expenses, right.Expenses)
		}
		if !whole.Balance.Equal(whole.Income.Sub(whole.Expenses)) {
			t.Errorf("balance %s != income - expenses", whole.Balance)
		}
	}
}

func TestSummarizePeriods(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	list := []*entity.TransactionWithCategory{
		txn(entity.TransactionTypeIncome, "100", "2023-12-31"),
		txn(entity.TransactionTypeIncome, "50", "2024-01-10"),
		txn(entity.TransactionTypeExpense, "20", "2024-03-01"),
	}

	got := SummarizePeriods(list, now)
	if !got.AllTime.Income.Equal(dec("150")) {
		t.Errorf("expected all-time income 150, got %s", got.AllTime.Income)
	}
	if !got.Year.Income.Equal(dec("50")) {
		t.Errorf("expected year income 50, got %s", got.Year.Income)
	}
	if !got.Month.Income.IsZero() || !got.Month.Expenses.Equal(dec("20")) {
		t.Errorf("unexpected month summary %+v", got.Month)
	}
}

func ptr[T any](v T) *T {
	return &v
}
