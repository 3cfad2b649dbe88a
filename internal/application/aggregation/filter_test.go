package aggregation

import (
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/domain/entity"
	"github.com/budget-tracker/backend/internal/domain/valueobject"
)

func TestApply_DateFilterBoundaries(t *testing.T) {
	now := time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		filter valueobject.DateFilter
		day    string
		want   bool
	}{
		{"today includes today", valueobject.DateFilterToday, "2024-03-15", true},
		{"today excludes yesterday", valueobject.DateFilterToday, "2024-03-14", false},
		{"month includes one calendar month back", valueobject.DateFilterMonth, "2024-02-15", true},
		{"month excludes the day before", valueobject.DateFilterMonth, "2024-02-14", false},
		{"week includes seven days back", valueobject.DateFilterWeek, "2024-03-08", true},
		{"week excludes eight days back", valueobject.DateFilterWeek, "2024-03-07", false},
		{"year includes one year back", valueobject.DateFilterYear, "2023-03-15", true},
		{"year excludes the day before", valueobject.DateFilterYear, "2023-03-14", false},
		{"all has no lower bound", valueobject.DateFilterAll, "1999-01-01", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filters := valueobject.DefaultTransactionFilters()
			filters.Date = tt.filter
			got := Apply([]*entity.TransactionWithCategory{txn(entity.TransactionTypeExpense, "1", tt.day)}, filters, now)
			if (len(got) == 1) != tt.want {
				t.Errorf("expected pass=%v, got %d results", tt.want, len(got))
			}
		})
	}
}

func TestApply_SearchMatchesDescriptionOrCategory(t *testing.T) {
	food := uuid.New()
	coffee := txn(entity.TransactionTypeExpense, "4.5", "2024-01-05", withDescription("Morning COFFEE"))
	groceries := txn(entity.TransactionTypeExpense, "40", "2024-01-06", withDescription("Market"), withCategory(food, "Coffee & Food", "#f59e0b"))
	salary := txn(entity.TransactionTypeIncome, "1000", "2024-01-07", withDescription("Salary"))
	list := []*entity.TransactionWithCategory{coffee, groceries, salary}

	filters := valueobject.DefaultTransactionFilters()
	filters.Search = "coffee"
	filters.SortOrder = valueobject.SortOrderAsc

	got := Apply(list, filters, date("2024-02-01"))
	want := []uuid.UUID{coffee.Transaction.ID, groceries.Transaction.ID}
	if !slices.Equal(ids(got), want) {
		t.Errorf("expected %v, got %v", want, ids(got))
	}

	filters.Search = ""
	if got := Apply(list, filters, date("2024-02-01")); len(got) != 3 {
		t.Errorf("expected empty search to match everything, got %d", len(got))
	}
}

func TestApply_TypeFilter(t *testing.T) {
	list := []*entity.TransactionWithCategory{
		txn(entity.TransactionTypeExpense, "10", "2024-01-01"),
		txn(entity.TransactionTypeIncome, "20", "2024-01-02"),
		txn(entity.TransactionTypeExpense, "30", "2024-01-03"),
	}

	filters := valueobject.DefaultTransactionFilters()
	filters.Type = valueobject.TypeFilterExpense
	got := Apply(list, filters, date("2024-02-01"))
	if len(got) != 2 {
		t.Fatalf("expected 2 expenses, got %d", len(got))
	}
	for _, g := range got {
		if g.Transaction.Type != entity.TransactionTypeExpense {
			t.Errorf("unexpected type %s", g.Transaction.Type)
		}
	}
}

func TestApply_SortStability(t *testing.T) {
	first := txn(entity.TransactionTypeExpense, "5", "2024-01-05")
	second := txn(entity.TransactionTypeExpense, "7", "2024-01-05")
	earlier := txn(entity.TransactionTypeExpense, "9", "2024-01-01")
	list := []*entity.TransactionWithCategory{first, earlier, second}

	filters := valueobject.DefaultTransactionFilters()
	filters.SortOrder = valueobject.SortOrderAsc

	got := ids(Apply(list, filters, date("2024-02-01")))
	want := []uuid.UUID{earlier.Transaction.ID, first.Transaction.ID, second.Transaction.ID}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	filters.SortOrder = valueobject.SortOrderDesc
	got = ids(Apply(list, filters, date("2024-02-01")))
	want = []uuid.UUID{first.Transaction.ID, second.Transaction.ID, earlier.Transaction.ID}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestApply_SortKeys(t *testing.T) {
	a := txn(entity.TransactionTypeExpense, "30", "2024-01-02", withDescription("banana"))
	b := txn(entity.TransactionTypeExpense, "4.5", "2024-01-03", withDescription("Apple"))
	c := txn(entity.TransactionTypeExpense, "100", "2024-01-01")
	list := []*entity.TransactionWithCategory{a, b, c}

	tests := []struct {
		name  string
		by    valueobject.SortBy
		order valueobject.SortOrder
		want  []uuid.UUID
	}{
		{"amount asc", valueobject.SortByAmount, valueobject.SortOrderAsc, []uuid.UUID{b.Transaction.ID, a.Transaction.ID, c.Transaction.ID}},
		{"amount desc", valueobject.SortByAmount, valueobject.SortOrderDesc, []uuid.UUID{c.Transaction.ID, a.Transaction.ID, b.Transaction.ID}},
		{"description asc puts missing first", valueobject.SortByDescription, valueobject.SortOrderAsc, []uuid.UUID{c.Transaction.ID, b.Transaction.ID, a.Transaction.ID}},
		{"date desc", valueobject.SortByDate, valueobject.SortOrderDesc, []uuid.UUID{b.Transaction.ID, a.Transaction.ID, c.Transaction.ID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filters := valueobject.DefaultTransactionFilters()
			filters.SortBy = tt.by
			filters.SortOrder = tt.order
			got := ids(Apply(list, filters, date("2024-02-01")))
			if !slices.Equal(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestApply_IsIdempotentAndLeavesInputUntouched(t *testing.T) {
	list := []*entity.TransactionWithCategory{
		txn(entity.TransactionTypeExpense, "3", "2024-01-03", withDescription("c")),
		txn(entity.TransactionTypeIncome, "1", "2024-01-01", withDescription("a")),
		txn(entity.TransactionTypeExpense, "2", "2024-01-02", withDescription("b")),
	}
	before := ids(list)

	filters := valueobject.ParseTransactionFilters("", "all", "all", "amount", "asc")
	now := date("2024-02-01")

	once := Apply(list, filters, now)
	twice := Apply(list, filters, now)

	if !slices.Equal(ids(once), ids(twice)) {
		t.Errorf("expected identical results, got %v and %v", ids(once), ids(twice))
	}
	if !slices.Equal(ids(list), before) {
		t.Error("expected input order to be preserved")
	}
}
