// Package aggregation holds the pure functions that reshape a transaction list
// for the dashboard: filtering and sorting, period summaries, the category
// breakdown, budget spend, the daily series and the CSV export.
//
// None of the functions here perform I/O or keep state between calls. Inputs are
// never modified; every result is a newly allocated value.
package aggregation

import (
	"slices"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/budget-tracker/backend/internal/domain/entity"
	"github.com/budget-tracker/backend/internal/domain/valueobject"
)

// Apply returns the transactions matching filters, ordered by filters.SortBy and
// filters.SortOrder. Records with equal sort keys keep their input order.
func Apply(
	transactions []*entity.TransactionWithCategory,
	filters valueobject.TransactionFilters,
	now time.Time,
) []*entity.TransactionWithCategory {
	query := strings.ToLower(filters.Search)
	startDate, bounded := filters.Date.StartDate(now)

	filtered := make([]*entity.TransactionWithCategory, 0, len(transactions))
	for _, t := range transactions {
		if t == nil || t.Transaction == nil {
			continue
		}
		if query != "" && !matchesSearch(t, query) {
			continue
		}
		if filters.Type != valueobject.TypeFilterAll && filters.Type != "" &&
			string(t.Transaction.Type) != string(filters.Type) {
			continue
		}
		if bounded && t.Transaction.Date.Before(startDate) {
			continue
		}
		filtered = append(filtered, t)
	}

	compare := comparator(filters.SortBy)
	desc := filters.SortOrder == valueobject.SortOrderDesc
	slices.SortStableFunc(filtered, func(a, b *entity.TransactionWithCategory) int {
		c := compare(a.Transaction, b.Transaction)
		if desc {
			return -c
		}
		return c
	})

	return filtered
}

func matchesSearch(t *entity.TransactionWithCategory, query string) bool {
	if strings.Contains(strings.ToLower(t.Transaction.Description), query) {
		return true
	}
	return t.Category != nil && strings.Contains(strings.ToLower(t.Category.Name), query)
}

func comparator(sortBy valueobject.SortBy) func(a, b *entity.Transaction) int {
	switch sortBy {
	case valueobject.SortByAmount:
		return func(a, b *entity.Transaction) int {
			return a.Amount.Cmp(b.Amount)
		}
	case valueobject.SortByDescription:
		// Collator holds scratch buffers; one per sort keeps Apply safe for concurrent callers.
		collator := collate.New(language.English)
		return func(a, b *entity.Transaction) int {
			return collator.CompareString(a.Description, b.Description)
		}
	default:
		return func(a, b *entity.Transaction) int {
			return a.Date.Compare(b.Date)
		}
	}
}
