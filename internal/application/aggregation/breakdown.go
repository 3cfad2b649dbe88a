package aggregation

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// DefaultBreakdownTop is the number of categories kept by Breakdown.
const DefaultBreakdownTop = 8

var hundred = decimal.NewFromInt(100)

// BreakdownItem is one category slice of the expense breakdown.
type BreakdownItem struct {
	Name       string          `json:"name"`
	Color      string          `json:"color"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}

// Breakdown groups categorized expenses by category name, keeps the top groups by
// amount and computes each group's share of the kept total to one decimal place.
// Groups past top are dropped, not folded into an "other" bucket.
func Breakdown(transactions []*entity.TransactionWithCategory, top int) []BreakdownItem {
	if top <= 0 {
		top = DefaultBreakdownTop
	}

	groups := make([]BreakdownItem, 0)
	index := make(map[string]int)

	for _, t := range transactions {
		if t == nil || t.Transaction == nil || t.Category == nil {
			continue
		}
		if t.Transaction.Type != entity.TransactionTypeExpense {
			continue
		}
		i, ok := index[t.Category.Name]
		if !ok {
			i = len(groups)
			index[t.Category.Name] = i
			groups = append(groups, BreakdownItem{
				Name:   t.Category.Name,
				Color:  t.Category.Color,
				Amount: decimal.Zero,
			})
		}
		groups[i].Amount = groups[i].Amount.Add(t.Transaction.Amount)
	}

	slices.SortStableFunc(groups, func(a, b BreakdownItem) int {
		return b.Amount.Cmp(a.Amount)
	})
	if len(groups) > top {
		groups = groups[:top]
	}

	total := decimal.Zero
	for _, g := range groups {
		total = total.Add(g.Amount)
	}
	for i := range groups {
		groups[i].Percentage = Percentage(groups[i].Amount, total, 1)
	}

	return groups
}

// Percentage returns part / whole * 100 rounded to places, or zero when whole is zero.
func Percentage(part, whole decimal.Decimal, places int32) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Mul(hundred).Div(whole).Round(places)
}
