package aggregation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// SeriesPoint is one day of the income/expense chart.
type SeriesPoint struct {
	Date     string          `json:"date"`
	Label    string          `json:"label"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}

// DailySeries returns one point per day for the days ending on now's date,
// oldest first. Days without transactions are present with zero totals.
func DailySeries(transactions []*entity.TransactionWithCategory, now time.Time, days int) []SeriesPoint {
	if days <= 0 {
		return []SeriesPoint{}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	first := today.AddDate(0, 0, -(days - 1))
	layout := seriesLabelLayout(days)

	points := make([]SeriesPoint, days)
	for i := range points {
		day := first.AddDate(0, 0, i)
		points[i] = SeriesPoint{
			Date:     day.Format(time.DateOnly),
			Label:    day.Format(layout),
			Income:   decimal.Zero,
			Expenses: decimal.Zero,
		}
	}

	for _, t := range transactions {
		if t == nil || t.Transaction == nil {
			continue
		}
		date := entity.CivilDate(t.Transaction.Date)
		if date.Before(first) || date.After(today) {
			continue
		}
		i := int(date.Sub(first).Hours() / 24)
		switch t.Transaction.Type {
		case entity.TransactionTypeIncome:
			points[i].Income = points[i].Income.Add(t.Transaction.Amount)
		case entity.TransactionTypeExpense:
			points[i].Expenses = points[i].Expenses.Add(t.Transaction.Amount)
		}
	}

	for i := range points {
		points[i].Net = points[i].Income.Sub(points[i].Expenses)
	}

	return points
}

func seriesLabelLayout(days int) string {
	switch {
	case days <= 7:
		return "Mon"
	case days <= 30:
		return "Jan 2"
	default:
		return "Jan"
	}
}
