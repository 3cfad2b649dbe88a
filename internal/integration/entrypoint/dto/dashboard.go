package dto

import (
	"github.com/budget-tracker/backend/internal/application/aggregation"
)

// SummaryItemResponse holds the totals for one period.
type SummaryItemResponse struct {
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Balance  string `json:"balance"`
}

// SummaryResponse represents the dashboard summary cards.
type SummaryResponse struct {
	AllTime SummaryItemResponse `json:"all_time"`
	Month   SummaryItemResponse `json:"month"`
	Year    SummaryItemResponse `json:"year"`
}

// BreakdownItemResponse represents one category slice of the expense breakdown.
type BreakdownItemResponse struct {
	Name       string `json:"name"`
	Color      string `json:"color"`
	Amount     string `json:"amount"`
	Percentage string `json:"percentage"`
}

// CategoryBreakdownResponse represents the expense breakdown by category.
type CategoryBreakdownResponse struct {
	Categories []BreakdownItemResponse `json:"categories"`
}

// SeriesPointResponse represents one day of the income/expense chart.
type SeriesPointResponse struct {
	Date     string `json:"date"`
	Label    string `json:"label"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Net      string `json:"net"`
}

// DailySeriesResponse represents the income/expense chart.
type DailySeriesResponse struct {
	Range  string                `json:"range"`
	Points []SeriesPointResponse `json:"points"`
}

// CountsResponse holds the badge counts shown in navigation.
type CountsResponse struct {
	Categories int64 `json:"categories"`
	Budgets    int64 `json:"budgets"`
}

func toSummaryItem(s aggregation.Summary) SummaryItemResponse {
	return SummaryItemResponse{
		Income:   s.Income.StringFixed(2),
		Expenses: s.Expenses.StringFixed(2),
		Balance:  s.Balance.StringFixed(2),
	}
}

// ToSummaryResponse converts period summaries to a SummaryResponse DTO.
func ToSummaryResponse(s aggregation.PeriodSummaries) SummaryResponse {
	return SummaryResponse{
		AllTime: toSummaryItem(s.AllTime),
		Month:   toSummaryItem(s.Month),
		Year:    toSummaryItem(s.Year),
	}
}

// ToCategoryBreakdownResponse converts breakdown items to a CategoryBreakdownResponse DTO.
func ToCategoryBreakdownResponse(items []aggregation.BreakdownItem) CategoryBreakdownResponse {
	categories := make([]BreakdownItemResponse, len(items))
	for i, item := range items {
		categories[i] = BreakdownItemResponse{
			Name:       item.Name,
			Color:      item.Color,
			Amount:     item.Amount.StringFixed(2),
			Percentage: item.Percentage.StringFixed(1),
		}
	}
	return CategoryBreakdownResponse{Categories: categories}
}

// ToDailySeriesResponse converts series points to a DailySeriesResponse DTO.
func ToDailySeriesResponse(chartRange string, points []aggregation.SeriesPoint) DailySeriesResponse {
	out := make([]SeriesPointResponse, len(points))
	for i, p := range points {
		out[i] = SeriesPointResponse{
			Date:     p.Date,
			Label:    p.Label,
			Income:   p.Income.StringFixed(2),
			Expenses: p.Expenses.StringFixed(2),
			Net:      p.Net.StringFixed(2),
		}
	}
	return DailySeriesResponse{Range: chartRange, Points: out}
}
