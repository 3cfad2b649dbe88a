// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/application/aggregation"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// ChartRange selects how many days the income/expense chart covers.
type ChartRange string

const (
	ChartRange7Days  ChartRange = "7days"
	ChartRange30Days ChartRange = "30days"
	ChartRange90Days ChartRange = "90days"
)

// Days returns the number of days covered by the range, or false if unknown.
func (r ChartRange) Days() (int, bool) {
	switch r {
	case ChartRange7Days:
		return 7, true
	case ChartRange30Days:
		return 30, true
	case ChartRange90Days:
		return 90, true
	}
	return 0, false
}

// GetDailySeriesInput represents the input for the daily chart.
type GetDailySeriesInput struct {
	UserID uuid.UUID
	Range  ChartRange
}

// GetDailySeriesOutput represents the output of the daily chart.
type GetDailySeriesOutput struct {
	Range  ChartRange
	Points []aggregation.SeriesPoint
}

// GetDailySeriesUseCase builds the per-day income/expense series.
type GetDailySeriesUseCase struct {
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewGetDailySeriesUseCase creates a new GetDailySeriesUseCase instance.
func NewGetDailySeriesUseCase(transactionRepo adapter.TransactionRepository, clock adapter.Clock) *GetDailySeriesUseCase {
	return &GetDailySeriesUseCase{
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute loads every transaction inside the range and buckets it by day.
func (uc *GetDailySeriesUseCase) Execute(ctx context.Context, input GetDailySeriesInput) (*GetDailySeriesOutput, error) {
	if input.Range == "" {
		input.Range = ChartRange30Days
	}
	days, ok := input.Range.Days()
	if !ok {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidChartRange,
			"range must be one of: 7days, 30days, 90days",
			domainerror.ErrInvalidChartRange,
		)
	}

	now := uc.clock.Now()
	start := entity.CivilDate(now).AddDate(0, 0, -(days - 1))

	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID:    input.UserID,
		StartDate: &start,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions for series: %w", err)
	}

	return &GetDailySeriesOutput{
		Range:  input.Range,
		Points: aggregation.DailySeries(transactions, now, days),
	}, nil
}
