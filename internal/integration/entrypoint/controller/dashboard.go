package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-tracker/backend/internal/application/usecase/dashboard"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	summaryUseCase   *dashboard.GetSummaryUseCase
	breakdownUseCase *dashboard.GetCategoryBreakdownUseCase
	seriesUseCase    *dashboard.GetDailySeriesUseCase
	countsUseCase    *dashboard.GetCountsUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	summaryUseCase *dashboard.GetSummaryUseCase,
	breakdownUseCase *dashboard.GetCategoryBreakdownUseCase,
	seriesUseCase *dashboard.GetDailySeriesUseCase,
	countsUseCase *dashboard.GetCountsUseCase,
) *DashboardController {
	return &DashboardController{
		summaryUseCase:   summaryUseCase,
		breakdownUseCase: breakdownUseCase,
		seriesUseCase:    seriesUseCase,
		countsUseCase:    countsUseCase,
	}
}

// GetSummary handles GET /dashboard/summary requests.
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), dashboard.GetSummaryInput{UserID: userID})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output.Summaries))
}

// GetCategoryBreakdown handles GET /dashboard/category-breakdown requests.
func (c *DashboardController) GetCategoryBreakdown(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), dashboard.GetCategoryBreakdownInput{UserID: userID})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(output.Categories))
}

// GetDailySeries handles GET /dashboard/daily-series requests.
func (c *DashboardController) GetDailySeries(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.seriesUseCase.Execute(ctx.Request.Context(), dashboard.GetDailySeriesInput{
		UserID: userID,
		Range:  dashboard.ChartRange(ctx.Query("range")),
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDailySeriesResponse(string(output.Range), output.Points))
}

// GetCounts handles GET /dashboard/counts requests.
func (c *DashboardController) GetCounts(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.countsUseCase.Execute(ctx.Request.Context(), dashboard.GetCountsInput{UserID: userID})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CountsResponse{
		Categories: output.Categories,
		Budgets:    output.Budgets,
	})
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dashErr *domainerror.DashboardError
	if errors.As(err, &dashErr) && dashErr.Code == domainerror.ErrCodeInvalidChartRange {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: dashErr.Message,
			Code:  string(dashErr.Code),
		})
		return
	}

	internalError(ctx, "Failed to load dashboard data", err)
}
