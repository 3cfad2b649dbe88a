package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/aggregation"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Amount     *decimal.Decimal `json:"amount" binding:"required"`
	CategoryID string           `json:"category_id" binding:"required"`
	Period     string           `json:"period" binding:"required"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID         string                       `json:"id"`
	UserID     string                       `json:"user_id"`
	CategoryID string                       `json:"category_id"`
	Categories *TransactionCategoryResponse `json:"categories"`
	Amount     string                       `json:"amount"`
	Period     string                       `json:"period"`
	StartDate  string                       `json:"start_date"`
	EndDate    string                       `json:"end_date"`
	Spent      string                       `json:"spent"`
	Percentage string                       `json:"percentage"`
	Status     string                       `json:"status"`
	CreatedAt  time.Time                    `json:"created_at"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a budget with its evaluated progress to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.BudgetWithCategory, progress aggregation.BudgetProgress) BudgetResponse {
	response := BudgetResponse{
		ID:         b.Budget.ID.String(),
		UserID:     b.Budget.UserID.String(),
		CategoryID: b.Budget.CategoryID.String(),
		Amount:     b.Budget.Amount.StringFixed(2),
		Period:     string(b.Budget.Period),
		StartDate:  b.Budget.StartDate.Format(DateLayout),
		EndDate:    b.Budget.EndDate.Format(DateLayout),
		Spent:      progress.Spent.StringFixed(2),
		Percentage: progress.Percentage.StringFixed(1),
		Status:     string(progress.Status),
		CreatedAt:  b.Budget.CreatedAt,
	}
	if b.Category != nil {
		response.Categories = &TransactionCategoryResponse{
			Name:  b.Category.Name,
			Color: b.Category.Color,
		}
	}
	return response
}
