package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// TransactionRequest represents the request body for transaction creation and
// full-field update. Amount accepts a JSON number or a numeric string.
type TransactionRequest struct {
	Date        string           `json:"date" binding:"required"`
	Description string           `json:"description"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	Type        string           `json:"type" binding:"required,oneof=expense income"`
	CategoryID  *string          `json:"category_id,omitempty"`
}

// TransactionCategoryResponse is the category projection joined onto a transaction.
type TransactionCategoryResponse struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string                       `json:"id"`
	UserID      string                       `json:"user_id"`
	Date        string                       `json:"date"`
	Description string                       `json:"description"`
	Amount      string                       `json:"amount"`
	Type        string                       `json:"type"`
	CategoryID  *string                      `json:"category_id"`
	Categories  *TransactionCategoryResponse `json:"categories"`
	CreatedAt   time.Time                    `json:"created_at"`
	UpdatedAt   time.Time                    `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Count        int                   `json:"count"`
}

// ToTransactionResponse converts a transaction with its category projection to a TransactionResponse DTO.
func ToTransactionResponse(txn *entity.TransactionWithCategory) TransactionResponse {
	t := txn.Transaction
	response := TransactionResponse{
		ID:          t.ID.String(),
		UserID:      t.UserID.String(),
		Date:        t.Date.Format(DateLayout),
		Description: t.Description,
		Amount:      t.Amount.StringFixed(2),
		Type:        string(t.Type),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}

	if t.CategoryID != nil {
		categoryIDStr := t.CategoryID.String()
		response.CategoryID = &categoryIDStr
	}

	if txn.Category != nil {
		response.Categories = &TransactionCategoryResponse{
			Name:  txn.Category.Name,
			Color: txn.Category.Color,
		}
	}

	return response
}

// ToTransactionListResponse converts a list of transactions to a TransactionListResponse.
func ToTransactionListResponse(txns []*entity.TransactionWithCategory) TransactionListResponse {
	transactions := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		transactions[i] = ToTransactionResponse(txn)
	}

	return TransactionListResponse{
		Transactions: transactions,
		Count:        len(transactions),
	}
}
