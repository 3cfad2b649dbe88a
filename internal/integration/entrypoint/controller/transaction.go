package controller

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/usecase/transaction"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/domain/valueobject"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase      *transaction.ListTransactionsUseCase
	exportUseCase    *transaction.ExportTransactionsUseCase
	createUseCase    *transaction.CreateTransactionUseCase
	updateUseCase    *transaction.UpdateTransactionUseCase
	duplicateUseCase *transaction.DuplicateTransactionUseCase
	deleteUseCase    *transaction.DeleteTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	exportUseCase *transaction.ExportTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	duplicateUseCase *transaction.DuplicateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:      listUseCase,
		exportUseCase:    exportUseCase,
		createUseCase:    createUseCase,
		updateUseCase:    updateUseCase,
		duplicateUseCase: duplicateUseCase,
		deleteUseCase:    deleteUseCase,
	}
}

// parseFilters reads the list/export query parameters. Unknown values fall
// back to their defaults.
func parseFilters(ctx *gin.Context) valueobject.TransactionFilters {
	return valueobject.ParseTransactionFilters(
		ctx.Query("search"),
		ctx.Query("type"),
		ctx.Query("date"),
		ctx.Query("sort_by"),
		ctx.Query("sort_order"),
	)
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), transaction.ListTransactionsInput{
		UserID:  userID,
		Filters: parseFilters(ctx),
	})
	if err != nil {
		internalError(ctx, "Failed to retrieve transactions", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// Export handles GET /transactions/export requests.
// It responds with the filtered list as a CSV attachment.
func (c *TransactionController) Export(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), transaction.ExportTransactionsInput{
		UserID:  userID,
		Filters: parseFilters(ctx),
	})
	if err != nil {
		internalError(ctx, "Failed to export transactions", err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, output.Filename))
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(output.Content))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	fields, ok := c.bindTransactionRequest(ctx)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		UserID:      userID,
		Date:        fields.date,
		Description: fields.req.Description,
		Amount:      *fields.req.Amount,
		Type:        entity.TransactionType(fields.req.Type),
		CategoryID:  fields.categoryID,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Update handles PUT /transactions/:id requests. Every field is replaced;
// omitting category_id clears the category.
func (c *TransactionController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	transactionID, ok := parseIDParam(ctx, "transaction")
	if !ok {
		return
	}

	fields, ok := c.bindTransactionRequest(ctx)
	if !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), transaction.UpdateTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
		Date:          fields.date,
		Description:   fields.req.Description,
		Amount:        *fields.req.Amount,
		Type:          entity.TransactionType(fields.req.Type),
		CategoryID:    fields.categoryID,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Duplicate handles POST /transactions/:id/duplicate requests.
func (c *TransactionController) Duplicate(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	transactionID, ok := parseIDParam(ctx, "transaction")
	if !ok {
		return
	}

	output, err := c.duplicateUseCase.Execute(ctx.Request.Context(), transaction.DuplicateTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	transactionID, ok := parseIDParam(ctx, "transaction")
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

type transactionFields struct {
	req        dto.TransactionRequest
	date       time.Time
	categoryID *uuid.UUID
}

// bindTransactionRequest parses and validates the shared create/update body.
func (c *TransactionController) bindTransactionRequest(ctx *gin.Context) (*transactionFields, bool) {
	var req dto.TransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return nil, false
	}

	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidTransactionDate),
		})
		return nil, false
	}

	fields := &transactionFields{req: req, date: date}
	if req.CategoryID != nil && *req.CategoryID != "" {
		id, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID format",
				Code:  string(domainerror.ErrCodeTxnCategoryNotFound),
			})
			return nil, false
		}
		fields.categoryID = &id
	}

	return fields, true
}

// handleTransactionError handles transaction errors and returns appropriate HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		statusCode := c.getStatusCodeForTransactionError(txnErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	internalError(ctx, "An internal error occurred", err)
}

// getStatusCodeForTransactionError maps transaction error codes to HTTP status codes.
func (c *TransactionController) getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidTransactionDate,
		domainerror.ErrCodeInvalidTransactionAmount,
		domainerror.ErrCodeDescriptionTooLong,
		domainerror.ErrCodeMissingTransactionFields,
		domainerror.ErrCodeTxnCategoryNotFound,
		domainerror.ErrCodeTxnCategoryTypeMismatch:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
