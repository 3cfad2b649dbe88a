package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-tracker/backend/internal/application/usecase/preference"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/domain/valueobject"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/dto"
)

// PreferenceController handles display-currency endpoints.
type PreferenceController struct {
	getCurrencyUseCase *preference.GetCurrencyUseCase
	setCurrencyUseCase *preference.SetCurrencyUseCase
}

// NewPreferenceController creates a new preference controller instance.
func NewPreferenceController(
	getCurrencyUseCase *preference.GetCurrencyUseCase,
	setCurrencyUseCase *preference.SetCurrencyUseCase,
) *PreferenceController {
	return &PreferenceController{
		getCurrencyUseCase: getCurrencyUseCase,
		setCurrencyUseCase: setCurrencyUseCase,
	}
}

// GetCurrency handles GET /preferences/currency requests.
func (c *PreferenceController) GetCurrency(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.getCurrencyUseCase.Execute(ctx.Request.Context(), preference.GetCurrencyInput{UserID: userID})
	if err != nil {
		c.handlePreferenceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CurrencyPreferenceResponse{
		Currency:  dto.ToCurrencyResponse(output.Currency),
		IsDefault: !output.Stored,
	})
}

// SetCurrency handles PUT /preferences/currency requests.
func (c *PreferenceController) SetCurrency(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.SetCurrencyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeUnsupportedCurrency),
		})
		return
	}

	output, err := c.setCurrencyUseCase.Execute(ctx.Request.Context(), preference.SetCurrencyInput{
		UserID: userID,
		Code:   req.Code,
	})
	if err != nil {
		c.handlePreferenceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CurrencyPreferenceResponse{
		Currency: dto.ToCurrencyResponse(output.Currency),
	})
}

// ListCurrencies handles GET /currencies requests.
func (c *PreferenceController) ListCurrencies(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToCurrencyListResponse(valueobject.Currencies))
}

// handlePreferenceError handles preference errors and returns appropriate HTTP responses.
func (c *PreferenceController) handlePreferenceError(ctx *gin.Context, err error) {
	var prefErr *domainerror.PreferenceError
	if errors.As(err, &prefErr) {
		statusCode := http.StatusInternalServerError
		switch prefErr.Code {
		case domainerror.ErrCodeUnsupportedCurrency:
			statusCode = http.StatusBadRequest
		case domainerror.ErrCodePreferenceStoreFailure:
			statusCode = http.StatusServiceUnavailable
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: prefErr.Message,
			Code:  string(prefErr.Code),
		})
		return
	}

	internalError(ctx, "An internal error occurred", err)
}
