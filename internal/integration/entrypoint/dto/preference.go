package dto

import (
	"github.com/budget-tracker/backend/internal/domain/valueobject"
)

// SetCurrencyRequest represents the request body for changing the display currency.
type SetCurrencyRequest struct {
	Code string `json:"code" binding:"required"`
}

// CurrencyResponse represents a currency from the catalog.
type CurrencyResponse struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Locale string `json:"locale"`
}

// CurrencyPreferenceResponse represents the user's display currency.
type CurrencyPreferenceResponse struct {
	Currency  CurrencyResponse `json:"currency"`
	IsDefault bool             `json:"is_default"`
}

// CurrencyListResponse represents the currency catalog.
type CurrencyListResponse struct {
	Currencies []CurrencyResponse `json:"currencies"`
}

// ToCurrencyResponse converts a Currency value object to a CurrencyResponse DTO.
func ToCurrencyResponse(c valueobject.Currency) CurrencyResponse {
	return CurrencyResponse{
		Code:   c.Code,
		Symbol: c.Symbol,
		Name:   c.Name,
		Locale: c.Locale,
	}
}

// ToCurrencyListResponse converts the catalog to a CurrencyListResponse DTO.
func ToCurrencyListResponse(currencies []valueobject.Currency) CurrencyListResponse {
	out := make([]CurrencyResponse, len(currencies))
	for i, c := range currencies {
		out[i] = ToCurrencyResponse(c)
	}
	return CurrencyListResponse{Currencies: out}
}
