// Package valueobject defines immutable value types shared across the domain.
package valueobject

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency is a display currency. Amounts are never converted between currencies;
// the currency only controls how a number is rendered.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Locale string `json:"locale"`

	// spaced puts a space between symbol and number (e.g. "CHF 10.00").
	spaced bool
	// formatSymbol replaces Symbol in formatted amounts when the locale
	// renders a different glyph (ja-JP uses the full-width yen sign).
	formatSymbol string
}

// Currencies is the catalog of selectable display currencies.
var Currencies = []Currency{
	{Code: "USD", Symbol: "$", Name: "US Dollar", Locale: "en-US"},
	{Code: "EUR", Symbol: "€", Name: "Euro", Locale: "en-US"},
	{Code: "GBP", Symbol: "£", Name: "British Pound", Locale: "en-GB"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen", Locale: "ja-JP", formatSymbol: "￥"},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar", Locale: "en-CA"},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar", Locale: "en-AU"},
	{Code: "CHF", Symbol: "CHF", Name: "Swiss Franc", Locale: "de-CH", spaced: true},
	{Code: "CNY", Symbol: "¥", Name: "Chinese Yuan", Locale: "zh-CN"},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee", Locale: "en-IN"},
	{Code: "BRL", Symbol: "R$", Name: "Brazilian Real", Locale: "pt-BR", spaced: true},
	{Code: "ZAR", Symbol: "R", Name: "South African Rand", Locale: "en-ZA"},
	{Code: "MXN", Symbol: "$", Name: "Mexican Peso", Locale: "es-MX"},
	{Code: "SGD", Symbol: "S$", Name: "Singapore Dollar", Locale: "en-SG"},
	{Code: "HKD", Symbol: "HK$", Name: "Hong Kong Dollar", Locale: "en-HK"},
	{Code: "NZD", Symbol: "NZ$", Name: "New Zealand Dollar", Locale: "en-NZ"},
	{Code: "BTN", Symbol: "Nu.", Name: "Bhutanese Ngultrum", Locale: "dz-BT", spaced: true},
}

// DefaultCurrency is used when no preference is stored.
var DefaultCurrency = Currencies[0]

// LookupCurrency finds a catalog entry by ISO code (case-insensitive).
func LookupCurrency(code string) (Currency, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, c := range Currencies {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}

// Decimals returns the number of fraction digits shown for the currency.
func (c Currency) Decimals() int32 {
	if c.Code == "JPY" {
		return 0
	}
	return 2
}

// Format renders amount with the currency symbol and the locale's digit grouping,
// e.g. USD 1234.5 -> "$1,234.50".
func (c Currency) Format(amount decimal.Decimal) string {
	decimals := c.Decimals()
	rounded := amount.Round(decimals)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	tag, err := language.Parse(c.Locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	value, _ := rounded.Float64()
	number := message.NewPrinter(tag).Sprintf(fmt.Sprintf("%%.%df", decimals), value)

	symbol := c.Symbol
	if c.formatSymbol != "" {
		symbol = c.formatSymbol
	}
	if c.spaced {
		return sign + symbol + " " + number
	}
	return sign + symbol + number
}
