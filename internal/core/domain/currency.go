package domain

import "github.com/shopspring/decimal"

// LocalCurrencyCode is the currency all landed costs are expressed in.
const LocalCurrencyCode = "KRW"

// Currency represents a foreign currency the dashboard can invoice in.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // e.g., "USD"
	Name         string `json:"name"`         // e.g., "달러"
}

// SupportedCurrencies is the fixed set of invoice currencies, in display order.
var SupportedCurrencies = []Currency{
	{CurrencyCode: "USD", Name: "달러"},
	{CurrencyCode: "EUR", Name: "유로"},
	{CurrencyCode: "JPY", Name: "엔"},
	{CurrencyCode: "CNY", Name: "위안"},
}

// IsSupportedCurrency reports whether code is one of SupportedCurrencies.
func IsSupportedCurrency(code string) bool {
	for _, c := range SupportedCurrencies {
		if c.CurrencyCode == code {
			return true
		}
	}
	return false
}

// CurrencyName returns the display name of a supported currency, or "" for any other code.
func CurrencyName(code string) string {
	for _, c := range SupportedCurrencies {
		if c.CurrencyCode == code {
			return c.Name
		}
	}
	return ""
}

// ExchangeRate is the local-currency price of one unit of CurrencyCode.
// IsDefault is set when the table had no entry and the fallback rate was used.
type ExchangeRate struct {
	CurrencyCode string          `json:"currencyCode"`
	Rate         decimal.Decimal `json:"rate"`
	IsDefault    bool            `json:"isDefault"`
}

// DefaultExchangeRates returns the rates the table starts with.
func DefaultExchangeRates() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"USD": decimal.RequireFromString("1352.4"),
		"EUR": decimal.RequireFromString("1465.2"),
		"JPY": decimal.RequireFromString("9.12"),
		"CNY": decimal.RequireFromString("188.5"),
	}
}
