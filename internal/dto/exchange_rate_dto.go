package dto

import (
	"github.com/SscSPs/tradeops_hub/internal/core/domain"
	"github.com/SscSPs/tradeops_hub/internal/utils"
	"github.com/shopspring/decimal"
)

// UpdateExchangeRatesRequest carries the rates to change. Currencies left out keep their current rate.
type UpdateExchangeRatesRequest struct {
	Rates map[string]decimal.Decimal `json:"rates" binding:"required,min=1"`
}

// RateTrendParams are the query parameters of the simulated trend endpoint.
type RateTrendParams struct {
	Days int   `form:"days,default=30" binding:"min=1,max=365"`
	Seed int64 `form:"seed,default=42"`
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	CurrencyCode string          `json:"currencyCode"`
	Name         string          `json:"name,omitempty"`
	Rate         decimal.Decimal `json:"rate"`
	Display      string          `json:"display"`
	IsDefault    bool            `json:"isDefault"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		CurrencyCode: rate.CurrencyCode,
		Name:         domain.CurrencyName(rate.CurrencyCode),
		Rate:         rate.Rate,
		Display:      utils.FormatGrouped(rate.Rate, 2) + " ₩",
		IsDefault:    rate.IsDefault,
	}
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to a slice of ExchangeRateResponse DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses
}

// RateTrendResponse wraps the simulated series together with the parameters that produced them.
type RateTrendResponse struct {
	Days   int                `json:"days"`
	Seed   int64              `json:"seed"`
	Series []domain.RateTrend `json:"series"`
}
