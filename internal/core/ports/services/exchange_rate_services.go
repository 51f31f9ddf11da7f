package services

import (
	"context"

	"github.com/SscSPs/tradeops_hub/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetExchangeRate returns the rate for a currency, falling back to the default rate
	// (flagged IsDefault) when the table has no entry.
	GetExchangeRate(ctx context.Context, currencyCode string) (*domain.ExchangeRate, error)

	// ListExchangeRates returns the table in supported-currency order.
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// UpdateExchangeRates validates rates, merges them into the table and returns the full table.
	UpdateExchangeRates(ctx context.Context, rates map[string]decimal.Decimal) ([]domain.ExchangeRate, error)
}

// ExchangeRateTrendSvc produces simulated rate history for charts
type ExchangeRateTrendSvc interface {
	// SimulateTrend returns a seeded random-walk series of days points per currency.
	SimulateTrend(ctx context.Context, days int, seed int64) ([]domain.RateTrend, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
	ExchangeRateTrendSvc
}
