package repositories

import (
	"context"

	"github.com/shopspring/decimal"
)

// ExchangeRateReader defines read operations for the exchange rate table
type ExchangeRateReader interface {
	// FindExchangeRate returns the rate for a currency code, or apperrors.ErrNotFound.
	FindExchangeRate(ctx context.Context, currencyCode string) (decimal.Decimal, error)

	// ListExchangeRates returns a copy of the whole table.
	ListExchangeRates(ctx context.Context) (map[string]decimal.Decimal, error)
}

// ExchangeRateWriter defines write operations for the exchange rate table
type ExchangeRateWriter interface {
	// UpsertExchangeRates merges rates into the table, leaving other codes untouched.
	UpsertExchangeRates(ctx context.Context, rates map[string]decimal.Decimal) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
