package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateTrendPoint is one simulated daily observation of an exchange rate.
type RateTrendPoint struct {
	Date time.Time       `json:"date"`
	Rate decimal.Decimal `json:"rate"`
}

// RateTrend is a simulated series for one currency.
type RateTrend struct {
	CurrencyCode string           `json:"currencyCode"`
	Points       []RateTrendPoint `json:"points"`
}
