package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/SscSPs/tradeops_hub/internal/apperrors"
	"github.com/SscSPs/tradeops_hub/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MaxTrendDays bounds the length of a simulated series.
const MaxTrendDays = 365

// trendVolatility is the daily standard deviation of the simulated walk per currency.
var trendVolatility = map[string]float64{
	"USD": 0.005,
	"EUR": 0.004,
	"JPY": 0.006,
	"CNY": 0.005,
}

const fallbackVolatility = 0.005

// SimulateTrend draws, for every currency in the table, days points of
// rate * (1 + cumulative sum of N(0, vol)) ending today. The same seed and
// table always give the same series. The data is illustrative only.
func (s *exchangeRateService) SimulateTrend(ctx context.Context, days int, seed int64) ([]domain.RateTrend, error) {
	if days < 1 || days > MaxTrendDays {
		return nil, fmt.Errorf("%w: days must be between 1 and %d", apperrors.ErrValidation, MaxTrendDays)
	}

	rates, err := s.ListExchangeRates(ctx)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	end := s.today()

	trends := make([]domain.RateTrend, 0, len(rates))
	for _, r := range rates {
		vol, ok := trendVolatility[r.CurrencyCode]
		if !ok {
			vol = fallbackVolatility
		}
		base := r.Rate.InexactFloat64()

		points := make([]domain.RateTrendPoint, days)
		cum := 0.0
		for i := 0; i < days; i++ {
			cum += rng.NormFloat64() * vol
			points[i] = domain.RateTrendPoint{
				Date: end.AddDate(0, 0, i-days+1),
				Rate: decimal.NewFromFloat(base * (1 + cum)).Round(4),
			}
		}
		trends = append(trends, domain.RateTrend{CurrencyCode: r.CurrencyCode, Points: points})
	}

	s.LogDebug(ctx, "Simulated exchange rate trend", slog.Int("days", days), slog.Int64("seed", seed), slog.Int("currencies", len(trends)))
	return trends, nil
}

func (s *exchangeRateService) today() time.Time {
	now := time.Now
	if s.now != nil {
		now = s.now
	}
	y, m, d := now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
