package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/tradeops_hub/internal/apperrors"
	"github.com/SscSPs/tradeops_hub/internal/core/domain"
	portsrepo "github.com/SscSPs/tradeops_hub/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tradeops_hub/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// exchangeRateService implements portssvc.ExchangeRateSvcFacade.
type exchangeRateService struct {
	BaseService
	rateRepo    portsrepo.ExchangeRateRepositoryFacade
	defaultRate decimal.Decimal
	now         func() time.Time
}

// ExchangeRateOption configures the exchange rate service
type ExchangeRateOption func(*exchangeRateService)

// WithClock overrides the time source used to date simulated trends.
func WithClock(now func() time.Time) ExchangeRateOption {
	return func(s *exchangeRateService) {
		s.now = now
	}
}

// NewExchangeRateService creates a new exchange rate service. defaultRate is
// returned for currencies missing from the table.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, defaultRate decimal.Decimal, options ...ExchangeRateOption) portssvc.ExchangeRateSvcFacade {
	svc := &exchangeRateService{
		rateRepo:    rateRepo,
		defaultRate: defaultRate,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

// GetExchangeRate never reports a missing rate as an error; the default rate is used instead.
func (s *exchangeRateService) GetExchangeRate(ctx context.Context, currencyCode string) (*domain.ExchangeRate, error) {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))

	rate, err := s.rateRepo.FindExchangeRate(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Exchange rate not configured, using default rate",
				slog.String("currency_code", code),
				slog.String("default_rate", s.defaultRate.String()))
			return &domain.ExchangeRate{CurrencyCode: code, Rate: s.defaultRate, IsDefault: true}, nil
		}
		s.LogError(ctx, err, "Failed to find exchange rate", slog.String("currency_code", code))
		return nil, fmt.Errorf("failed to get exchange rate in service: %w", err)
	}

	return &domain.ExchangeRate{CurrencyCode: code, Rate: rate}, nil
}

func (s *exchangeRateService) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.ListExchangeRates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list exchange rates")
		return nil, fmt.Errorf("failed to list exchange rates in service: %w", err)
	}
	return orderedRates(rates), nil
}

// UpdateExchangeRates merges the given rates into the table and returns the full
// table. Only supported currency codes with positive rates are accepted.
func (s *exchangeRateService) UpdateExchangeRates(ctx context.Context, rates map[string]decimal.Decimal) ([]domain.ExchangeRate, error) {
	if len(rates) == 0 {
		return nil, fmt.Errorf("%w: at least one exchange rate is required", apperrors.ErrValidation)
	}

	normalized := make(map[string]decimal.Decimal, len(rates))
	for code, rate := range rates {
		upper := strings.ToUpper(strings.TrimSpace(code))
		if !domain.IsSupportedCurrency(upper) {
			return nil, fmt.Errorf("%w: unsupported currency code '%s'", apperrors.ErrValidation, code)
		}
		if rate.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: exchange rate for '%s' must be positive", apperrors.ErrValidation, upper)
		}
		if _, dup := normalized[upper]; dup {
			return nil, fmt.Errorf("%w: currency code '%s' given more than once", apperrors.ErrValidation, upper)
		}
		normalized[upper] = rate
	}

	if err := s.rateRepo.UpsertExchangeRates(ctx, normalized); err != nil {
		s.LogError(ctx, err, "Failed to update exchange rates")
		return nil, fmt.Errorf("failed to update exchange rates in service: %w", err)
	}
	s.LogInfo(ctx, "Exchange rates updated", slog.Int("count", len(normalized)))

	table, err := s.rateRepo.ListExchangeRates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to reload exchange rates after update")
		return nil, fmt.Errorf("failed to list exchange rates in service: %w", err)
	}
	return orderedRates(table), nil
}

// orderedRates lists supported currencies first in display order, then any
// other codes alphabetically.
func orderedRates(rates map[string]decimal.Decimal) []domain.ExchangeRate {
	out := make([]domain.ExchangeRate, 0, len(rates))
	seen := make(map[string]bool, len(rates))
	for _, c := range domain.SupportedCurrencies {
		if rate, ok := rates[c.CurrencyCode]; ok {
			out = append(out, domain.ExchangeRate{CurrencyCode: c.CurrencyCode, Rate: rate})
			seen[c.CurrencyCode] = true
		}
	}

	var rest []string
	for code := range rates {
		if !seen[code] {
			rest = append(rest, code)
		}
	}
	sort.Strings(rest)
	for _, code := range rest {
		out = append(out, domain.ExchangeRate{CurrencyCode: code, Rate: rates[code]})
	}
	return out
}
