package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/tradeops_hub/internal/apperrors"
	"github.com/SscSPs/tradeops_hub/internal/core/domain"
	portssvc "github.com/SscSPs/tradeops_hub/internal/core/ports/services"
	"github.com/SscSPs/tradeops_hub/internal/dto"
	"github.com/shopspring/decimal"
)

// costService implements portssvc.CostSvc. It only resolves rates; the
// arithmetic is domain.CalculateCost.
type costService struct {
	BaseService
	rateReader   portssvc.ExchangeRateReaderSvc
	tariffReader portssvc.TariffReaderSvc
}

// CostServiceOption is a functional option for configuring the cost service
type CostServiceOption func(*costService)

// WithTariffReader lets requests name an HS code instead of a duty rate.
func WithTariffReader(reader portssvc.TariffReaderSvc) CostServiceOption {
	return func(s *costService) {
		s.tariffReader = reader
	}
}

// NewCostService creates a new cost service with the provided options
func NewCostService(rateReader portssvc.ExchangeRateReaderSvc, options ...CostServiceOption) portssvc.CostSvc {
	svc := &costService{rateReader: rateReader}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CostSvc = (*costService)(nil)

func (s *costService) CalculateCost(ctx context.Context, req dto.CalculateCostRequest) (*domain.CostEstimate, error) {
	currencyCode := strings.ToUpper(strings.TrimSpace(req.CurrencyCode))

	rate, source, err := s.resolveExchangeRate(ctx, currencyCode, req.ExchangeRate)
	if err != nil {
		return nil, err
	}

	dutyRate, hsCode, err := s.resolveDutyRate(ctx, req.DutyRatePct, req.HSCode)
	if err != nil {
		return nil, err
	}

	input := domain.InvoiceInput{
		CurrencyCode: currencyCode,
		ExchangeRate: rate,
		InvoiceValue: req.InvoiceValue,
		ShippingIntl: req.ShippingIntl,
		DutyRatePct:  dutyRate,
		Insurance:    req.Insurance,
		HandlingFee:  req.HandlingFee,
	}
	breakdown := domain.CalculateCost(input)

	s.LogDebug(ctx, "Calculated import cost",
		slog.String("currency_code", currencyCode),
		slog.String("rate_source", string(source)),
		slog.String("total_cost", breakdown.TotalCost.String()))

	return &domain.CostEstimate{
		Input:      input,
		RateSource: source,
		HSCode:     hsCode,
		Breakdown:  breakdown,
	}, nil
}

// resolveExchangeRate prefers the caller's override, then the table (which
// itself falls back to the default rate).
func (s *costService) resolveExchangeRate(ctx context.Context, currencyCode string, override *decimal.Decimal) (decimal.Decimal, domain.RateSource, error) {
	if override != nil {
		return *override, domain.RateSourceOverride, nil
	}

	rate, err := s.rateReader.GetExchangeRate(ctx, currencyCode)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve exchange rate", slog.String("currency_code", currencyCode))
		return decimal.Zero, "", fmt.Errorf("failed to resolve exchange rate for '%s': %w", currencyCode, err)
	}
	if rate.IsDefault {
		return rate.Rate, domain.RateSourceDefault, nil
	}
	return rate.Rate, domain.RateSourceTable, nil
}

// resolveDutyRate prefers an explicit rate, then the tariff table row for
// hsCode. With neither, no duty applies.
func (s *costService) resolveDutyRate(ctx context.Context, explicit *decimal.Decimal, hsCode string) (decimal.Decimal, string, error) {
	if explicit != nil {
		return *explicit, "", nil
	}
	hsCode = strings.TrimSpace(hsCode)
	if hsCode == "" {
		return decimal.Zero, "", nil
	}
	if s.tariffReader == nil {
		return decimal.Zero, "", fmt.Errorf("%w: duty rate lookup by HS code is not available", apperrors.ErrValidation)
	}

	rate, err := s.tariffReader.DutyRateForHSCode(ctx, hsCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, "", fmt.Errorf("%w: no tariff entry for HS code '%s': %w", apperrors.ErrValidation, hsCode, err)
		}
		return decimal.Zero, "", fmt.Errorf("failed to resolve duty rate for HS code '%s': %w", hsCode, err)
	}
	return rate, hsCode, nil
}
