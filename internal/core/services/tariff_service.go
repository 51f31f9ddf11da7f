package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/tradeops_hub/internal/apperrors"
	"github.com/SscSPs/tradeops_hub/internal/core/domain"
	portsrepo "github.com/SscSPs/tradeops_hub/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tradeops_hub/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// tariffService implements portssvc.TariffSvcFacade.
type tariffService struct {
	BaseService
	tariffRepo portsrepo.TariffRepositoryFacade
}

// NewTariffService creates a new tariff service.
func NewTariffService(tariffRepo portsrepo.TariffRepositoryFacade) portssvc.TariffSvcFacade {
	return &tariffService{tariffRepo: tariffRepo}
}

var _ portssvc.TariffSvcFacade = (*tariffService)(nil)

func (s *tariffService) ListTariffs(ctx context.Context) ([]domain.TariffEntry, error) {
	entries, err := s.tariffRepo.ListTariffEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tariff entries")
		return nil, fmt.Errorf("failed to list tariffs in service: %w", err)
	}
	if entries == nil {
		return []domain.TariffEntry{}, nil
	}
	return entries, nil
}

// LookupTariffs matches item names case-insensitively by substring and HS
// codes by prefix. An empty query returns the whole table.
func (s *tariffService) LookupTariffs(ctx context.Context, query string) ([]domain.TariffEntry, error) {
	entries, err := s.ListTariffs(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.TrimSpace(query)
	if q == "" {
		return entries, nil
	}
	lower := strings.ToLower(q)

	matches := []domain.TariffEntry{}
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.ItemName), lower) || strings.HasPrefix(e.HSCode, q) {
			matches = append(matches, e)
		}
	}
	return matches, nil
}

// DutyRateForHSCode uses the first row in table order when the code repeats.
func (s *tariffService) DutyRateForHSCode(ctx context.Context, hsCode string) (decimal.Decimal, error) {
	entries, err := s.tariffRepo.FindTariffEntriesByHSCode(ctx, hsCode)
	if err != nil {
		s.LogError(ctx, err, "Failed to find tariff entries", slog.String("hs_code", hsCode))
		return decimal.Zero, fmt.Errorf("failed to find tariff for HS code in service: %w", err)
	}
	if len(entries) == 0 {
		return decimal.Zero, fmt.Errorf("tariff entry for HS code '%s': %w", hsCode, apperrors.ErrNotFound)
	}
	if len(entries) > 1 {
		s.LogDebug(ctx, "HS code has several tariff rows, using the first",
			slog.String("hs_code", hsCode),
			slog.Int("rows", len(entries)))
	}

	rate, err := entries[0].DutyRatePct()
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: tariff row for '%s' has unusable base rate: %w", apperrors.ErrValidation, hsCode, err)
	}
	return rate, nil
}

// ReplaceTariffs validates every row before touching the table, so a bad row
// leaves the previous table in place. Duplicate HS codes are accepted.
func (s *tariffService) ReplaceTariffs(ctx context.Context, entries []domain.TariffEntry) ([]domain.TariffEntry, error) {
	cleaned := make([]domain.TariffEntry, len(entries))
	for i, e := range entries {
		e.EntryID = strings.TrimSpace(e.EntryID)
		e.ItemName = strings.TrimSpace(e.ItemName)
		e.HSCode = strings.TrimSpace(e.HSCode)
		e.BaseRate = strings.TrimSpace(e.BaseRate)
		e.Note = strings.TrimSpace(e.Note)

		if e.ItemName == "" {
			return nil, fmt.Errorf("%w: row %d: item name is required", apperrors.ErrValidation, i+1)
		}
		if !domain.IsValidHSCode(e.HSCode) {
			return nil, fmt.Errorf("%w: row %d: invalid HS code '%s'", apperrors.ErrValidation, i+1, e.HSCode)
		}
		rate, err := e.DutyRatePct()
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %s", apperrors.ErrValidation, i+1, err.Error())
		}
		if rate.IsNegative() {
			return nil, fmt.Errorf("%w: row %d: base rate must not be negative", apperrors.ErrValidation, i+1)
		}
		cleaned[i] = e
	}

	if err := s.tariffRepo.ReplaceTariffEntries(ctx, cleaned); err != nil {
		s.LogError(ctx, err, "Failed to replace tariff entries")
		return nil, fmt.Errorf("failed to replace tariffs in service: %w", err)
	}
	s.LogInfo(ctx, "Tariff table replaced", slog.Int("rows", len(cleaned)))

	return s.ListTariffs(ctx)
}
