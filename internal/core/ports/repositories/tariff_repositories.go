package repositories

import (
	"context"

	"github.com/SscSPs/tradeops_hub/internal/core/domain"
)

// TariffReader defines read operations for the HS code table
type TariffReader interface {
	// ListTariffEntries returns every row in table order.
	ListTariffEntries(ctx context.Context) ([]domain.TariffEntry, error)

	// FindTariffEntriesByHSCode returns every row whose HS code equals hsCode, in table order.
	FindTariffEntriesByHSCode(ctx context.Context, hsCode string) ([]domain.TariffEntry, error)
}

// TariffWriter defines write operations for the HS code table
type TariffWriter interface {
	// ReplaceTariffEntries swaps the whole table for entries, keeping their order.
	ReplaceTariffEntries(ctx context.Context, entries []domain.TariffEntry) error
}

// TariffRepositoryFacade combines all tariff-related repository interfaces
type TariffRepositoryFacade interface {
	TariffReader
	TariffWriter
}
