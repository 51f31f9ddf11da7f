package services

import (
	"context"

	"github.com/SscSPs/tradeops_hub/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TariffReaderSvc defines read operations for the HS code table
type TariffReaderSvc interface {
	// ListTariffs returns every row in table order.
	ListTariffs(ctx context.Context) ([]domain.TariffEntry, error)

	// LookupTariffs returns rows whose item name contains query or whose HS code starts with it.
	LookupTariffs(ctx context.Context, query string) ([]domain.TariffEntry, error)

	// DutyRateForHSCode returns the base duty rate of the first row with exactly hsCode.
	DutyRateForHSCode(ctx context.Context, hsCode string) (decimal.Decimal, error)
}

// TariffWriterSvc defines write operations for the HS code table
type TariffWriterSvc interface {
	// ReplaceTariffs validates and swaps the whole table.
	ReplaceTariffs(ctx context.Context, entries []domain.TariffEntry) ([]domain.TariffEntry, error)
}

// TariffSvcFacade combines all tariff-related service interfaces
type TariffSvcFacade interface {
	TariffReaderSvc
	TariffWriterSvc
}
