package services_test

import (
	"context"

	"github.com/SscSPs/tradeops_hub/internal/core/domain"
	portsrepo "github.com/SscSPs/tradeops_hub/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tradeops_hub/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) FindExchangeRate(ctx context.Context, currencyCode string) (decimal.Decimal, error) {
	args := m.Called(ctx, currencyCode)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockExchangeRateRepository) ListExchangeRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

func (m *MockExchangeRateRepository) UpsertExchangeRates(ctx context.Context, rates map[string]decimal.Decimal) error {
	args := m.Called(ctx, rates)
	return args.Error(0)
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*MockExchangeRateRepository)(nil)

// --- Mock TariffRepository ---
type MockTariffRepository struct {
	mock.Mock
}

func (m *MockTariffRepository) ListTariffEntries(ctx context.Context) ([]domain.TariffEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TariffEntry), args.Error(1)
}

func (m *MockTariffRepository) FindTariffEntriesByHSCode(ctx context.Context, hsCode string) ([]domain.TariffEntry, error) {
	args := m.Called(ctx, hsCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TariffEntry), args.Error(1)
}

func (m *MockTariffRepository) ReplaceTariffEntries(ctx context.Context, entries []domain.TariffEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

var _ portsrepo.TariffRepositoryFacade = (*MockTariffRepository)(nil)

// --- Mock ExchangeRateReaderSvc ---
type MockRateReader struct {
	mock.Mock
}

func (m *MockRateReader) GetExchangeRate(ctx context.Context, currencyCode string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockRateReader) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

var _ portssvc.ExchangeRateReaderSvc = (*MockRateReader)(nil)

// --- Mock TariffReaderSvc ---
type MockTariffReader struct {
	mock.Mock
}

func (m *MockTariffReader) ListTariffs(ctx context.Context) ([]domain.TariffEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TariffEntry), args.Error(1)
}

func (m *MockTariffReader) LookupTariffs(ctx context.Context, query string) ([]domain.TariffEntry, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TariffEntry), args.Error(1)
}

func (m *MockTariffReader) DutyRateForHSCode(ctx context.Context, hsCode string) (decimal.Decimal, error) {
	args := m.Called(ctx, hsCode)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ portssvc.TariffReaderSvc = (*MockTariffReader)(nil)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}
