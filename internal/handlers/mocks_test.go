package handlers_test

import (
	"context"

	"github.com/SscSPs/tradeops_hub/internal/core/domain"
	portssvc "github.com/SscSPs/tradeops_hub/internal/core/ports/services"
	"github.com/SscSPs/tradeops_hub/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock CostService ---
type MockCostService struct {
	mock.Mock
}

func (m *MockCostService) CalculateCost(ctx context.Context, req dto.CalculateCostRequest) (*domain.CostEstimate, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CostEstimate), args.Error(1)
}

var _ portssvc.CostSvc = (*MockCostService)(nil)

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) GetExchangeRate(ctx context.Context, currencyCode string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) UpdateExchangeRates(ctx context.Context, rates map[string]decimal.Decimal) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, rates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) SimulateTrend(ctx context.Context, days int, seed int64) ([]domain.RateTrend, error) {
	args := m.Called(ctx, days, seed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RateTrend), args.Error(1)
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)

// --- Mock TariffService ---
type MockTariffService struct {
	mock.Mock
}

func (m *MockTariffService) ListTariffs(ctx context.Context) ([]domain.TariffEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TariffEntry), args.Error(1)
}

func (m *MockTariffService) LookupTariffs(ctx context.Context, query string) ([]domain.TariffEntry, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TariffEntry), args.Error(1)
}

func (m *MockTariffService) DutyRateForHSCode(ctx context.Context, hsCode string) (decimal.Decimal, error) {
	args := m.Called(ctx, hsCode)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockTariffService) ReplaceTariffs(ctx context.Context, entries []domain.TariffEntry) ([]domain.TariffEntry, error) {
	args := m.Called(ctx, entries)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TariffEntry), args.Error(1)
}

var _ portssvc.TariffSvcFacade = (*MockTariffService)(nil)

// --- Mock ChecklistService ---
type MockChecklistService struct {
	mock.Mock
}

func (m *MockChecklistService) GetChecklist(ctx context.Context) (domain.Checklist, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Checklist), args.Error(1)
}

func (m *MockChecklistService) SetDocumentChecked(ctx context.Context, documentID string, checked bool) (domain.Checklist, error) {
	args := m.Called(ctx, documentID, checked)
	return args.Get(0).(domain.Checklist), args.Error(1)
}

func (m *MockChecklistService) ResetChecklist(ctx context.Context) (domain.Checklist, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Checklist), args.Error(1)
}

var _ portssvc.ChecklistSvcFacade = (*MockChecklistService)(nil)
