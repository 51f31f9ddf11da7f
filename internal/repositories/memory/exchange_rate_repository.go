package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/tradeops_hub/internal/apperrors"
	portsrepo "github.com/SscSPs/tradeops_hub/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// ExchangeRateRepository implements portsrepo.ExchangeRateRepositoryFacade on a Store.
type ExchangeRateRepository struct {
	store *Store
}

// NewExchangeRateRepository creates a new ExchangeRateRepository.
func NewExchangeRateRepository(store *Store) *ExchangeRateRepository {
	return &ExchangeRateRepository{store: store}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*ExchangeRateRepository)(nil)

// FindExchangeRate returns the rate stored for currencyCode.
func (r *ExchangeRateRepository) FindExchangeRate(ctx context.Context, currencyCode string) (decimal.Decimal, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rate, ok := r.store.exchangeRates[currencyCode]
	if !ok {
		return decimal.Zero, fmt.Errorf("exchange rate for '%s': %w", currencyCode, apperrors.ErrNotFound)
	}
	return rate, nil
}

// ListExchangeRates returns a copy of the table.
func (r *ExchangeRateRepository) ListExchangeRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rates := make(map[string]decimal.Decimal, len(r.store.exchangeRates))
	for code, rate := range r.store.exchangeRates {
		rates[code] = rate
	}
	return rates, nil
}

// UpsertExchangeRates merges rates into the table. Codes not in rates keep their current value.
func (r *ExchangeRateRepository) UpsertExchangeRates(ctx context.Context, rates map[string]decimal.Decimal) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.exchangeRates == nil {
		r.store.exchangeRates = make(map[string]decimal.Decimal, len(rates))
	}
	for code, rate := range rates {
		r.store.exchangeRates[code] = rate
	}
	return nil
}
