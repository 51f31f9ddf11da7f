package memory

import (
	"context"

	"github.com/SscSPs/tradeops_hub/internal/core/domain"
	portsrepo "github.com/SscSPs/tradeops_hub/internal/core/ports/repositories"
)

// TariffRepository implements portsrepo.TariffRepositoryFacade on a Store.
// Rows keep insertion order and HS codes may repeat.
type TariffRepository struct {
	store *Store
}

// NewTariffRepository creates a new TariffRepository.
func NewTariffRepository(store *Store) *TariffRepository {
	return &TariffRepository{store: store}
}

var _ portsrepo.TariffRepositoryFacade = (*TariffRepository)(nil)

func (r *TariffRepository) ListTariffEntries(ctx context.Context) ([]domain.TariffEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	entries := make([]domain.TariffEntry, len(r.store.tariffs))
	copy(entries, r.store.tariffs)
	return entries, nil
}

func (r *TariffRepository) FindTariffEntriesByHSCode(ctx context.Context, hsCode string) ([]domain.TariffEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var matches []domain.TariffEntry
	for _, e := range r.store.tariffs {
		if e.HSCode == hsCode {
			matches = append(matches, e)
		}
	}
	return matches, nil
}

// ReplaceTariffEntries stores entries in the given order, assigning IDs to rows without one.
func (r *TariffRepository) ReplaceTariffEntries(ctx context.Context, entries []domain.TariffEntry) error {
	next := withEntryIDs(entries)

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.tariffs = next
	return nil
}
