package memory

import portsrepo "github.com/SscSPs/tradeops_hub/internal/core/ports/repositories"

// NewRepositoryProvider builds every repository on top of one shared store.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ExchangeRateRepo: NewExchangeRateRepository(store),
		TariffRepo:       NewTariffRepository(store),
		ChecklistRepo:    NewChecklistRepository(store),
	}
}
