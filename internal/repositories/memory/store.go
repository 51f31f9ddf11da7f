package memory

import (
	"sync"

	"github.com/SscSPs/tradeops_hub/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Store is the session state shared by the in-memory repositories. It lives
// for the life of the process; nothing is persisted.
type Store struct {
	mu            sync.RWMutex
	exchangeRates map[string]decimal.Decimal
	tariffs       []domain.TariffEntry
	documents     []domain.ShippingDocument
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		exchangeRates: map[string]decimal.Decimal{},
		tariffs:       []domain.TariffEntry{},
		documents:     []domain.ShippingDocument{},
	}
}

// NewSeededStore creates a store holding the default exchange rates, HS code
// rows and shipping documents.
func NewSeededStore() *Store {
	s := NewStore()
	s.exchangeRates = domain.DefaultExchangeRates()
	s.tariffs = withEntryIDs(domain.DefaultTariffEntries())
	s.documents = domain.DefaultShippingDocuments()
	return s
}

// withEntryIDs assigns a fresh ID to every row that has none.
func withEntryIDs(entries []domain.TariffEntry) []domain.TariffEntry {
	out := make([]domain.TariffEntry, len(entries))
	for i, e := range entries {
		if e.EntryID == "" {
			e.EntryID = uuid.NewString()
		}
		out[i] = e
	}
	return out
}
