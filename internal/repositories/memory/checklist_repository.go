package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/tradeops_hub/internal/apperrors"
	"github.com/SscSPs/tradeops_hub/internal/core/domain"
	portsrepo "github.com/SscSPs/tradeops_hub/internal/core/ports/repositories"
)

// ChecklistRepository implements portsrepo.ChecklistRepositoryFacade on a Store.
type ChecklistRepository struct {
	store *Store
}

// NewChecklistRepository creates a new ChecklistRepository.
func NewChecklistRepository(store *Store) *ChecklistRepository {
	return &ChecklistRepository{store: store}
}

var _ portsrepo.ChecklistRepositoryFacade = (*ChecklistRepository)(nil)

func (r *ChecklistRepository) GetChecklist(ctx context.Context) (domain.Checklist, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	docs := make([]domain.ShippingDocument, len(r.store.documents))
	copy(docs, r.store.documents)
	return domain.Checklist{Documents: docs}, nil
}

func (r *ChecklistRepository) SetDocumentChecked(ctx context.Context, documentID string, checked bool) (*domain.ShippingDocument, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.documents {
		if r.store.documents[i].DocumentID == documentID {
			r.store.documents[i].Checked = checked
			doc := r.store.documents[i]
			return &doc, nil
		}
	}
	return nil, fmt.Errorf("shipping document '%s': %w", documentID, apperrors.ErrNotFound)
}

func (r *ChecklistRepository) ResetChecklist(ctx context.Context) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.documents {
		r.store.documents[i].Checked = false
	}
	return nil
}
