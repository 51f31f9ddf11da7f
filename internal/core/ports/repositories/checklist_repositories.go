package repositories

import (
	"context"

	"github.com/SscSPs/tradeops_hub/internal/core/domain"
)

// ChecklistReader defines read operations for the shipping checklist
type ChecklistReader interface {
	GetChecklist(ctx context.Context) (domain.Checklist, error)
}

// ChecklistWriter defines write operations for the shipping checklist
type ChecklistWriter interface {
	// SetDocumentChecked updates one document, or returns apperrors.ErrNotFound.
	SetDocumentChecked(ctx context.Context, documentID string, checked bool) (*domain.ShippingDocument, error)

	// ResetChecklist clears every checked flag.
	ResetChecklist(ctx context.Context) error
}

// ChecklistRepositoryFacade combines all checklist-related repository interfaces
type ChecklistRepositoryFacade interface {
	ChecklistReader
	ChecklistWriter
}
