package services

import (
	"context"

	"github.com/SscSPs/tradeops_hub/internal/core/domain"
)

// ChecklistSvcFacade defines operations on the shipping-document checklist
type ChecklistSvcFacade interface {
	GetChecklist(ctx context.Context) (domain.Checklist, error)
	SetDocumentChecked(ctx context.Context, documentID string, checked bool) (domain.Checklist, error)
	ResetChecklist(ctx context.Context) (domain.Checklist, error)
}
