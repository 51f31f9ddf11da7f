package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/tradeops_hub/internal/core/domain"
	portsrepo "github.com/SscSPs/tradeops_hub/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tradeops_hub/internal/core/ports/services"
)

type checklistService struct {
	BaseService
	checklistRepo portsrepo.ChecklistRepositoryFacade
}

// NewChecklistService creates a new shipping checklist service.
func NewChecklistService(checklistRepo portsrepo.ChecklistRepositoryFacade) portssvc.ChecklistSvcFacade {
	return &checklistService{checklistRepo: checklistRepo}
}

var _ portssvc.ChecklistSvcFacade = (*checklistService)(nil)

func (s *checklistService) GetChecklist(ctx context.Context) (domain.Checklist, error) {
	checklist, err := s.checklistRepo.GetChecklist(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to get checklist")
		return domain.Checklist{}, fmt.Errorf("failed to get checklist in service: %w", err)
	}
	return checklist, nil
}

// SetDocumentChecked returns the whole checklist so callers can refresh the completion state.
func (s *checklistService) SetDocumentChecked(ctx context.Context, documentID string, checked bool) (domain.Checklist, error) {
	if _, err := s.checklistRepo.SetDocumentChecked(ctx, documentID, checked); err != nil {
		return domain.Checklist{}, fmt.Errorf("failed to update checklist in service: %w", err)
	}
	s.LogInfo(ctx, "Checklist document updated",
		slog.String("document_id", documentID),
		slog.Bool("checked", checked))
	return s.GetChecklist(ctx)
}

func (s *checklistService) ResetChecklist(ctx context.Context) (domain.Checklist, error) {
	if err := s.checklistRepo.ResetChecklist(ctx); err != nil {
		s.LogError(ctx, err, "Failed to reset checklist")
		return domain.Checklist{}, fmt.Errorf("failed to reset checklist in service: %w", err)
	}
	return s.GetChecklist(ctx)
}
