package dto

import "github.com/SscSPs/tradeops_hub/internal/core/domain"

// SetDocumentCheckedRequest ticks or unticks one checklist document.
type SetDocumentCheckedRequest struct {
	Checked *bool `json:"checked" binding:"required"`
}

// ChecklistResponse defines the data returned for the shipping checklist.
type ChecklistResponse struct {
	Documents    []domain.ShippingDocument `json:"documents"`
	CheckedCount int                       `json:"checkedCount"`
	Total        int                       `json:"total"`
	Complete     bool                      `json:"complete"`
}

// ToChecklistResponse converts a domain.Checklist to ChecklistResponse DTO
func ToChecklistResponse(c domain.Checklist) ChecklistResponse {
	checked := 0
	for _, d := range c.Documents {
		if d.Checked {
			checked++
		}
	}
	docs := c.Documents
	if docs == nil {
		docs = []domain.ShippingDocument{}
	}
	return ChecklistResponse{
		Documents:    docs,
		CheckedCount: checked,
		Total:        len(c.Documents),
		Complete:     c.Complete(),
	}
}
