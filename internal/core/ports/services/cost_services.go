package services

import (
	"context"

	"github.com/SscSPs/tradeops_hub/internal/core/domain"
	"github.com/SscSPs/tradeops_hub/internal/dto"
)

// CostSvc defines the import cost calculation
type CostSvc interface {
	// CalculateCost resolves the exchange and duty rates for req and returns the landed-cost estimate.
	CalculateCost(ctx context.Context, req dto.CalculateCostRequest) (*domain.CostEstimate, error)
}
