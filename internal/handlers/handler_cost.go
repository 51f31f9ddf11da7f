package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/tradeops_hub/internal/apperrors"
	portssvc "github.com/SscSPs/tradeops_hub/internal/core/ports/services"
	"github.com/SscSPs/tradeops_hub/internal/dto"
	"github.com/SscSPs/tradeops_hub/internal/middleware"
	"github.com/gin-gonic/gin"
)

// costHandler handles HTTP requests for import cost estimates.
type costHandler struct {
	costService portssvc.CostSvc
}

// newCostHandler creates a new costHandler.
func newCostHandler(cs portssvc.CostSvc) *costHandler {
	return &costHandler{
		costService: cs,
	}
}

// registerCostRoutes registers routes related to cost calculation.
func registerCostRoutes(rg *gin.RouterGroup, costService portssvc.CostSvc) {
	h := newCostHandler(costService)

	cost := rg.Group("/cost")
	{
		cost.POST("/calculate", h.calculateCost)
	}
}

// calculateCost godoc
// @Summary Calculate landed import cost
// @Description Computes CIF value, customs duty, VAT (10%) and total landed cost in KRW.
// @Description The exchange rate defaults to the rate table; dutyRatePct may be replaced by an hsCode from the tariff table.
// @Tags cost
// @Accept  json
// @Produce  json
// @Param   invoice body dto.CalculateCostRequest true "Invoice figures"
// @Success 200 {object} dto.CostEstimateResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to calculate cost"
// @Router /cost/calculate [post]
func (h *costHandler) calculateCost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CalculateCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CalculateCost", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("currency_code", req.CurrencyCode))
	logger.Info("Received request to calculate import cost", slog.Bool("rate_override", req.ExchangeRate != nil))

	estimate, err := h.costService.CalculateCost(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error calculating cost", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to calculate cost in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate cost"})
		}
		return
	}

	logger.Info("Import cost calculated", slog.String("total_cost", estimate.Breakdown.TotalCost.String()))
	c.JSON(http.StatusOK, dto.ToCostEstimateResponse(estimate))
}
