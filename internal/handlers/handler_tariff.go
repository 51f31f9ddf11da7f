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

type tariffHandler struct {
	tariffService portssvc.TariffSvcFacade
}

func newTariffHandler(ts portssvc.TariffSvcFacade) *tariffHandler {
	return &tariffHandler{
		tariffService: ts,
	}
}

// registerTariffRoutes registers routes for the HS code table.
func registerTariffRoutes(rg *gin.RouterGroup, tariffService portssvc.TariffSvcFacade) {
	h := newTariffHandler(tariffService)

	tariffs := rg.Group("/tariffs")
	{
		tariffs.GET("", h.listTariffs)
		tariffs.PUT("", h.replaceTariffs)
	}
}

// listTariffs godoc
// @Summary List or search the HS code table
// @Description Without q, returns the whole table. With q, returns rows whose item name contains q or whose HS code starts with q.
// @Tags tariffs
// @Produce  json
// @Param   q query string false "Item name fragment or HS code prefix"
// @Success 200 {object} dto.ListTariffsResponse
// @Failure 500 {object} map[string]string "Failed to list tariffs"
// @Router /tariffs [get]
func (h *tariffHandler) listTariffs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	query := c.Query("q")

	entries, err := h.tariffService.LookupTariffs(c.Request.Context(), query)
	if err != nil {
		logger.Error("Failed to look up tariffs from service", slog.String("error", err.Error()), slog.String("query", query))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tariffs"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTariffsResponse(entries))
}

// replaceTariffs godoc
// @Summary Replace the HS code table
// @Description Saves the edited table. Rows may share an HS code; duty lookups use the first one.
// @Tags tariffs
// @Accept  json
// @Produce  json
// @Param   tariffs body dto.ReplaceTariffsRequest true "Table rows in display order"
// @Success 200 {object} dto.ListTariffsResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to save tariffs"
// @Router /tariffs [put]
func (h *tariffHandler) replaceTariffs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ReplaceTariffsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ReplaceTariffs", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entries, err := h.tariffService.ReplaceTariffs(c.Request.Context(), req.ToTariffEntries())
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error replacing tariffs", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to replace tariffs in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save tariffs"})
		}
		return
	}

	logger.Info("Tariff table saved", slog.Int("rows", len(entries)))
	c.JSON(http.StatusOK, dto.ToListTariffsResponse(entries))
}
