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

// checklistHandler handles HTTP requests for the shipping-document checklist.
type checklistHandler struct {
	checklistService portssvc.ChecklistSvcFacade
}

func newChecklistHandler(cs portssvc.ChecklistSvcFacade) *checklistHandler {
	return &checklistHandler{
		checklistService: cs,
	}
}

func registerChecklistRoutes(rg *gin.RouterGroup, checklistService portssvc.ChecklistSvcFacade) {
	h := newChecklistHandler(checklistService)

	checklist := rg.Group("/checklist")
	{
		checklist.GET("", h.getChecklist)
		checklist.PUT("/:docID", h.setDocumentChecked)
		checklist.POST("/reset", h.resetChecklist)
	}
}

// getChecklist godoc
// @Summary Get the shipping checklist
// @Description Returns the required shipping documents and whether all are checked
// @Tags checklist
// @Produce  json
// @Success 200 {object} dto.ChecklistResponse
// @Failure 500 {object} map[string]string "Failed to retrieve checklist"
// @Router /checklist [get]
func (h *checklistHandler) getChecklist(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	checklist, err := h.checklistService.GetChecklist(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get checklist from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve checklist"})
		return
	}

	c.JSON(http.StatusOK, dto.ToChecklistResponse(checklist))
}

// setDocumentChecked godoc
// @Summary Tick or untick a shipping document
// @Tags checklist
// @Accept  json
// @Produce  json
// @Param   docID path string true "Document ID" Enums(invoice, packing-list, bill-of-lading, certificate-of-origin, insurance-policy)
// @Param   state body dto.SetDocumentCheckedRequest true "Checked state"
// @Success 200 {object} dto.ChecklistResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 500 {object} map[string]string "Failed to update checklist"
// @Router /checklist/{docID} [put]
func (h *checklistHandler) setDocumentChecked(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("docID")

	var req dto.SetDocumentCheckedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetDocumentChecked", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("document_id", documentID))

	checklist, err := h.checklistService.SetDocumentChecked(c.Request.Context(), documentID, *req.Checked)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Checklist document not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		} else {
			logger.Error("Failed to update checklist in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update checklist"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToChecklistResponse(checklist))
}

// resetChecklist godoc
// @Summary Untick every shipping document
// @Tags checklist
// @Produce  json
// @Success 200 {object} dto.ChecklistResponse
// @Failure 500 {object} map[string]string "Failed to reset checklist"
// @Router /checklist/reset [post]
func (h *checklistHandler) resetChecklist(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	checklist, err := h.checklistService.ResetChecklist(c.Request.Context())
	if err != nil {
		logger.Error("Failed to reset checklist in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset checklist"})
		return
	}

	logger.Info("Checklist reset")
	c.JSON(http.StatusOK, dto.ToChecklistResponse(checklist))
}
