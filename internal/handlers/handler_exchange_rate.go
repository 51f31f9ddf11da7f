package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/tradeops_hub/internal/apperrors"
	portssvc "github.com/SscSPs/tradeops_hub/internal/core/ports/services"
	"github.com/SscSPs/tradeops_hub/internal/dto"
	"github.com/SscSPs/tradeops_hub/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.GET("", h.listExchangeRates)
		exchangeRates.PUT("", h.updateExchangeRates)
		exchangeRates.GET("/trend", h.getRateTrend)
		exchangeRates.GET("/:code", h.getExchangeRate)
	}
}

// listExchangeRates godoc
// @Summary List exchange rates
// @Description Returns the KRW rate of every configured currency, supported currencies first
// @Tags exchange rates
// @Produce  json
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 500 {object} map[string]string "Failed to list exchange rates"
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.exchangeRateService.ListExchangeRates(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list exchange rates from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list exchange rates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

// updateExchangeRates godoc
// @Summary Update exchange rates
// @Description Merges the given rates into the table and returns the full table. Codes must be supported currencies and rates positive.
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   rates body dto.UpdateExchangeRatesRequest true "Currency code to KRW rate"
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to update exchange rates"
// @Router /exchange-rates [put]
func (h *exchangeRateHandler) updateExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateExchangeRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateExchangeRates", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to update exchange rates", slog.Int("count", len(req.Rates)))

	rates, err := h.exchangeRateService.UpdateExchangeRates(c.Request.Context(), req.Rates)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating exchange rates", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update exchange rates in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update exchange rates"})
		}
		return
	}

	logger.Info("Exchange rates updated successfully")
	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

// getExchangeRate godoc
// @Summary Get an exchange rate
// @Description Retrieves the KRW rate for one currency. Unconfigured currencies return the default rate with isDefault set.
// @Tags exchange rates
// @Produce  json
// @Param   code path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid currency code format"
// @Failure 500 {object} map[string]string "Failed to retrieve exchange rate"
// @Router /exchange-rates/{code} [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := strings.ToUpper(c.Param("code"))

	if len(code) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency code must be 3 letters"})
		return
	}

	logger = logger.With(slog.String("currency_code", code))

	rate, err := h.exchangeRateService.GetExchangeRate(c.Request.Context(), code)
	if err != nil {
		logger.Error("Failed to get exchange rate from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve exchange rate"})
		return
	}

	if rate.IsDefault {
		logger.Info("No configured rate, returned default")
	}
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// getRateTrend godoc
// @Summary Simulated exchange rate trend
// @Description Returns a seeded random-walk series per supported currency for charting. The data is simulated.
// @Tags exchange rates
// @Produce  json
// @Param   days query int false "Number of daily points" default(30) minimum(1) maximum(365)
// @Param   seed query int false "Random seed" default(42)
// @Success 200 {object} dto.RateTrendResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to simulate trend"
// @Router /exchange-rates/trend [get]
func (h *exchangeRateHandler) getRateTrend(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.RateTrendParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for RateTrend", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	series, err := h.exchangeRateService.SimulateTrend(c.Request.Context(), params.Days, params.Seed)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to simulate rate trend", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to simulate trend"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.RateTrendResponse{Days: params.Days, Seed: params.Seed, Series: series})
}
