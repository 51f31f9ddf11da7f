package dto

import (
	"github.com/SscSPs/tradeops_hub/internal/core/domain"
	"github.com/SscSPs/tradeops_hub/internal/utils"
	"github.com/shopspring/decimal"
)

// CalculateCostRequest carries the invoice figures for one cost estimate.
// ExchangeRate overrides the table rate when present. DutyRatePct wins over
// HSCode; with neither, no duty is charged.
type CalculateCostRequest struct {
	CurrencyCode string           `json:"currencyCode" binding:"required,len=3,uppercase"`
	ExchangeRate *decimal.Decimal `json:"exchangeRate,omitempty" binding:"omitempty,gt=0"`
	InvoiceValue decimal.Decimal  `json:"invoiceValue" binding:"gte=0"`
	ShippingIntl decimal.Decimal  `json:"shippingIntl" binding:"gte=0"`
	DutyRatePct  *decimal.Decimal `json:"dutyRatePct,omitempty" binding:"omitempty,gte=0"`
	HSCode       string           `json:"hsCode,omitempty" binding:"omitempty,hscode"`
	Insurance    decimal.Decimal  `json:"insurance" binding:"gte=0"`
	HandlingFee  decimal.Decimal  `json:"handlingFee" binding:"gte=0"`
}

// CostDisplay holds the breakdown as whole-won strings, e.g. "₩14,250,200".
type CostDisplay struct {
	CIFValue   string `json:"cifValue"`
	DutyAmount string `json:"dutyAmount"`
	VATAmount  string `json:"vatAmount"`
	TotalCost  string `json:"totalCost"`
}

// CostEstimateResponse is returned by the cost calculation endpoint.
type CostEstimateResponse struct {
	CurrencyCode string            `json:"currencyCode"`
	ExchangeRate decimal.Decimal   `json:"exchangeRate"`
	RateSource   domain.RateSource `json:"rateSource"`
	HSCode       string            `json:"hsCode,omitempty"`
	DutyRatePct  decimal.Decimal   `json:"dutyRatePct"`
	VATRatePct   decimal.Decimal   `json:"vatRatePct"`
	CIFValue     decimal.Decimal   `json:"cifValue"`
	DutyAmount   decimal.Decimal   `json:"dutyAmount"`
	VATAmount    decimal.Decimal   `json:"vatAmount"`
	TotalCost    decimal.Decimal   `json:"totalCost"`
	CostCurrency string            `json:"costCurrency"`
	Display      CostDisplay       `json:"display"`
}

// ToCostEstimateResponse converts a domain.CostEstimate to CostEstimateResponse DTO
func ToCostEstimateResponse(est *domain.CostEstimate) CostEstimateResponse {
	b := est.Breakdown
	return CostEstimateResponse{
		CurrencyCode: est.Input.CurrencyCode,
		ExchangeRate: est.Input.ExchangeRate,
		RateSource:   est.RateSource,
		HSCode:       est.HSCode,
		DutyRatePct:  est.Input.DutyRatePct,
		VATRatePct:   domain.VATRate().Shift(2),
		CIFValue:     b.CIFValue,
		DutyAmount:   b.DutyAmount,
		VATAmount:    b.VATAmount,
		TotalCost:    b.TotalCost,
		CostCurrency: domain.LocalCurrencyCode,
		Display: CostDisplay{
			CIFValue:   utils.FormatWon(b.CIFValue),
			DutyAmount: utils.FormatWon(b.DutyAmount),
			VATAmount:  utils.FormatWon(b.VATAmount),
			TotalCost:  utils.FormatWon(b.TotalCost),
		},
	}
}
