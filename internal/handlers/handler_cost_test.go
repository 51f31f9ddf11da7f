package handlers_test

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/tradeops_hub/internal/apperrors"
	"github.com/SscSPs/tradeops_hub/internal/core/domain"
	"github.com/SscSPs/tradeops_hub/internal/dto"
	"github.com/stretchr/testify/mock"
)

func usdEstimate() *domain.CostEstimate {
	input := domain.InvoiceInput{
		CurrencyCode: "USD",
		ExchangeRate: dec("1352.4"),
		InvoiceValue: dec("10000"),
		ShippingIntl: dec("500"),
		DutyRatePct:  dec("8"),
		Insurance:    dec("50000"),
		HandlingFee:  dec("250000"),
	}
	return &domain.CostEstimate{
		Input:      input,
		RateSource: domain.RateSourceTable,
		Breakdown:  domain.CalculateCost(input),
	}
}

func (suite *HandlerTestSuite) TestCalculateCost_Success() {
	suite.mockCost.On("CalculateCost", mock.Anything, mock.MatchedBy(func(req dto.CalculateCostRequest) bool {
		return req.CurrencyCode == "USD" && req.InvoiceValue.Equal(dec("10000")) &&
			req.DutyRatePct != nil && req.DutyRatePct.Equal(dec("8")) && req.ExchangeRate == nil
	})).Return(usdEstimate(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/cost/calculate", `{
		"currencyCode": "USD",
		"invoiceValue": 10000,
		"shippingIntl": 500,
		"dutyRatePct": 8,
		"insurance": 50000,
		"handlingFee": 250000
	}`)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var res dto.CostEstimateResponse
	suite.decode(w, &res)
	suite.Equal(domain.RateSourceTable, res.RateSource)
	suite.True(dec("14250200").Equal(res.CIFValue))
	suite.True(dec("17179237.6").Equal(res.TotalCost))
	suite.True(dec("10").Equal(res.VATRatePct))
	suite.Equal("KRW", res.CostCurrency)
	suite.Equal("₩14,250,200", res.Display.CIFValue)
	suite.Equal("₩1,140,016", res.Display.DutyAmount)
	suite.Equal("₩17,179,238", res.Display.TotalCost)
	suite.mockCost.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCalculateCost_BindingFailures() {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"currencyCode": "USD",`},
		{name: "missing currency", body: `{"invoiceValue": 100}`},
		{name: "lowercase currency", body: `{"currencyCode": "usd", "invoiceValue": 100}`},
		{name: "negative invoice", body: `{"currencyCode": "USD", "invoiceValue": -1}`},
		{name: "negative handling fee", body: `{"currencyCode": "USD", "handlingFee": -250000}`},
		{name: "zero rate override", body: `{"currencyCode": "USD", "exchangeRate": 0}`},
		{name: "negative duty rate", body: `{"currencyCode": "USD", "dutyRatePct": -8}`},
		{name: "bad hs code", body: `{"currencyCode": "USD", "hsCode": "61-09"}`},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := suite.do(http.MethodPost, "/api/v1/cost/calculate", tt.body)
			suite.Equal(http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
	suite.mockCost.AssertNotCalled(suite.T(), "CalculateCost", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCalculateCost_ServiceErrors() {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{
			name:   "unknown hs code",
			err:    fmt.Errorf("%w: no tariff entry for HS code '9999.99': %w", apperrors.ErrValidation, apperrors.ErrNotFound),
			status: http.StatusBadRequest,
		},
		{name: "unexpected", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.mockCost.On("CalculateCost", mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/cost/calculate", `{"currencyCode": "USD", "hsCode": "9999.99"}`)

			suite.Equal(tt.status, w.Code)
			if tt.status == http.StatusInternalServerError {
				suite.NotContains(w.Body.String(), "boom")
			}
		})
	}
}
