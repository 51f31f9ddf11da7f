package handlers_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/tradeops_hub/internal/apperrors"
	"github.com/SscSPs/tradeops_hub/internal/core/domain"
	"github.com/SscSPs/tradeops_hub/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestListExchangeRates() {
	suite.mockRates.On("ListExchangeRates", mock.Anything).Return([]domain.ExchangeRate{
		{CurrencyCode: "USD", Rate: dec("1352.4")},
		{CurrencyCode: "JPY", Rate: dec("9.12")},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/exchange-rates", nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var res []dto.ExchangeRateResponse
	suite.decode(w, &res)
	suite.Require().Len(res, 2)
	suite.Equal("USD", res[0].CurrencyCode)
	suite.Equal("달러", res[0].Name)
	suite.Equal("1,352.40 ₩", res[0].Display)
	suite.Equal("9.12 ₩", res[1].Display)
}

func (suite *HandlerTestSuite) TestGetExchangeRate_UppercasesCode() {
	suite.mockRates.On("GetExchangeRate", mock.Anything, "EUR").
		Return(&domain.ExchangeRate{CurrencyCode: "EUR", Rate: dec("1465.2")}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/exchange-rates/eur", nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var res dto.ExchangeRateResponse
	suite.decode(w, &res)
	suite.False(res.IsDefault)
	suite.True(dec("1465.2").Equal(res.Rate))
}

func (suite *HandlerTestSuite) TestGetExchangeRate_DefaultFallback() {
	suite.mockRates.On("GetExchangeRate", mock.Anything, "GBP").
		Return(&domain.ExchangeRate{CurrencyCode: "GBP", Rate: dec("1300"), IsDefault: true}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/exchange-rates/GBP", nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var res dto.ExchangeRateResponse
	suite.decode(w, &res)
	suite.True(res.IsDefault)
}

func (suite *HandlerTestSuite) TestGetExchangeRate_BadCode() {
	w := suite.do(http.MethodGet, "/api/v1/exchange-rates/DOLLAR", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRates.AssertNotCalled(suite.T(), "GetExchangeRate", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestUpdateExchangeRates() {
	suite.Run("success", func() {
		suite.mockRates.On("UpdateExchangeRates", mock.Anything, mock.MatchedBy(func(rates map[string]decimal.Decimal) bool {
			return len(rates) == 1 && rates["USD"].Equal(dec("1400"))
		})).Return([]domain.ExchangeRate{{CurrencyCode: "USD", Rate: dec("1400")}}, nil).Once()

		w := suite.do(http.MethodPut, "/api/v1/exchange-rates", `{"rates": {"USD": 1400}}`)

		suite.Equal(http.StatusOK, w.Code, w.Body.String())
	})

	suite.Run("partial update returns full table", func() {
		suite.mockRates.On("UpdateExchangeRates", mock.Anything, mock.MatchedBy(func(rates map[string]decimal.Decimal) bool {
			return len(rates) == 1 && rates["USD"].Equal(dec("1400"))
		})).Return([]domain.ExchangeRate{
			{CurrencyCode: "USD", Rate: dec("1400")},
			{CurrencyCode: "EUR", Rate: dec("1465.2")},
			{CurrencyCode: "JPY", Rate: dec("9.12")},
			{CurrencyCode: "CNY", Rate: dec("188.5")},
		}, nil).Once()

		w := suite.do(http.MethodPut, "/api/v1/exchange-rates", `{"rates": {"USD": 1400}}`)

		suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
		var res []dto.ExchangeRateResponse
		suite.decode(w, &res)
		suite.Require().Len(res, 4)
		suite.Equal("EUR", res[1].CurrencyCode)
		suite.True(dec("1465.2").Equal(res[1].Rate))
	})

	suite.Run("empty table", func() {
		w := suite.do(http.MethodPut, "/api/v1/exchange-rates", `{"rates": {}}`)

		suite.Equal(http.StatusBadRequest, w.Code)
	})

	suite.Run("service validation", func() {
		suite.mockRates.On("UpdateExchangeRates", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: unsupported currency 'GBP'", apperrors.ErrValidation)).Once()

		w := suite.do(http.MethodPut, "/api/v1/exchange-rates", `{"rates": {"GBP": 1700}}`)

		suite.Equal(http.StatusBadRequest, w.Code)
		suite.Contains(w.Body.String(), "GBP")
	})
}

func (suite *HandlerTestSuite) TestGetRateTrend_Defaults() {
	day := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	suite.mockRates.On("SimulateTrend", mock.Anything, 30, int64(42)).Return([]domain.RateTrend{
		{CurrencyCode: "USD", Points: []domain.RateTrendPoint{{Date: day, Rate: dec("1352.4")}}},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/exchange-rates/trend", nil)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var res dto.RateTrendResponse
	suite.decode(w, &res)
	suite.Equal(30, res.Days)
	suite.Equal(int64(42), res.Seed)
	suite.Require().Len(res.Series, 1)
	suite.True(day.Equal(res.Series[0].Points[0].Date))
}

func (suite *HandlerTestSuite) TestGetRateTrend_InvalidDays() {
	for _, q := range []string{"days=0", "days=366", "days=abc"} {
		w := suite.do(http.MethodGet, "/api/v1/exchange-rates/trend?"+q, nil)
		suite.Equal(http.StatusBadRequest, w.Code, q)
	}
	suite.mockRates.AssertNotCalled(suite.T(), "SimulateTrend", mock.Anything, mock.Anything, mock.Anything)
}
