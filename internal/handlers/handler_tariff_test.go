package handlers_test

import (
	"net/http"

	"github.com/SscSPs/tradeops_hub/internal/core/domain"
	"github.com/SscSPs/tradeops_hub/internal/dto"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestListTariffs_PassesQuery() {
	suite.mockTariffs.On("LookupTariffs", mock.Anything, "커피").Return([]domain.TariffEntry{
		{EntryID: "e1", ItemName: "원두커피", HSCode: "0901.11.0000", BaseRate: "2%", Note: "검역대상"},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/tariffs?q=%EC%BB%A4%ED%94%BC", nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var res dto.ListTariffsResponse
	suite.decode(w, &res)
	suite.Equal(1, res.Count)
	suite.Equal("0901.11.0000", res.Entries[0].HSCode)
}

func (suite *HandlerTestSuite) TestListTariffs_EmptyResultIsArray() {
	suite.mockTariffs.On("LookupTariffs", mock.Anything, "").Return([]domain.TariffEntry{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/tariffs", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"entries": [], "count": 0}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestReplaceTariffs_Success() {
	suite.mockTariffs.On("ReplaceTariffs", mock.Anything, mock.MatchedBy(func(entries []domain.TariffEntry) bool {
		return len(entries) == 2 && entries[0].HSCode == entries[1].HSCode && entries[0].EntryID == ""
	})).Return([]domain.TariffEntry{
		{EntryID: "a", ItemName: "의류(면)", HSCode: "6109.10.0000", BaseRate: "13%"},
		{EntryID: "b", ItemName: "의류(면) FTA", HSCode: "6109.10.0000", BaseRate: "0%"},
	}, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/tariffs", dto.ReplaceTariffsRequest{Entries: []dto.TariffEntryRequest{
		{ItemName: "의류(면)", HSCode: "6109.10.0000", BaseRate: "13%"},
		{ItemName: "의류(면) FTA", HSCode: "6109.10.0000", BaseRate: "0%"},
	}})

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var res dto.ListTariffsResponse
	suite.decode(w, &res)
	suite.Equal(2, res.Count)
}

func (suite *HandlerTestSuite) TestReplaceTariffs_PassesEntryIDThrough() {
	suite.mockTariffs.On("ReplaceTariffs", mock.Anything, mock.MatchedBy(func(entries []domain.TariffEntry) bool {
		return len(entries) == 2 && entries[0].EntryID == "row-1" && entries[1].EntryID == ""
	})).Return([]domain.TariffEntry{
		{EntryID: "row-1", ItemName: "원두커피", HSCode: "0901.11.0000", BaseRate: "2%"},
		{EntryID: "row-2", ItemName: "의류(면)", HSCode: "6109.10.0000", BaseRate: "13%"},
	}, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/tariffs", `{"entries": [
		{"entryID": "row-1", "itemName": "원두커피", "hsCode": "0901.11.0000", "baseRate": "2%"},
		{"itemName": "의류(면)", "hsCode": "6109.10.0000", "baseRate": "13%"}
	]}`)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var res dto.ListTariffsResponse
	suite.decode(w, &res)
	suite.Require().Len(res.Entries, 2)
	suite.Equal("row-1", res.Entries[0].EntryID)
}

func (suite *HandlerTestSuite) TestReplaceTariffs_RowValidation() {
	tests := []struct {
		name  string
		entry dto.TariffEntryRequest
	}{
		{name: "missing item", entry: dto.TariffEntryRequest{HSCode: "0901.11.0000", BaseRate: "2%"}},
		{name: "bad hs code", entry: dto.TariffEntryRequest{ItemName: "x", HSCode: "coffee", BaseRate: "2%"}},
		{name: "bad rate", entry: dto.TariffEntryRequest{ItemName: "x", HSCode: "0901.11.0000", BaseRate: "two"}},
		{name: "negative rate", entry: dto.TariffEntryRequest{ItemName: "x", HSCode: "0901.11.0000", BaseRate: "-2%"}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := suite.do(http.MethodPut, "/api/v1/tariffs", dto.ReplaceTariffsRequest{Entries: []dto.TariffEntryRequest{tt.entry}})
			suite.Equal(http.StatusBadRequest, w.Code)
		})
	}
	suite.mockTariffs.AssertNotCalled(suite.T(), "ReplaceTariffs", mock.Anything, mock.Anything)
}
