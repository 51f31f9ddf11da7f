package handlers_test

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/tradeops_hub/internal/apperrors"
	"github.com/SscSPs/tradeops_hub/internal/core/domain"
	"github.com/SscSPs/tradeops_hub/internal/dto"
	"github.com/stretchr/testify/mock"
)

func checkedChecklist(checked bool) domain.Checklist {
	docs := domain.DefaultShippingDocuments()
	for i := range docs {
		docs[i].Checked = checked
	}
	return domain.Checklist{Documents: docs}
}

func (suite *HandlerTestSuite) TestGetChecklist() {
	suite.mockChecklist.On("GetChecklist", mock.Anything).Return(checkedChecklist(true), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/checklist", nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var res dto.ChecklistResponse
	suite.decode(w, &res)
	suite.True(res.Complete)
	suite.Equal(res.Total, res.CheckedCount)
}

func (suite *HandlerTestSuite) TestSetDocumentChecked() {
	suite.Run("success", func() {
		suite.mockChecklist.On("SetDocumentChecked", mock.Anything, "invoice", true).Return(checkedChecklist(false), nil).Once()

		w := suite.do(http.MethodPut, "/api/v1/checklist/invoice", `{"checked": true}`)

		suite.Equal(http.StatusOK, w.Code)
	})

	suite.Run("missing flag", func() {
		w := suite.do(http.MethodPut, "/api/v1/checklist/invoice", `{}`)

		suite.Equal(http.StatusBadRequest, w.Code)
	})

	suite.Run("unknown document", func() {
		suite.mockChecklist.On("SetDocumentChecked", mock.Anything, "visa", false).
			Return(domain.Checklist{}, fmt.Errorf("failed to update checklist in service: %w", apperrors.ErrNotFound)).Once()

		w := suite.do(http.MethodPut, "/api/v1/checklist/visa", `{"checked": false}`)

		suite.Equal(http.StatusNotFound, w.Code)
	})

	suite.mockChecklist.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestResetChecklist() {
	suite.mockChecklist.On("ResetChecklist", mock.Anything).Return(checkedChecklist(false), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/checklist/reset", nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var res dto.ChecklistResponse
	suite.decode(w, &res)
	suite.False(res.Complete)
	suite.Zero(res.CheckedCount)
}
