package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/SscSPs/finacc/internal/apperrors"
	"github.com/SscSPs/finacc/internal/core/domain"
	"github.com/SscSPs/finacc/internal/dto"
	"github.com/stretchr/testify/mock"
)

func int64Ptr(v int64) *int64 { return &v }

func (suite *HandlerTestSuite) TestGetCategoryTree_NestsChildren() {
	tree := domain.BuildCategoryTree([]domain.Category{
		{CategoryID: 1, Name: "Sales", CategoryType: domain.Income},
		{CategoryID: 2, OrganizationID: int64Ptr(1), ParentID: int64Ptr(1), Name: "Online", CategoryType: domain.Income},
	})
	suite.categories.On("GetCategoryTree", mock.Anything, int64(1)).Return(tree, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/organizations/1/categories/tree", nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var roots []dto.CategoryTreeNode
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &roots))
	suite.Require().Len(roots, 1)
	suite.True(roots[0].Shared)
	suite.Require().Len(roots[0].Children, 1)
	suite.Equal("Online", roots[0].Children[0].Name)
	suite.False(roots[0].Children[0].Shared)
}

func (suite *HandlerTestSuite) TestCreateCategory_UnknownParent() {
	req := dto.CreateCategoryRequest{Name: "Rent", CategoryType: domain.Expense, ParentID: int64Ptr(77)}
	suite.categories.On("CreateCategory", mock.Anything, int64(1), req, testUserID).
		Return(nil, fmt.Errorf("%w: parent category 77 not found", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodPost, "/api/v1/organizations/1/categories", req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal(apperrors.KindNotFound, suite.decodeError(w).Code)
}

func (suite *HandlerTestSuite) TestCreateCategory_BadType() {
	w := suite.do(http.MethodPost, "/api/v1/organizations/1/categories", map[string]any{
		"name":         "Misc",
		"categoryType": "TRANSFER",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.categories.AssertNotCalled(suite.T(), "CreateCategory")
}

func (suite *HandlerTestSuite) TestUpdateCounterparty_PartialFields() {
	phone := "+7 900 000-00-00"
	req := dto.UpdateCounterpartyRequest{Phone: &phone}
	updated := &domain.Counterparty{CounterpartyID: 5, OrganizationID: 1, Name: "Acme", Phone: phone}
	suite.counterparties.On("UpdateCounterparty", mock.Anything, int64(1), int64(5), req, testUserID).Return(updated, nil).Once()

	w := suite.do(http.MethodPatch, "/api/v1/organizations/1/counterparties/5", req)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.CounterpartyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Acme", resp.Name)
	suite.Equal(phone, resp.Phone)
	suite.counterparties.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateCounterparty_InvalidEmail() {
	w := suite.do(http.MethodPost, "/api/v1/organizations/1/counterparties", map[string]any{
		"name":  "Acme",
		"email": "not-an-email",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal(apperrors.KindValidation, suite.decodeError(w).Code)
	suite.counterparties.AssertNotCalled(suite.T(), "CreateCounterparty")
}
