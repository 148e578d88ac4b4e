package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/SscSPs/finacc/internal/apperrors"
	"github.com/SscSPs/finacc/internal/core/domain"
	"github.com/SscSPs/finacc/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestCreateAccount_Success() {
	req := dto.CreateAccountRequest{Name: "Cash desk", AccountType: domain.AccountTypeCash}
	created := &domain.Account{AccountID: 10, OrganizationID: 1, Name: "Cash desk", AccountType: domain.AccountTypeCash, Currency: "RUB", IsActive: true}

	suite.accounts.On("CreateAccount", mock.Anything, int64(1), req, testUserID).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/organizations/1/accounts", req)

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(10), resp.AccountID)
	suite.Equal("RUB", resp.Currency)
	suite.True(resp.Balance.IsZero())
	suite.accounts.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateAccount_InvalidType() {
	w := suite.do(http.MethodPost, "/api/v1/organizations/1/accounts", map[string]any{
		"name":        "Vault",
		"accountType": "crypto",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal(apperrors.KindValidation, suite.decodeError(w).Code)
	suite.accounts.AssertNotCalled(suite.T(), "CreateAccount")
}

func (suite *HandlerTestSuite) TestGetAccount_WithBalance() {
	account := &domain.AccountWithBalance{
		Account: domain.Account{AccountID: 10, OrganizationID: 1, Name: "Main"},
		Balance: decimal.NewFromInt(900),
	}
	suite.accounts.On("GetAccountByID", mock.Anything, int64(1), int64(10)).Return(account, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/organizations/1/accounts/10", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(decimal.NewFromInt(900).Equal(resp.Balance), resp.Balance.String())
}

func (suite *HandlerTestSuite) TestGetAccount_NotFound() {
	suite.accounts.On("GetAccountByID", mock.Anything, int64(1), int64(99)).
		Return(nil, fmt.Errorf("%w: account 99 not found", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodGet, "/api/v1/organizations/1/accounts/99", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal(apperrors.KindNotFound, suite.decodeError(w).Code)
}

func (suite *HandlerTestSuite) TestGetAccount_MalformedID() {
	w := suite.do(http.MethodGet, "/api/v1/organizations/1/accounts/abc", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.accounts.AssertNotCalled(suite.T(), "GetAccountByID")
}

func (suite *HandlerTestSuite) TestListAccounts() {
	accounts := []domain.AccountWithBalance{
		{Account: domain.Account{AccountID: 1, Name: "A"}, Balance: decimal.NewFromInt(5)},
		{Account: domain.Account{AccountID: 2, Name: "B"}, Balance: decimal.NewFromInt(-3)},
	}
	suite.accounts.On("ListAccounts", mock.Anything, int64(7)).Return(accounts, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/organizations/7/accounts", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.True(decimal.NewFromInt(-3).Equal(resp[1].Balance))
}

func (suite *HandlerTestSuite) TestDeactivateAccount() {
	suite.accounts.On("DeactivateAccount", mock.Anything, int64(1), int64(10), testUserID).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/organizations/1/accounts/10", nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.accounts.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetAccountBalance() {
	suite.accounts.On("ComputeBalance", mock.Anything, int64(1), int64(10)).Return(decimal.RequireFromString("1300.50"), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/organizations/1/accounts/10/balance", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(10), resp.AccountID)
	suite.True(decimal.RequireFromString("1300.50").Equal(resp.Balance))
}

func (suite *HandlerTestSuite) TestListTransactionsByAccount() {
	txns := []domain.Transaction{
		{TransactionID: 2, AccountID: 10, Amount: decimal.NewFromInt(100), TransactionType: domain.Expense,
			Origin: domain.SettlementOrigin(7)},
		{TransactionID: 1, AccountID: 10, Amount: decimal.NewFromInt(1000), TransactionType: domain.Income,
			Origin: domain.OrganicOrigin()},
	}
	suite.transactions.On("ListTransactionsByAccount", mock.Anything, int64(1), int64(10)).Return(txns, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/organizations/1/accounts/10/transactions", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.Equal(domain.OriginInvoiceSettlement, resp[0].Origin)
	suite.Require().NotNil(resp[0].InvoiceID)
	suite.Equal(int64(7), *resp[0].InvoiceID)
	suite.Nil(resp[1].InvoiceID)
}

func (suite *HandlerTestSuite) TestListTransactions_PassesToken() {
	token := "abc"
	expected := &dto.ListTransactionsResponse{Transactions: []dto.TransactionResponse{}}
	suite.transactions.On("ListTransactions", mock.Anything, int64(1), mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
		return p.Limit == 5 && p.NextToken != nil && *p.NextToken == token
	})).Return(expected, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/organizations/1/transactions?limit=5&nextToken="+token, nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	suite.transactions.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListTransactions_LimitOutOfRange() {
	w := suite.do(http.MethodGet, "/api/v1/organizations/1/transactions?limit=1000", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.transactions.AssertNotCalled(suite.T(), "ListTransactions")
}
