package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/finacc/internal/apperrors"
	"github.com/SscSPs/finacc/internal/core/domain"
	"github.com/SscSPs/finacc/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func testInvoice(paid string, status domain.InvoiceStatus) *domain.InvoiceDetails {
	return &domain.InvoiceDetails{
		Invoice: domain.Invoice{
			InvoiceID:      7,
			OrganizationID: 1,
			AccountID:      10,
			CategoryID:     3,
			CounterpartyID: 4,
			InvoiceType:    domain.Income,
			InvoiceDate:    time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			Amount:         decimal.NewFromInt(1000),
			PaidAmount:     decimal.RequireFromString(paid),
			Status:         status,
		},
		AccountName:      "Main",
		CategoryName:     "Sales",
		CategoryType:     domain.Income,
		CounterpartyName: "ACME",
	}
}

func payment(accountID int64, amount string) any {
	return mock.MatchedBy(func(req dto.PayInvoiceRequest) bool {
		return req.AccountID == accountID && req.Amount.Equal(decimal.RequireFromString(amount))
	})
}

func (suite *HandlerTestSuite) TestPayInvoice_Partial() {
	suite.invoices.On("PayInvoice", mock.Anything, int64(1), int64(7), payment(10, "400"), testUserID).
		Return(testInvoice("400", domain.InvoicePartial), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/organizations/1/invoices/7/pay", map[string]any{
		"accountID": 10,
		"amount":    "400",
	})

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.InvoiceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.InvoicePartial, resp.Status)
	suite.True(decimal.NewFromInt(600).Equal(resp.Remaining), resp.Remaining.String())
	suite.Equal("Main", resp.AccountName)
	suite.Equal("2024-03-15", resp.InvoiceDate)
	suite.invoices.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestPayInvoice_InsufficientFunds() {
	suite.invoices.On("PayInvoice", mock.Anything, int64(1), int64(7), payment(10, "5000"), testUserID).
		Return(nil, fmt.Errorf("%w: account 10 balance 900.00 is less than 5000", apperrors.ErrInsufficientFunds)).Once()

	w := suite.do(http.MethodPost, "/api/v1/organizations/1/invoices/7/pay", map[string]any{
		"accountID": 10,
		"amount":    5000,
	})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Equal(apperrors.KindInsufficientFunds, suite.decodeError(w).Code)
}

func (suite *HandlerTestSuite) TestPayInvoice_Overpayment() {
	suite.invoices.On("PayInvoice", mock.Anything, int64(1), int64(7), payment(10, "2000"), testUserID).
		Return(nil, fmt.Errorf("%w: payment exceeds remaining amount", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodPost, "/api/v1/organizations/1/invoices/7/pay", map[string]any{
		"accountID": 10,
		"amount":    "2000",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal(apperrors.KindValidation, suite.decodeError(w).Code)
}

func (suite *HandlerTestSuite) TestPayInvoice_Conflict() {
	suite.invoices.On("PayInvoice", mock.Anything, int64(1), int64(7), payment(10, "100"), testUserID).
		Return(nil, fmt.Errorf("%w: invoice 7 was paid concurrently", apperrors.ErrConflict)).Once()

	w := suite.do(http.MethodPost, "/api/v1/organizations/1/invoices/7/pay", map[string]any{
		"accountID": 10,
		"amount":    "100",
	})

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal(apperrors.KindConflict, suite.decodeError(w).Code)
}

func (suite *HandlerTestSuite) TestPayInvoice_InternalErrorHidden() {
	suite.invoices.On("PayInvoice", mock.Anything, int64(1), int64(7), payment(10, "100"), testUserID).
		Return(nil, fmt.Errorf("connection reset by peer")).Once()

	w := suite.do(http.MethodPost, "/api/v1/organizations/1/invoices/7/pay", map[string]any{
		"accountID": 10,
		"amount":    "100",
	})

	suite.Equal(http.StatusInternalServerError, w.Code)
	resp := suite.decodeError(w)
	suite.Equal(apperrors.KindInternal, resp.Code)
	suite.NotContains(resp.Error, "connection reset")
}

func (suite *HandlerTestSuite) TestPayInvoice_MissingAccount() {
	w := suite.do(http.MethodPost, "/api/v1/organizations/1/invoices/7/pay", map[string]any{"amount": "100"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.invoices.AssertNotCalled(suite.T(), "PayInvoice")
}

func (suite *HandlerTestSuite) TestCreateInvoice_ZeroAmountRejected() {
	w := suite.do(http.MethodPost, "/api/v1/organizations/1/invoices", map[string]any{
		"accountID":      10,
		"categoryID":     3,
		"counterpartyID": 4,
		"invoiceType":    "INCOME",
		"invoiceDate":    "2024-03-15",
		"amount":         "0",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.invoices.AssertNotCalled(suite.T(), "CreateInvoice")
}

func (suite *HandlerTestSuite) TestCreateInvoice_SubCentAmountRejected() {
	w := suite.do(http.MethodPost, "/api/v1/organizations/1/invoices", map[string]any{
		"accountID":      10,
		"categoryID":     3,
		"counterpartyID": 4,
		"invoiceType":    "INCOME",
		"invoiceDate":    "2024-03-15",
		"amount":         "100.005",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal(apperrors.KindValidation, suite.decodeError(w).Code)
	suite.invoices.AssertNotCalled(suite.T(), "CreateInvoice")
}

func (suite *HandlerTestSuite) TestCreateInvoice_Success() {
	suite.invoices.On("CreateInvoice", mock.Anything, int64(1), mock.MatchedBy(func(req dto.CreateInvoiceRequest) bool {
		return req.InvoiceType == domain.Income && req.Amount.Equal(decimal.NewFromInt(1000))
	}), testUserID).Return(testInvoice("0", domain.InvoiceUnpaid), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/organizations/1/invoices", map[string]any{
		"accountID":      10,
		"categoryID":     3,
		"counterpartyID": 4,
		"invoiceType":    "INCOME",
		"invoiceDate":    "2024-03-15",
		"amount":         "1000",
	})

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.InvoiceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.InvoiceUnpaid, resp.Status)
	suite.Equal("ACME", resp.CounterpartyName)
}

func (suite *HandlerTestSuite) TestGetInvoice_NotFound() {
	suite.invoices.On("GetInvoice", mock.Anything, int64(1), int64(8)).
		Return(nil, fmt.Errorf("%w: invoice 8 not found", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodGet, "/api/v1/organizations/1/invoices/8", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}
