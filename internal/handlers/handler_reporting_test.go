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

func decimals(values ...int64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.NewFromInt(v)
	}
	return out
}

func reportFor(orgID int64, granularity string, from, to time.Time) any {
	return mock.MatchedBy(func(req domain.ReportRequest) bool {
		return req.OrganizationID == orgID &&
			string(req.Granularity) == granularity &&
			req.From.Equal(from) && req.To.Equal(to)
	})
}

func (suite *HandlerTestSuite) TestProfitAndLoss_Success() {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	report := &domain.ProfitAndLoss{
		Granularity: domain.GranularityMonth,
		From:        from,
		To:          to,
		Periods:     []string{"2024-01", "2024-02"},
		Revenue:     decimals(1000, 0),
		RevenueByCategory: []domain.CategorySeries{
			{Name: "Sales", Values: decimals(1000, 0), Total: decimal.NewFromInt(1000)},
		},
		COGS:            decimals(300, 0),
		GrossProfit:     decimals(700, 0),
		GrossMargin:     decimals(70, 0),
		OPEX:            decimals(100, 50),
		OperatingProfit: decimals(600, -50),
		OperatingMargin: decimals(60, 0),
		NetProfit:       decimals(600, -50),
		NetMargin:       decimals(60, 0),
	}
	suite.reporting.On("ProfitAndLoss", mock.Anything, reportFor(1, "month", from, to)).Return(report, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/organizations/1/reports/profit-and-loss?granularity=month&from=2024-01-01&to=2024-02-29", nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.ProfitAndLossResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().NotNil(resp.ProfitAndLoss)
	suite.Equal([]string{"2024-01", "2024-02"}, resp.Periods)
	suite.Equal("Profit and Loss", resp.Table.Title)
	suite.Equal("revenue", resp.Table.Rows[0].Key)
	suite.Equal("revenue:Sales", resp.Table.Rows[1].Key)
	suite.True(decimal.NewFromInt(-50).Equal(resp.OperatingProfit[1]))
}

func (suite *HandlerTestSuite) TestProfitAndLoss_MissingFrom() {
	w := suite.do(http.MethodGet, "/api/v1/organizations/1/reports/profit-and-loss?to=2024-02-29", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.reporting.AssertNotCalled(suite.T(), "ProfitAndLoss")
}

func (suite *HandlerTestSuite) TestProfitAndLoss_BadGranularity() {
	suite.reporting.On("ProfitAndLoss", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: unknown granularity %q", apperrors.ErrValidation, "week")).Once()

	w := suite.do(http.MethodGet, "/api/v1/organizations/1/reports/profit-and-loss?granularity=week&from=2024-01-01&to=2024-02-29", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal(apperrors.KindValidation, suite.decodeError(w).Code)
}

func (suite *HandlerTestSuite) TestCashFlow_Success() {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	report := &domain.CashFlow{
		Granularity:      domain.GranularityYear,
		From:             from,
		To:               to,
		Periods:          []string{"2024"},
		BeginningBalance: decimals(500),
		OperatingIncome:  decimals(1000),
		OperatingExpense: decimals(400),
		InvestingIncome:  decimals(0),
		InvestingExpense: decimals(100),
		FinancialIncome:  decimals(0),
		FinancialExpense: decimals(0),
		NetChange:        decimals(500),
		EndingBalance:    decimals(1000),
	}
	suite.reporting.On("CashFlow", mock.Anything, reportFor(2, "year", from, to)).Return(report, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/organizations/2/reports/cash-flow?granularity=year&from=2024-01-01&to=2024-12-31", nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.CashFlowResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Cash Flow", resp.Table.Title)
	suite.Len(resp.Table.Rows, 9)
	suite.True(decimal.NewFromInt(1000).Equal(resp.EndingBalance[0]))
}

func (suite *HandlerTestSuite) TestCashFlow_InvalidDate() {
	w := suite.do(http.MethodGet, "/api/v1/organizations/2/reports/cash-flow?from=2024-13-01&to=2024-12-31", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.reporting.AssertNotCalled(suite.T(), "CashFlow")
}
