package dto

import (
	"github.com/SscSPs/finacc/internal/core/domain"
)

// ReportQuery defines the query parameters shared by every report.
type ReportQuery struct {
	Granularity string `form:"granularity"` // month (default), quarter, half, year
	From        string `form:"from" binding:"required,datetime=2006-01-02"`
	To          string `form:"to" binding:"required,datetime=2006-01-02"`
}

// ProfitAndLossResponse is the P&L as series plus a ready-to-render table.
type ProfitAndLossResponse struct {
	*domain.ProfitAndLoss
	Table domain.ReportTable `json:"table"`
}

// CashFlowResponse is the Cash Flow as series plus a ready-to-render table.
type CashFlowResponse struct {
	*domain.CashFlow
	Table domain.ReportTable `json:"table"`
}

// ToProfitAndLossResponse wraps a P&L report for the API.
func ToProfitAndLossResponse(r *domain.ProfitAndLoss) ProfitAndLossResponse {
	return ProfitAndLossResponse{ProfitAndLoss: r, Table: r.Table()}
}

// ToCashFlowResponse wraps a Cash Flow report for the API.
func ToCashFlowResponse(r *domain.CashFlow) CashFlowResponse {
	return CashFlowResponse{CashFlow: r, Table: r.Table()}
}
