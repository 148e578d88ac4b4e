package services

import (
	"context"

	"github.com/SscSPs/finacc/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// ProfitAndLoss generates an accrual-basis profit and loss report
	ProfitAndLoss(ctx context.Context, req domain.ReportRequest) (*domain.ProfitAndLoss, error)

	// CashFlow generates a cash-basis cash flow report
	CashFlow(ctx context.Context, req domain.ReportRequest) (*domain.CashFlow, error)
}
