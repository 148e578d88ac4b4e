package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/finacc/internal/core/domain"
)

// ReportSnapshot is the ledger data a report is computed from, read at one point in time.
type ReportSnapshot struct {
	Categories   []domain.Category
	Invoices     []domain.Invoice     // Invoice date within the requested range
	Transactions []domain.Transaction // Every transaction dated on or before the range end
}

// ReportingRepository defines operations for retrieving financial report data
type ReportingRepository interface {
	// LoadReportSnapshot reads categories, invoices and transactions for one organization
	// inside a single read-only transaction.
	LoadReportSnapshot(ctx context.Context, organizationID int64, from, to time.Time) (*ReportSnapshot, error)
}

// ReportCache stores computed reports keyed per organization.
type ReportCache interface {
	// Get loads a cached value into dest. It reports false on a miss.
	Get(ctx context.Context, organizationID int64, key string, dest any) (bool, error)

	// Set stores value under key for the organization's current ledger version.
	Set(ctx context.Context, organizationID int64, key string, value any) error

	// Invalidate discards every cached report of the organization.
	Invalidate(ctx context.Context, organizationID int64) error
}
