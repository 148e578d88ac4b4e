package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/finacc/internal/core/domain"
	portsrepo "github.com/SscSPs/finacc/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finacc/internal/core/ports/services"
	"github.com/SscSPs/finacc/internal/utils/accounting"
)

const (
	profitAndLossCacheKind = "pnl"
	cashFlowCacheKind      = "cashflow"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	repo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service
func NewReportingService(repo portsrepo.ReportingRepository, options ...BaseOption) portssvc.ReportingService {
	svc := &reportingService{repo: repo}
	svc.apply(options)
	return svc
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// ProfitAndLoss recognizes revenue and expense on the invoice date and adds
// organic transactions. Settlement transactions are never counted.
func (s *reportingService) ProfitAndLoss(ctx context.Context, req domain.ReportRequest) (*domain.ProfitAndLoss, error) {
	req, err := s.normalize(ctx, req)
	if err != nil {
		return nil, err
	}

	key := cacheKey(profitAndLossCacheKind, req)
	var cached domain.ProfitAndLoss
	if s.cacheGet(ctx, req.OrganizationID, key, &cached) {
		return &cached, nil
	}

	snapshot, err := s.snapshot(ctx, req)
	if err != nil {
		return nil, err
	}
	report := accounting.BuildProfitAndLoss(req, snapshot.Invoices, snapshot.Transactions, categoryIndex(snapshot.Categories))

	s.cacheSet(ctx, req.OrganizationID, key, report)
	s.LogDebug(ctx, "Profit and loss generated",
		slog.Int64("organization_id", req.OrganizationID),
		slog.Int("periods", len(report.Periods)))
	return &report, nil
}

// CashFlow follows actual money movement by organic transactions only.
func (s *reportingService) CashFlow(ctx context.Context, req domain.ReportRequest) (*domain.CashFlow, error) {
	req, err := s.normalize(ctx, req)
	if err != nil {
		return nil, err
	}

	key := cacheKey(cashFlowCacheKind, req)
	var cached domain.CashFlow
	if s.cacheGet(ctx, req.OrganizationID, key, &cached) {
		return &cached, nil
	}

	snapshot, err := s.snapshot(ctx, req)
	if err != nil {
		return nil, err
	}
	report := accounting.BuildCashFlow(req, snapshot.Transactions, categoryIndex(snapshot.Categories))

	s.cacheSet(ctx, req.OrganizationID, key, report)
	s.LogDebug(ctx, "Cash flow generated",
		slog.Int64("organization_id", req.OrganizationID),
		slog.Int("periods", len(report.Periods)))
	return &report, nil
}

func (s *reportingService) normalize(ctx context.Context, req domain.ReportRequest) (domain.ReportRequest, error) {
	granularity, err := domain.ParseGranularity(string(req.Granularity))
	if err != nil {
		return req, err
	}
	if err := s.EnsureOrganization(ctx, req.OrganizationID); err != nil {
		return req, err
	}
	req.Granularity = granularity
	req.From = domain.DateOnly(req.From)
	req.To = domain.DateOnly(req.To)
	return req, nil
}

// snapshot loads report inputs. A reversed range has no periods, so nothing is read.
func (s *reportingService) snapshot(ctx context.Context, req domain.ReportRequest) (*portsrepo.ReportSnapshot, error) {
	if req.To.Before(req.From) {
		return &portsrepo.ReportSnapshot{}, nil
	}
	snapshot, err := s.repo.LoadReportSnapshot(ctx, req.OrganizationID, req.From, req.To)
	if err != nil {
		s.LogError(ctx, err, "Failed to load report data", slog.Int64("organization_id", req.OrganizationID))
		return nil, fmt.Errorf("failed to load report data: %w", err)
	}
	return snapshot, nil
}

func (s *reportingService) cacheGet(ctx context.Context, organizationID int64, key string, dest any) bool {
	if s.ReportCache == nil {
		return false
	}
	hit, err := s.ReportCache.Get(ctx, organizationID, key, dest)
	if err != nil {
		s.LogError(ctx, err, "Report cache read failed", slog.String("key", key))
		return false
	}
	return hit
}

func (s *reportingService) cacheSet(ctx context.Context, organizationID int64, key string, value any) {
	if s.ReportCache == nil {
		return
	}
	if err := s.ReportCache.Set(ctx, organizationID, key, value); err != nil {
		s.LogError(ctx, err, "Report cache write failed", slog.String("key", key))
	}
}

func cacheKey(kind string, req domain.ReportRequest) string {
	return fmt.Sprintf("%s:%s:%s:%s", kind, req.Granularity, req.From.Format("2006-01-02"), req.To.Format("2006-01-02"))
}

func categoryIndex(categories []domain.Category) map[int64]domain.Category {
	index := make(map[int64]domain.Category, len(categories))
	for _, c := range categories {
		index[c.CategoryID] = c
	}
	return index
}
