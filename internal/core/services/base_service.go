package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/finacc/internal/apperrors"
	portsrepo "github.com/SscSPs/finacc/internal/core/ports/repositories"
	"github.com/SscSPs/finacc/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	// ReportCache is invalidated whenever the ledger of an organization changes. Optional.
	ReportCache portsrepo.ReportCache
	// Organizations is used to reject requests for unknown tenants. Optional.
	Organizations portsrepo.OrganizationReader
}

// BaseOption configures the shared dependencies of a service.
type BaseOption func(*BaseService)

// WithReportCache attaches the report cache to invalidate on ledger writes.
func WithReportCache(cache portsrepo.ReportCache) BaseOption {
	return func(s *BaseService) {
		s.ReportCache = cache
	}
}

// WithOrganizationReader enables organization existence checks.
func WithOrganizationReader(repo portsrepo.OrganizationReader) BaseOption {
	return func(s *BaseService) {
		s.Organizations = repo
	}
}

func (s *BaseService) apply(options []BaseOption) {
	for _, option := range options {
		option(s)
	}
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// EnsureOrganization returns apperrors.ErrNotFound when the organization does not exist.
// It is a no-op when no organization reader was configured.
func (s *BaseService) EnsureOrganization(ctx context.Context, organizationID int64) error {
	if s.Organizations == nil {
		return nil
	}
	if _, err := s.Organizations.FindOrganizationByID(ctx, organizationID); err != nil {
		return fmt.Errorf("%w: organization %d", unwrapNotFound(err), organizationID)
	}
	return nil
}

// InvalidateReports drops cached reports of the organization.
// Failures are logged only; a stale cache entry expires with its TTL.
func (s *BaseService) InvalidateReports(ctx context.Context, organizationID int64) {
	if s.ReportCache == nil {
		return
	}
	if err := s.ReportCache.Invalidate(ctx, organizationID); err != nil {
		s.LogError(ctx, err, "Failed to invalidate report cache", slog.Int64("organization_id", organizationID))
	}
}

// unwrapNotFound keeps ErrNotFound as the reported kind and passes other errors through.
func unwrapNotFound(err error) error {
	if apperrors.Kind(err) == apperrors.KindNotFound {
		return apperrors.ErrNotFound
	}
	return err
}
