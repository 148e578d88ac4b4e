package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/finacc/internal/core/domain"
	portssvc "github.com/SscSPs/finacc/internal/core/ports/services"
	"github.com/SscSPs/finacc/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	// Routes for reports are nested under a specific organization
	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/profit-and-loss", h.getProfitAndLoss)
		reportingGroup.GET("/cash-flow", h.getCashFlow)
	}
}

// reportRequest binds and parses the shared report query.
func reportRequest(c *gin.Context, logger *slog.Logger, orgID int64) (domain.ReportRequest, bool) {
	var q dto.ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err)
		return domain.ReportRequest{}, false
	}
	from, err := dto.ParseDate(q.From)
	if err != nil {
		respondError(c, logger, err, "Invalid from date")
		return domain.ReportRequest{}, false
	}
	to, err := dto.ParseDate(q.To)
	if err != nil {
		respondError(c, logger, err, "Invalid to date")
		return domain.ReportRequest{}, false
	}
	return domain.ReportRequest{
		OrganizationID: orgID,
		Granularity:    domain.Granularity(q.Granularity),
		From:           from,
		To:             to,
	}, true
}

// getProfitAndLoss godoc
// @Summary Generate profit and loss report
// @Description Accrual-basis P&L per period from invoices: revenue, revenue by category, COGS, gross profit,
// @Description operating expenses, operating profit and margins. Invoice settlements never count twice.
// @Tags reports
// @Produce json
// @Param organization_id path int true "Organization ID"
// @Param granularity query string false "month, quarter, half or year" default(month)
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.ProfitAndLossResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Organization not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /organizations/{organization_id}/reports/profit-and-loss [get]
func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	logger, orgID, _, ok := orgScope(c)
	if !ok {
		return
	}
	req, ok := reportRequest(c, logger, orgID)
	if !ok {
		return
	}

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to generate profit and loss report")
		return
	}

	logger.Info("Profit and loss report generated", slog.Int("period_count", len(report.Periods)))
	c.JSON(http.StatusOK, dto.ToProfitAndLossResponse(report))
}

// getCashFlow godoc
// @Summary Generate cash flow report
// @Description Cash-basis movements per period from organic transactions, grouped into
// @Description operating, investing and financing activity, with beginning and ending balances.
// @Tags reports
// @Produce json
// @Param organization_id path int true "Organization ID"
// @Param granularity query string false "month, quarter, half or year" default(month)
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.CashFlowResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Organization not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /organizations/{organization_id}/reports/cash-flow [get]
func (h *reportingHandler) getCashFlow(c *gin.Context) {
	logger, orgID, _, ok := orgScope(c)
	if !ok {
		return
	}
	req, ok := reportRequest(c, logger, orgID)
	if !ok {
		return
	}

	report, err := h.reportingService.CashFlow(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to generate cash flow report")
		return
	}

	logger.Info("Cash flow report generated", slog.Int("period_count", len(report.Periods)))
	c.JSON(http.StatusOK, dto.ToCashFlowResponse(report))
}
