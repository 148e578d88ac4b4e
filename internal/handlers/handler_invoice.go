package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/finacc/internal/core/ports/services"
	"github.com/SscSPs/finacc/internal/dto"
	"github.com/SscSPs/finacc/internal/middleware"
	"github.com/SscSPs/finacc/internal/utils"
	"github.com/gin-gonic/gin"
)

// invoiceHandler handles HTTP requests related to invoices and their settlement.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
	posthogClient  *utils.PosthogClientWrapper
}

func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade, posthogClient *utils.PosthogClientWrapper) {
	h := &invoiceHandler{invoiceService: invoiceService, posthogClient: posthogClient}

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("", h.listInvoices)
		invoices.GET("/:invoice_id", h.getInvoice)
		invoices.POST("/:invoice_id/pay", h.payInvoice)
	}
}

// createInvoice godoc
// @Summary Register an invoice
// @Description Registers an invoice with nothing paid. Status defaults to "Не оплачен".
// @Tags invoices
// @Accept json
// @Produce json
// @Param organization_id path int true "Organization ID"
// @Param invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Account, category or counterparty not found"
// @Security BearerAuth
// @Router /organizations/{organization_id}/invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger, orgID, userID, ok := orgScope(c)
	if !ok {
		return
	}

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), orgID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create invoice")
		return
	}
	logger.Info("Invoice created", slog.Int64("invoice_id", invoice.InvoiceID))
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

// listInvoices godoc
// @Summary List invoices
// @Description Lists the organization's invoices, newest invoice date first
// @Tags invoices
// @Produce json
// @Param organization_id path int true "Organization ID"
// @Success 200 {array} dto.InvoiceResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger, orgID, _, ok := orgScope(c)
	if !ok {
		return
	}

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), orgID)
	if err != nil {
		respondError(c, logger, err, "Failed to list invoices")
		return
	}
	c.JSON(http.StatusOK, dto.ToListInvoiceResponse(invoices))
}

// getInvoice godoc
// @Summary Get an invoice
// @Tags invoices
// @Produce json
// @Param organization_id path int true "Organization ID"
// @Param invoice_id path int true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} dto.ErrorResponse "Invoice not found"
// @Security BearerAuth
// @Router /organizations/{organization_id}/invoices/{invoice_id} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	logger, orgID, _, ok := orgScope(c)
	if !ok {
		return
	}
	invoiceID, ok := pathID(c, "invoice_id")
	if !ok {
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), orgID, invoiceID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// payInvoice godoc
// @Summary Pay an invoice
// @Description Posts a settlement transaction from the given account and advances the invoice status.
// @Description Expense payments must be covered by the account balance.
// @Tags invoices
// @Accept json
// @Produce json
// @Param organization_id path int true "Organization ID"
// @Param invoice_id path int true "Invoice ID"
// @Param payment body dto.PayInvoiceRequest true "Payment details"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid amount or amount exceeds what remains"
// @Failure 404 {object} dto.ErrorResponse "Invoice, account, category or counterparty not found"
// @Failure 409 {object} dto.ErrorResponse "Invoice was paid concurrently, retry"
// @Failure 422 {object} dto.ErrorResponse "Insufficient funds"
// @Security BearerAuth
// @Router /organizations/{organization_id}/invoices/{invoice_id}/pay [post]
func (h *invoiceHandler) payInvoice(c *gin.Context) {
	logger, orgID, userID, ok := orgScope(c)
	if !ok {
		return
	}
	invoiceID, ok := pathID(c, "invoice_id")
	if !ok {
		return
	}

	var req dto.PayInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	logger = logger.With(slog.Int64("invoice_id", invoiceID), slog.Int64("account_id", req.AccountID))
	logger.Info("Received request to pay invoice", slog.String("amount", req.Amount.String()))

	invoice, err := h.invoiceService.PayInvoice(c.Request.Context(), orgID, invoiceID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to pay invoice")
		return
	}

	middleware.PosthogEvent(c, h.posthogClient, "invoice_paid", map[string]any{
		"organization_id": orgID,
		"invoice_id":      invoiceID,
		"invoice_type":    string(invoice.InvoiceType),
		"amount":          req.Amount.String(),
		"status":          string(invoice.Status),
	})

	logger.Info("Invoice paid", slog.String("status", string(invoice.Status)))
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}
