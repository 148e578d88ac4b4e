package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/finacc/internal/core/ports/services"
	"github.com/SscSPs/finacc/internal/dto"
	"github.com/gin-gonic/gin"
)

type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := &transactionHandler{transactionService: transactionService}

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
	}
}

// createTransaction godoc
// @Summary Record a transaction
// @Description Records an organic income or expense. Invoice settlements are created by paying an invoice.
// @Tags transactions
// @Accept json
// @Produce json
// @Param organization_id path int true "Organization ID"
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Account or category not found"
// @Security BearerAuth
// @Router /organizations/{organization_id}/transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger, orgID, userID, ok := orgScope(c)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), orgID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create transaction")
		return
	}
	logger.Info("Transaction created", slog.Int64("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists the organization's transactions newest first, one page at a time
// @Tags transactions
// @Produce json
// @Param organization_id path int true "Organization ID"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Security BearerAuth
// @Router /organizations/{organization_id}/transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger, orgID, _, ok := orgScope(c)
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	resp, err := h.transactionService.ListTransactions(c.Request.Context(), orgID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, resp)
}
