package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/finacc/internal/core/domain"
	portssvc "github.com/SscSPs/finacc/internal/core/ports/services"
	"github.com/SscSPs/finacc/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService     portssvc.AccountSvcFacade
	transactionService portssvc.TransactionSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade, ts portssvc.TransactionSvcFacade) *accountHandler {
	return &accountHandler{
		accountService:     as,
		transactionService: ts,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade, transactionService portssvc.TransactionSvcFacade) {
	h := newAccountHandler(accountService, transactionService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:account_id", h.getAccount)
		accounts.PUT("/:account_id", h.updateAccount)
		accounts.DELETE("/:account_id", h.deactivateAccount)
		accounts.GET("/:account_id/balance", h.getAccountBalance)
		accounts.GET("/:account_id/transactions", h.listTransactionsByAccount)
	}
}

// createAccount godoc
// @Summary Create a new account
// @Description Creates a money account in the organization. Currency defaults to RUB.
// @Tags accounts
// @Accept json
// @Produce json
// @Param organization_id path int true "Organization ID"
// @Param account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Organization not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to create account"
// @Security BearerAuth
// @Router /organizations/{organization_id}/accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger, orgID, userID, ok := orgScope(c)
	if !ok {
		return
	}

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	logger.Info("Received request to create account", slog.String("account_name", req.Name))

	account, err := h.accountService.CreateAccount(c.Request.Context(), orgID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create account")
		return
	}

	logger.Info("Account created successfully", slog.Int64("account_id", account.AccountID))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(&domain.AccountWithBalance{Account: *account, Balance: decimal.Zero}))
}

// listAccounts godoc
// @Summary List accounts
// @Description Lists every account of the organization with its derived balance
// @Tags accounts
// @Produce json
// @Param organization_id path int true "Organization ID"
// @Success 200 {array} dto.AccountResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Organization not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to list accounts"
// @Security BearerAuth
// @Router /organizations/{organization_id}/accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger, orgID, _, ok := orgScope(c)
	if !ok {
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), orgID)
	if err != nil {
		respondError(c, logger, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}

// getAccount godoc
// @Summary Get an account by ID
// @Description Retrieves an account together with its balance
// @Tags accounts
// @Produce json
// @Param organization_id path int true "Organization ID"
// @Param account_id path int true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve account"
// @Security BearerAuth
// @Router /organizations/{organization_id}/accounts/{account_id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger, orgID, _, ok := orgScope(c)
	if !ok {
		return
	}
	accountID, ok := pathID(c, "account_id")
	if !ok {
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), orgID, accountID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// updateAccount godoc
// @Summary Update an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param organization_id path int true "Organization ID"
// @Param account_id path int true "Account ID"
// @Param account body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /organizations/{organization_id}/accounts/{account_id} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	logger, orgID, userID, ok := orgScope(c)
	if !ok {
		return
	}
	accountID, ok := pathID(c, "account_id")
	if !ok {
		return
	}

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), orgID, accountID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update account")
		return
	}
	logger.Info("Account updated", slog.Int64("account_id", accountID))
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// deactivateAccount godoc
// @Summary Deactivate an account
// @Description Marks the account inactive. Its transactions are kept.
// @Tags accounts
// @Param organization_id path int true "Organization ID"
// @Param account_id path int true "Account ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Account already inactive"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /organizations/{organization_id}/accounts/{account_id} [delete]
func (h *accountHandler) deactivateAccount(c *gin.Context) {
	logger, orgID, userID, ok := orgScope(c)
	if !ok {
		return
	}
	accountID, ok := pathID(c, "account_id")
	if !ok {
		return
	}

	if err := h.accountService.DeactivateAccount(c.Request.Context(), orgID, accountID, userID); err != nil {
		respondError(c, logger, err, "Failed to deactivate account")
		return
	}
	logger.Info("Account deactivated", slog.Int64("account_id", accountID))
	c.Status(http.StatusNoContent)
}

// getAccountBalance godoc
// @Summary Get an account balance
// @Description Income minus expense over every transaction of the account, settlements included
// @Tags accounts
// @Produce json
// @Param organization_id path int true "Organization ID"
// @Param account_id path int true "Account ID"
// @Success 200 {object} dto.AccountBalanceResponse
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /organizations/{organization_id}/accounts/{account_id}/balance [get]
func (h *accountHandler) getAccountBalance(c *gin.Context) {
	logger, orgID, _, ok := orgScope(c)
	if !ok {
		return
	}
	accountID, ok := pathID(c, "account_id")
	if !ok {
		return
	}

	balance, err := h.accountService.ComputeBalance(c.Request.Context(), orgID, accountID)
	if err != nil {
		respondError(c, logger, err, "Failed to compute account balance")
		return
	}
	c.JSON(http.StatusOK, dto.AccountBalanceResponse{AccountID: accountID, Balance: balance})
}

// listTransactionsByAccount godoc
// @Summary List transactions of an account
// @Tags accounts
// @Produce json
// @Param organization_id path int true "Organization ID"
// @Param account_id path int true "Account ID"
// @Success 200 {array} dto.TransactionResponse
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /organizations/{organization_id}/accounts/{account_id}/transactions [get]
func (h *accountHandler) listTransactionsByAccount(c *gin.Context) {
	logger, orgID, _, ok := orgScope(c)
	if !ok {
		return
	}
	accountID, ok := pathID(c, "account_id")
	if !ok {
		return
	}

	txns, err := h.transactionService.ListTransactionsByAccount(c.Request.Context(), orgID, accountID)
	if err != nil {
		respondError(c, logger, err, "Failed to list account transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}
