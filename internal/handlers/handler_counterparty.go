package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/finacc/internal/core/ports/services"
	"github.com/SscSPs/finacc/internal/dto"
	"github.com/gin-gonic/gin"
)

type counterpartyHandler struct {
	counterpartyService portssvc.CounterpartySvcFacade
}

func registerCounterpartyRoutes(rg *gin.RouterGroup, counterpartyService portssvc.CounterpartySvcFacade) {
	h := &counterpartyHandler{counterpartyService: counterpartyService}

	counterparties := rg.Group("/counterparties")
	{
		counterparties.POST("", h.createCounterparty)
		counterparties.GET("", h.listCounterparties)
		counterparties.GET("/:counterparty_id", h.getCounterparty)
		counterparties.PATCH("/:counterparty_id", h.updateCounterparty)
	}
}

// createCounterparty godoc
// @Summary Create a counterparty
// @Tags counterparties
// @Accept json
// @Produce json
// @Param organization_id path int true "Organization ID"
// @Param counterparty body dto.CreateCounterpartyRequest true "Counterparty details"
// @Success 201 {object} dto.CounterpartyResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /organizations/{organization_id}/counterparties [post]
func (h *counterpartyHandler) createCounterparty(c *gin.Context) {
	logger, orgID, userID, ok := orgScope(c)
	if !ok {
		return
	}

	var req dto.CreateCounterpartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	cp, err := h.counterpartyService.CreateCounterparty(c.Request.Context(), orgID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create counterparty")
		return
	}
	logger.Info("Counterparty created", slog.Int64("counterparty_id", cp.CounterpartyID))
	c.JSON(http.StatusCreated, dto.ToCounterpartyResponse(cp))
}

// listCounterparties godoc
// @Summary List counterparties
// @Tags counterparties
// @Produce json
// @Param organization_id path int true "Organization ID"
// @Success 200 {array} dto.CounterpartyResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/counterparties [get]
func (h *counterpartyHandler) listCounterparties(c *gin.Context) {
	logger, orgID, _, ok := orgScope(c)
	if !ok {
		return
	}

	cps, err := h.counterpartyService.ListCounterparties(c.Request.Context(), orgID)
	if err != nil {
		respondError(c, logger, err, "Failed to list counterparties")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCounterpartyResponse(cps))
}

// getCounterparty godoc
// @Summary Get a counterparty
// @Tags counterparties
// @Produce json
// @Param organization_id path int true "Organization ID"
// @Param counterparty_id path int true "Counterparty ID"
// @Success 200 {object} dto.CounterpartyResponse
// @Failure 404 {object} dto.ErrorResponse "Counterparty not found"
// @Security BearerAuth
// @Router /organizations/{organization_id}/counterparties/{counterparty_id} [get]
func (h *counterpartyHandler) getCounterparty(c *gin.Context) {
	logger, orgID, _, ok := orgScope(c)
	if !ok {
		return
	}
	counterpartyID, ok := pathID(c, "counterparty_id")
	if !ok {
		return
	}

	cp, err := h.counterpartyService.GetCounterpartyByID(c.Request.Context(), orgID, counterpartyID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve counterparty")
		return
	}
	c.JSON(http.StatusOK, dto.ToCounterpartyResponse(cp))
}

// updateCounterparty godoc
// @Summary Update a counterparty
// @Description Only the fields present in the body are changed
// @Tags counterparties
// @Accept json
// @Produce json
// @Param organization_id path int true "Organization ID"
// @Param counterparty_id path int true "Counterparty ID"
// @Param counterparty body dto.UpdateCounterpartyRequest true "Fields to update"
// @Success 200 {object} dto.CounterpartyResponse
// @Failure 404 {object} dto.ErrorResponse "Counterparty not found"
// @Security BearerAuth
// @Router /organizations/{organization_id}/counterparties/{counterparty_id} [patch]
func (h *counterpartyHandler) updateCounterparty(c *gin.Context) {
	logger, orgID, userID, ok := orgScope(c)
	if !ok {
		return
	}
	counterpartyID, ok := pathID(c, "counterparty_id")
	if !ok {
		return
	}

	var req dto.UpdateCounterpartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	cp, err := h.counterpartyService.UpdateCounterparty(c.Request.Context(), orgID, counterpartyID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update counterparty")
		return
	}
	c.JSON(http.StatusOK, dto.ToCounterpartyResponse(cp))
}
