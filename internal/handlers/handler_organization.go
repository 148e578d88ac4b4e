package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/finacc/internal/core/ports/services"
	"github.com/SscSPs/finacc/internal/dto"
	"github.com/SscSPs/finacc/internal/middleware"
	"github.com/gin-gonic/gin"
)

// organizationHandler handles HTTP requests related to organizations.
type organizationHandler struct {
	organizationService portssvc.OrganizationSvcFacade
}

func newOrganizationHandler(svc portssvc.OrganizationSvcFacade) *organizationHandler {
	return &organizationHandler{organizationService: svc}
}

// registerOrganizationRoutes registers the top-level organization routes and returns
// the group every organization-scoped route hangs off.
func registerOrganizationRoutes(rg *gin.RouterGroup, organizationService portssvc.OrganizationSvcFacade) *gin.RouterGroup {
	h := newOrganizationHandler(organizationService)

	organizations := rg.Group("/organizations")
	{
		organizations.POST("", h.createOrganization)
		organizations.GET("", h.listOrganizations)
		organizations.GET("/:organization_id", h.getOrganization)
		organizations.PUT("/:organization_id", h.updateOrganization)
	}
	return organizations.Group("/:organization_id")
}

// createOrganization godoc
// @Summary Create a new organization
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body dto.CreateOrganizationRequest true "Organization details"
// @Success 201 {object} dto.OrganizationResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to create organization"
// @Security BearerAuth
// @Router /organizations [post]
func (h *organizationHandler) createOrganization(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	var req dto.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	org, err := h.organizationService.CreateOrganization(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create organization")
		return
	}

	logger.Info("Organization created", slog.Int64("organization_id", org.OrganizationID))
	c.JSON(http.StatusCreated, dto.ToOrganizationResponse(org))
}

// listOrganizations godoc
// @Summary List organizations
// @Tags organizations
// @Produce json
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {array} dto.OrganizationResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /organizations [get]
func (h *organizationHandler) listOrganizations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := currentUser(c, logger); !ok {
		return
	}

	var params dto.ListOrganizationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	orgs, err := h.organizationService.ListOrganizations(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, logger, err, "Failed to list organizations")
		return
	}
	c.JSON(http.StatusOK, dto.ToListOrganizationResponse(orgs))
}

// getOrganization godoc
// @Summary Get an organization
// @Tags organizations
// @Produce json
// @Param organization_id path int true "Organization ID"
// @Success 200 {object} dto.OrganizationResponse
// @Failure 404 {object} dto.ErrorResponse "Organization not found"
// @Security BearerAuth
// @Router /organizations/{organization_id} [get]
func (h *organizationHandler) getOrganization(c *gin.Context) {
	logger, orgID, _, ok := orgScope(c)
	if !ok {
		return
	}

	org, err := h.organizationService.GetOrganizationByID(c.Request.Context(), orgID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve organization")
		return
	}
	c.JSON(http.StatusOK, dto.ToOrganizationResponse(org))
}

// updateOrganization godoc
// @Summary Update an organization
// @Description Only the fields present in the body are changed
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization_id path int true "Organization ID"
// @Param organization body dto.UpdateOrganizationRequest true "Fields to update"
// @Success 200 {object} dto.OrganizationResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Organization not found"
// @Security BearerAuth
// @Router /organizations/{organization_id} [put]
func (h *organizationHandler) updateOrganization(c *gin.Context) {
	logger, orgID, userID, ok := orgScope(c)
	if !ok {
		return
	}

	var req dto.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	org, err := h.organizationService.UpdateOrganization(c.Request.Context(), orgID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update organization")
		return
	}
	logger.Info("Organization updated")
	c.JSON(http.StatusOK, dto.ToOrganizationResponse(org))
}
