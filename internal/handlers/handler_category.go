package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/finacc/internal/core/ports/services"
	"github.com/SscSPs/finacc/internal/dto"
	"github.com/gin-gonic/gin"
)

type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

func registerCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvcFacade) {
	h := &categoryHandler{categoryService: categoryService}

	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
		categories.GET("/tree", h.getCategoryTree)
	}
}

// createCategory godoc
// @Summary Create a category
// @Description Creates a category owned by the organization. The parent, if any, must be visible to it.
// @Tags categories
// @Accept json
// @Produce json
// @Param organization_id path int true "Organization ID"
// @Param category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Organization or parent not found"
// @Security BearerAuth
// @Router /organizations/{organization_id}/categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	logger, orgID, userID, ok := orgScope(c)
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), orgID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create category")
		return
	}
	logger.Info("Category created", slog.Int64("category_id", category.CategoryID))
	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// listCategories godoc
// @Summary List categories
// @Description Lists the organization's own and shared categories, by type then name
// @Tags categories
// @Produce json
// @Param organization_id path int true "Organization ID"
// @Success 200 {array} dto.CategoryResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	logger, orgID, _, ok := orgScope(c)
	if !ok {
		return
	}

	categories, err := h.categoryService.ListCategories(c.Request.Context(), orgID)
	if err != nil {
		respondError(c, logger, err, "Failed to list categories")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCategoryResponse(categories))
}

// getCategoryTree godoc
// @Summary Get the category tree
// @Tags categories
// @Produce json
// @Param organization_id path int true "Organization ID"
// @Success 200 {array} dto.CategoryTreeNode
// @Security BearerAuth
// @Router /organizations/{organization_id}/categories/tree [get]
func (h *categoryHandler) getCategoryTree(c *gin.Context) {
	logger, orgID, _, ok := orgScope(c)
	if !ok {
		return
	}

	tree, err := h.categoryService.GetCategoryTree(c.Request.Context(), orgID)
	if err != nil {
		respondError(c, logger, err, "Failed to build category tree")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryTreeResponse(tree))
}
