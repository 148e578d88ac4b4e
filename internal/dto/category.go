package dto

import (
	"github.com/SscSPs/finacc/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create an organization category.
type CreateCategoryRequest struct {
	Name         string          `json:"name" binding:"required,max=255"`
	CategoryType domain.FlowType `json:"categoryType" binding:"required,oneof=INCOME EXPENSE"`
	ActivityType string          `json:"activityType" binding:"max=64"` // OPERATING, COGS, ADMINISTRATIVE, ...
	ParentID     *int64          `json:"parentID"`                      // Optional
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID     int64           `json:"categoryID"`
	OrganizationID *int64          `json:"organizationID"` // null for shared categories
	ParentID       *int64          `json:"parentID"`
	Name           string          `json:"name"`
	CategoryType   domain.FlowType `json:"categoryType"`
	ActivityType   string          `json:"activityType"`
	Shared         bool            `json:"shared"`
}

// CategoryTreeNode is a category with its nested children.
type CategoryTreeNode struct {
	CategoryResponse
	Children []CategoryTreeNode `json:"children"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:     c.CategoryID,
		OrganizationID: c.OrganizationID,
		ParentID:       c.ParentID,
		Name:           c.Name,
		CategoryType:   c.CategoryType,
		ActivityType:   c.ActivityType,
		Shared:         c.IsShared(),
	}
}

// ToListCategoryResponse converts a slice of domain.Category to DTOs
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i := range categories {
		res[i] = ToCategoryResponse(&categories[i])
	}
	return res
}

// ToCategoryTreeResponse nests an acyclic category arena for display.
func ToCategoryTreeResponse(tree domain.CategoryTree) []CategoryTreeNode {
	var build func(i int) CategoryTreeNode
	build = func(i int) CategoryTreeNode {
		node := tree.Nodes[i]
		out := CategoryTreeNode{
			CategoryResponse: ToCategoryResponse(&node.Category),
			Children:         make([]CategoryTreeNode, 0, len(node.Children)),
		}
		for _, child := range node.Children {
			out.Children = append(out.Children, build(child))
		}
		return out
	}

	roots := make([]CategoryTreeNode, 0, len(tree.Roots))
	for _, r := range tree.Roots {
		roots = append(roots, build(r))
	}
	return roots
}
