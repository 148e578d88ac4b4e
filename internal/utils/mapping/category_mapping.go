package mapping

import (
	"github.com/SscSPs/finacc/internal/core/domain"
	"github.com/SscSPs/finacc/internal/models"
)

// ToModelCategory converts a domain Category to a model Category
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID:     d.CategoryID,
		OrganizationID: d.OrganizationID,
		ParentID:       d.ParentID,
		Name:           d.Name,
		CategoryType:   string(d.CategoryType),
		ActivityType:   d.ActivityType,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCategory converts a model Category to a domain Category
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:     m.CategoryID,
		OrganizationID: m.OrganizationID,
		ParentID:       m.ParentID,
		Name:           m.Name,
		CategoryType:   domain.NormalizeFlowType(m.CategoryType),
		ActivityType:   m.ActivityType,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCategorySlice converts a slice of model Categories to domain Categories
func ToDomainCategorySlice(ms []models.Category) []domain.Category {
	return toDomainSlice(ms, ToDomainCategory)
}
