package models

// Category is a row of the categories table.
// A NULL organization_id marks a category shared by every organization.
type Category struct {
	CategoryID     int64  `db:"category_id"`
	OrganizationID *int64 `db:"organization_id"`
	ParentID       *int64 `db:"parent_id"`
	Name           string `db:"name"`
	CategoryType   string `db:"category_type"`
	ActivityType   string `db:"activity_type"`
	AuditFields
}
