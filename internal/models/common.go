package models

import "time"

// AuditFields holds common audit columns embedded in every persisted model.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastUpdatedBy string    `db:"last_updated_by"`
}

// SoftDeleteFields holds the soft delete columns for models that support it.
// Both are NULL while the row is live.
type SoftDeleteFields struct {
	DeletedAt *time.Time `db:"deleted_at"`
	DeletedBy *string    `db:"deleted_by"`
}
