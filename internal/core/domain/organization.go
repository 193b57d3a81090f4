package domain

// Organization is a tenant. Every ledger entity belongs to exactly one
// organization via its organization id, set once at creation.
type Organization struct {
	OrganizationID string `json:"organizationID"` // Primary key (UUID)
	Name           string `json:"name"`
	IsActive       bool   `json:"isActive"` // Soft deactivation; organizations are never deleted
	AuditFields
}
