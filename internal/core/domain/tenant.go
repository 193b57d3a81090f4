package domain

import "github.com/AhmedMohamed005/erp-sys/internal/apperrors"

// TenantScope identifies the organization a request operates on, plus whether
// the caller is exempt from tenant isolation (super admin). It is threaded
// explicitly through every ledger operation; there is no ambient tenant state.
type TenantScope struct {
	OrganizationID string
	Exempt         bool
}

// NewTenantScope builds the scope for a regular tenant-bound caller.
func NewTenantScope(organizationID string) TenantScope {
	return TenantScope{OrganizationID: organizationID}
}

// NewExemptScope builds the scope for an isolation-exempt caller. The
// organization id may be empty until the caller names one explicitly.
func NewExemptScope(organizationID string) TenantScope {
	return TenantScope{OrganizationID: organizationID, Exempt: true}
}

// ForOrganization returns a copy of the scope retargeted at the given
// organization. Only exempt callers may retarget; for everyone else the
// original scope is returned unchanged so a caller-supplied organization id
// can never widen access.
func (s TenantScope) ForOrganization(organizationID string) TenantScope {
	if !s.Exempt || organizationID == "" {
		return s
	}
	return TenantScope{OrganizationID: organizationID, Exempt: true}
}

// OrgID resolves the organization id every tenant-scoped operation must use.
// It fails with ErrNoTenantAssigned when the caller has no organization: an
// exempt caller must still name one explicitly, a tenant caller must have one
// assigned.
func (s TenantScope) OrgID() (string, error) {
	if s.OrganizationID == "" {
		return "", apperrors.ErrNoTenantAssigned
	}
	return s.OrganizationID, nil
}
