package services

import (
	"context"

	"github.com/AhmedMohamed005/erp-sys/internal/core/domain"
	"github.com/AhmedMohamed005/erp-sys/internal/dto"
)

// OrganizationReaderSvc defines read operations for organization data
type OrganizationReaderSvc interface {
	// GetOrganizationByID retrieves an organization visible to the caller's scope.
	GetOrganizationByID(ctx context.Context, scope domain.TenantScope, organizationID string) (*domain.Organization, error)

	// ListOrganizations lists organizations. Non-exempt callers only see their own.
	ListOrganizations(ctx context.Context, scope domain.TenantScope, limit int, offset int) ([]domain.Organization, error)
}

// OrganizationWriterSvc defines write operations for organization data
type OrganizationWriterSvc interface {
	// CreateOrganization persists a new organization. Exempt callers only.
	CreateOrganization(ctx context.Context, scope domain.TenantScope, req dto.CreateOrganizationRequest, userID string) (*domain.Organization, error)

	// DeactivateOrganization marks an organization inactive, recording who
	// deactivated it. Exempt callers only; organizations are never deleted.
	DeactivateOrganization(ctx context.Context, scope domain.TenantScope, organizationID string, userID string) error
}

// OrganizationSvcFacade combines all organization-related service interfaces
type OrganizationSvcFacade interface {
	OrganizationReaderSvc
	OrganizationWriterSvc
}
