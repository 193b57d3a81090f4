package dto

import (
	"time"

	"github.com/AhmedMohamed005/erp-sys/internal/core/domain"
)

// CreateOrganizationRequest defines the data needed to onboard a tenant.
type CreateOrganizationRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

// OrganizationResponse defines the data returned for an organization.
type OrganizationResponse struct {
	OrganizationID string    `json:"organizationID"`
	Name           string    `json:"name"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ListOrganizationsResponse wraps the list of organizations.
type ListOrganizationsResponse struct {
	Organizations []OrganizationResponse `json:"organizations"`
}

// ToOrganizationResponse converts a domain.Organization to its response DTO.
func ToOrganizationResponse(org *domain.Organization) OrganizationResponse {
	return OrganizationResponse{
		OrganizationID: org.OrganizationID,
		Name:           org.Name,
		IsActive:       org.IsActive,
		CreatedAt:      org.CreatedAt,
	}
}

// ToListOrganizationsResponse converts a slice of organizations to the list DTO.
func ToListOrganizationsResponse(orgs []domain.Organization) ListOrganizationsResponse {
	res := make([]OrganizationResponse, len(orgs))
	for i, org := range orgs {
		res[i] = ToOrganizationResponse(&org)
	}
	return ListOrganizationsResponse{Organizations: res}
}
