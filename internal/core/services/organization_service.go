package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/AhmedMohamed005/erp-sys/internal/apperrors"
	"github.com/AhmedMohamed005/erp-sys/internal/core/domain"
	portsrepo "github.com/AhmedMohamed005/erp-sys/internal/core/ports/repositories"
	portssvc "github.com/AhmedMohamed005/erp-sys/internal/core/ports/services"
	"github.com/AhmedMohamed005/erp-sys/internal/dto"
	"github.com/google/uuid"
)

// organizationServiceImpl implements the OrganizationSvcFacade interface
type organizationServiceImpl struct {
	BaseService
	orgRepo portsrepo.OrganizationRepositoryFacade
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(repo portsrepo.OrganizationRepositoryFacade) portssvc.OrganizationSvcFacade {
	return &organizationServiceImpl{
		orgRepo: repo,
	}
}

// Ensure organizationServiceImpl implements the OrganizationSvcFacade interface
var _ portssvc.OrganizationSvcFacade = (*organizationServiceImpl)(nil)

func (s *organizationServiceImpl) CreateOrganization(ctx context.Context, scope domain.TenantScope, req dto.CreateOrganizationRequest, userID string) (*domain.Organization, error) {
	if !scope.Exempt {
		s.LogWarn(ctx, "Non-exempt caller attempted to create organization",
			slog.String("user_id", userID))
		return nil, apperrors.ErrForbidden
	}

	now := time.Now()
	org := domain.Organization{
		OrganizationID: uuid.NewString(),
		Name:           req.Name,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.orgRepo.SaveOrganization(ctx, org); err != nil {
		s.LogError(ctx, err, "Failed to save organization", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save organization: %w", err)
	}

	s.LogInfo(ctx, "Organization created",
		slog.String("organization_id", org.OrganizationID),
		slog.String("name", org.Name))
	return &org, nil
}

func (s *organizationServiceImpl) GetOrganizationByID(ctx context.Context, scope domain.TenantScope, organizationID string) (*domain.Organization, error) {
	// Non-exempt callers may only look at their own organization; anything
	// else answers not found rather than revealing existence.
	if !scope.Exempt && scope.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}

	org, err := s.orgRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find organization", slog.String("organization_id", organizationID))
		}
		return nil, err
	}
	return org, nil
}

func (s *organizationServiceImpl) DeactivateOrganization(ctx context.Context, scope domain.TenantScope, organizationID string, userID string) error {
	if !scope.Exempt {
		s.LogWarn(ctx, "Non-exempt caller attempted to deactivate organization",
			slog.String("user_id", userID),
			slog.String("organization_id", organizationID))
		return apperrors.ErrForbidden
	}

	org, err := s.orgRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find organization for deactivation", slog.String("organization_id", organizationID))
		}
		return err
	}

	org.IsActive = false
	org.LastUpdatedAt = time.Now()
	org.LastUpdatedBy = userID
	if err := s.orgRepo.UpdateOrganization(ctx, *org); err != nil {
		s.LogError(ctx, err, "Failed to deactivate organization", slog.String("organization_id", organizationID))
		return fmt.Errorf("failed to deactivate organization: %w", err)
	}

	s.LogInfo(ctx, "Organization deactivated",
		slog.String("organization_id", organizationID),
		slog.String("deactivated_by", userID))
	return nil
}

func (s *organizationServiceImpl) ListOrganizations(ctx context.Context, scope domain.TenantScope, limit int, offset int) ([]domain.Organization, error) {
	if !scope.Exempt {
		orgID, err := scope.OrgID()
		if err != nil {
			return nil, err
		}
		org, err := s.GetOrganizationByID(ctx, scope, orgID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return []domain.Organization{}, nil
			}
			return nil, err
		}
		return []domain.Organization{*org}, nil
	}

	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	orgs, err := s.orgRepo.ListOrganizations(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list organizations")
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	return orgs, nil
}
