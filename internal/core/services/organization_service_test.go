package services_test

import (
	"context"
	"testing"

	"github.com/AhmedMohamed005/erp-sys/internal/apperrors"
	"github.com/AhmedMohamed005/erp-sys/internal/core/domain"
	portsrepo "github.com/AhmedMohamed005/erp-sys/internal/core/ports/repositories"
	portssvc "github.com/AhmedMohamed005/erp-sys/internal/core/ports/services"
	"github.com/AhmedMohamed005/erp-sys/internal/core/services"
	"github.com/AhmedMohamed005/erp-sys/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock OrganizationRepository ---

type MockOrganizationRepository struct {
	mock.Mock
}

// Ensure MockOrganizationRepository implements portsrepo.OrganizationRepositoryFacade
var _ portsrepo.OrganizationRepositoryFacade = (*MockOrganizationRepository)(nil)

func (m *MockOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) ListOrganizations(ctx context.Context, limit int, offset int) ([]domain.Organization, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) SaveOrganization(ctx context.Context, organization domain.Organization) error {
	args := m.Called(ctx, organization)
	return args.Error(0)
}

func (m *MockOrganizationRepository) UpdateOrganization(ctx context.Context, organization domain.Organization) error {
	args := m.Called(ctx, organization)
	return args.Error(0)
}

type OrganizationServiceTestSuite struct {
	suite.Suite
	mockOrgRepo *MockOrganizationRepository
	service     portssvc.OrganizationSvcFacade
	orgID       string
	userID      string
}

func (suite *OrganizationServiceTestSuite) SetupTest() {
	suite.mockOrgRepo = new(MockOrganizationRepository)
	suite.service = services.NewOrganizationService(suite.mockOrgRepo)

	suite.orgID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *OrganizationServiceTestSuite) TestCreateOrganization_RequiresExemptCaller() {
	ctx := context.Background()
	req := dto.CreateOrganizationRequest{Name: "Globex"}

	org, err := suite.service.CreateOrganization(ctx, domain.NewTenantScope(suite.orgID), req, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(org)
	suite.mockOrgRepo.AssertNotCalled(suite.T(), "SaveOrganization", mock.Anything, mock.Anything)
}

func (suite *OrganizationServiceTestSuite) TestCreateOrganization_ExemptSucceeds() {
	ctx := context.Background()
	req := dto.CreateOrganizationRequest{Name: "Globex"}

	suite.mockOrgRepo.On("SaveOrganization", ctx, mock.AnythingOfType("domain.Organization")).Return(nil).Once()

	org, err := suite.service.CreateOrganization(ctx, domain.NewExemptScope(""), req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(org)
	suite.NotEmpty(org.OrganizationID)
	suite.Equal("Globex", org.Name)
	suite.True(org.IsActive)
}

func (suite *OrganizationServiceTestSuite) TestGetOrganizationByID_OtherTenantHidden() {
	ctx := context.Background()
	otherOrgID := uuid.NewString()

	org, err := suite.service.GetOrganizationByID(ctx, domain.NewTenantScope(suite.orgID), otherOrgID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(org)
	suite.mockOrgRepo.AssertNotCalled(suite.T(), "FindOrganizationByID", mock.Anything, mock.Anything)
}

func (suite *OrganizationServiceTestSuite) TestListOrganizations_TenantSeesOnlyOwn() {
	ctx := context.Background()
	own := &domain.Organization{OrganizationID: suite.orgID, Name: "Own Org", IsActive: true}

	suite.mockOrgRepo.On("FindOrganizationByID", ctx, suite.orgID).Return(own, nil).Once()

	orgs, err := suite.service.ListOrganizations(ctx, domain.NewTenantScope(suite.orgID), 100, 0)

	suite.Require().NoError(err)
	suite.Require().Len(orgs, 1)
	suite.Equal(suite.orgID, orgs[0].OrganizationID)
	suite.mockOrgRepo.AssertNotCalled(suite.T(), "ListOrganizations", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrganizationServiceTestSuite) TestListOrganizations_ExemptSeesAll() {
	ctx := context.Background()
	all := []domain.Organization{
		{OrganizationID: uuid.NewString(), Name: "One"},
		{OrganizationID: uuid.NewString(), Name: "Two"},
	}

	suite.mockOrgRepo.On("ListOrganizations", ctx, 100, 0).Return(all, nil).Once()

	orgs, err := suite.service.ListOrganizations(ctx, domain.NewExemptScope(""), 100, 0)

	suite.Require().NoError(err)
	suite.Len(orgs, 2)
}

func (suite *OrganizationServiceTestSuite) TestListOrganizations_NoTenantAssigned() {
	ctx := context.Background()

	orgs, err := suite.service.ListOrganizations(ctx, domain.NewTenantScope(""), 100, 0)

	suite.Require().ErrorIs(err, apperrors.ErrNoTenantAssigned)
	suite.Nil(orgs)
	suite.mockOrgRepo.AssertNotCalled(suite.T(), "FindOrganizationByID", mock.Anything, mock.Anything)
	suite.mockOrgRepo.AssertNotCalled(suite.T(), "ListOrganizations", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrganizationServiceTestSuite) TestDeactivateOrganization_RequiresExemptCaller() {
	ctx := context.Background()

	err := suite.service.DeactivateOrganization(ctx, domain.NewTenantScope(suite.orgID), suite.orgID, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockOrgRepo.AssertNotCalled(suite.T(), "FindOrganizationByID", mock.Anything, mock.Anything)
	suite.mockOrgRepo.AssertNotCalled(suite.T(), "UpdateOrganization", mock.Anything, mock.Anything)
}

func (suite *OrganizationServiceTestSuite) TestDeactivateOrganization_ExemptSucceeds() {
	ctx := context.Background()
	org := &domain.Organization{OrganizationID: suite.orgID, Name: "Globex", IsActive: true}
	var updated domain.Organization

	suite.mockOrgRepo.On("FindOrganizationByID", ctx, suite.orgID).Return(org, nil).Once()
	suite.mockOrgRepo.On("UpdateOrganization", ctx, mock.AnythingOfType("domain.Organization")).Run(func(args mock.Arguments) {
		updated = args.Get(1).(domain.Organization)
	}).Return(nil).Once()

	err := suite.service.DeactivateOrganization(ctx, domain.NewExemptScope(""), suite.orgID, suite.userID)

	suite.Require().NoError(err)
	suite.False(updated.IsActive)
	suite.Equal(suite.userID, updated.LastUpdatedBy)
	suite.mockOrgRepo.AssertExpectations(suite.T())
}

func (suite *OrganizationServiceTestSuite) TestDeactivateOrganization_NotFound() {
	ctx := context.Background()
	missing := uuid.NewString()

	suite.mockOrgRepo.On("FindOrganizationByID", ctx, missing).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeactivateOrganization(ctx, domain.NewExemptScope(""), missing, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockOrgRepo.AssertNotCalled(suite.T(), "UpdateOrganization", mock.Anything, mock.Anything)
}

func TestOrganizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}
