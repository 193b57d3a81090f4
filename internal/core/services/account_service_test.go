package services_test

import (
	"context"
	"testing"

	"github.com/AhmedMohamed005/erp-sys/internal/apperrors"
	"github.com/AhmedMohamed005/erp-sys/internal/core/domain"
	portssvc "github.com/AhmedMohamed005/erp-sys/internal/core/ports/services"
	"github.com/AhmedMohamed005/erp-sys/internal/core/services"
	"github.com/AhmedMohamed005/erp-sys/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	service         portssvc.AccountSvcFacade
	scope           domain.TenantScope
	orgID           string
	userID          string
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo)

	suite.orgID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.scope = domain.NewTenantScope(suite.orgID)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code: "1000",
		Name: "Cash",
		Type: domain.AccountTypeAsset,
	}

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, suite.scope, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.NotEmpty(account.AccountID)
	suite.Equal(suite.orgID, account.OrganizationID)
	suite.Equal("1000", account.Code)
	suite.Equal(domain.AccountTypeAsset, account.AccountType)
	suite.True(account.IsActive)
	suite.Equal(suite.userID, account.CreatedBy)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_InvalidType() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code: "9999",
		Name: "Mystery",
		Type: domain.AccountType("Contra"),
	}

	account, err := suite.service.CreateAccount(ctx, suite.scope, req, suite.userID)

	suite.Require().ErrorIs(err, services.ErrInvalidAccountType)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(account)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateCode() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code: "1000",
		Name: "Cash",
		Type: domain.AccountTypeAsset,
	}

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(apperrors.ErrDuplicate).Once()

	account, err := suite.service.CreateAccount(ctx, suite.scope, req, suite.userID)

	suite.Require().ErrorIs(err, services.ErrDuplicateAccountCode)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(account)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_NoTenant() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code: "1000",
		Name: "Cash",
		Type: domain.AccountTypeAsset,
	}

	account, err := suite.service.CreateAccount(ctx, domain.NewExemptScope(""), req, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrNoTenantAssigned)
	suite.Nil(account)
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.orgID, accountID).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccountByID(ctx, suite.scope, accountID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(account)
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_Success() {
	ctx := context.Background()
	accountID := uuid.NewString()
	existing := &domain.Account{
		AccountID:      accountID,
		OrganizationID: suite.orgID,
		Code:           "1000",
		Name:           "Cash",
		AccountType:    domain.AccountTypeAsset,
		IsActive:       true,
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.orgID, accountID).Return(existing, nil).Once()
	suite.mockAccountRepo.On("DeactivateAccount", ctx, suite.orgID, accountID, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeactivateAccount(ctx, suite.scope, accountID, suite.userID)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_CrossTenantNotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.orgID, accountID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeactivateAccount(ctx, suite.scope, accountID, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "DeactivateAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
