package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/AhmedMohamed005/erp-sys/internal/apperrors"
	"github.com/AhmedMohamed005/erp-sys/internal/core/domain"
	portssvc "github.com/AhmedMohamed005/erp-sys/internal/core/ports/services"
	"github.com/AhmedMohamed005/erp-sys/internal/core/services"
	"github.com/AhmedMohamed005/erp-sys/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---

type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo  *MockJournalRepository
	mockAccountRepo  *MockAccountRepository
	service          portssvc.JournalSvcFacade
	scope            domain.TenantScope
	orgID            string
	userID           string
	cashAccount      domain.Account
	revenueAccount   domain.Account
	liabilityAccount domain.Account
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewJournalService(suite.mockJournalRepo, suite.mockAccountRepo)

	suite.orgID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.scope = domain.NewTenantScope(suite.orgID)

	suite.cashAccount = domain.Account{
		AccountID:      uuid.NewString(),
		OrganizationID: suite.orgID,
		Code:           "1000",
		Name:           "Cash",
		AccountType:    domain.AccountTypeAsset,
		IsActive:       true,
	}
	suite.revenueAccount = domain.Account{
		AccountID:      uuid.NewString(),
		OrganizationID: suite.orgID,
		Code:           "4000",
		Name:           "Sales Revenue",
		AccountType:    domain.AccountTypeRevenue,
		IsActive:       true,
	}
	suite.liabilityAccount = domain.Account{
		AccountID:      uuid.NewString(),
		OrganizationID: suite.orgID,
		Code:           "2000",
		Name:           "Accounts Payable",
		AccountType:    domain.AccountTypeLiability,
		IsActive:       true,
	}
}

func (suite *JournalServiceTestSuite) balancedRequest() dto.CreateJournalEntryRequest {
	return dto.CreateJournalEntryRequest{
		Date:        time.Now(),
		Description: "Cash sale",
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(100)},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(100)},
		},
	}
}

// --- Test Cases ---

func (suite *JournalServiceTestSuite) TestCreateEntry_Success() {
	ctx := context.Background()
	req := suite.balancedRequest()

	accountsMap := map[string]domain.Account{
		suite.cashAccount.AccountID:    suite.cashAccount,
		suite.revenueAccount.AccountID: suite.revenueAccount,
	}
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, suite.orgID, []string{suite.cashAccount.AccountID, suite.revenueAccount.AccountID}).Return(accountsMap, nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry")).Return(nil).Once()

	entry, err := suite.service.CreateEntry(ctx, suite.scope, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.NotEmpty(entry.EntryID)
	suite.Equal(suite.orgID, entry.OrganizationID)
	suite.Equal(req.Description, entry.Description)
	suite.Nil(entry.Source)
	suite.Len(entry.Lines, 2)
	suite.Equal(suite.userID, entry.CreatedBy)
	suite.True(entry.IsBalanced())
	for _, line := range entry.Lines {
		suite.Equal(entry.EntryID, line.EntryID)
		suite.Equal(suite.orgID, line.OrganizationID)
	}

	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateEntry_NoLines() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		Date:        time.Now(),
		Description: "Empty entry",
	}

	entry, err := suite.service.CreateEntry(ctx, suite.scope, req, suite.userID)

	suite.Require().ErrorIs(err, services.ErrNoLines)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(entry)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_BothSidesSet() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		Date:        time.Now(),
		Description: "Bad line",
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(50), Credit: decimal.NewFromInt(50)},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(50)},
		},
	}

	entry, err := suite.service.CreateEntry(ctx, suite.scope, req, suite.userID)

	suite.Require().ErrorIs(err, services.ErrInvalidLine)
	suite.Nil(entry)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_NeitherSideSet() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		Date:        time.Now(),
		Description: "Zero line",
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: suite.cashAccount.AccountID},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(50)},
		},
	}

	entry, err := suite.service.CreateEntry(ctx, suite.scope, req, suite.userID)

	suite.Require().ErrorIs(err, services.ErrInvalidLine)
	suite.Nil(entry)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_NegativeAmount() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		Date:        time.Now(),
		Description: "Negative line",
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(-10)},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(-10)},
		},
	}

	entry, err := suite.service.CreateEntry(ctx, suite.scope, req, suite.userID)

	suite.Require().ErrorIs(err, services.ErrInvalidLine)
	suite.Nil(entry)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_Unbalanced() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		Date:        time.Now(),
		Description: "Does not balance",
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(100)},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(90)},
		},
	}

	entry, err := suite.service.CreateEntry(ctx, suite.scope, req, suite.userID)

	suite.Require().ErrorIs(err, services.ErrUnbalancedEntry)
	suite.Nil(entry)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_RoundsToTwoPlaces() {
	ctx := context.Background()
	// 33.333 + 66.667 vs 100.0001 rounds to 100.00 on both sides.
	req := dto.CreateJournalEntryRequest{
		Date:        time.Now(),
		Description: "Sub-cent difference",
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.RequireFromString("33.333")},
			{AccountID: suite.liabilityAccount.AccountID, Debit: decimal.RequireFromString("66.667")},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.RequireFromString("100.0001")},
		},
	}

	accountsMap := map[string]domain.Account{
		suite.cashAccount.AccountID:      suite.cashAccount,
		suite.liabilityAccount.AccountID: suite.liabilityAccount,
		suite.revenueAccount.AccountID:   suite.revenueAccount,
	}
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, suite.orgID, mock.AnythingOfType("[]string")).Return(accountsMap, nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry")).Return(nil).Once()

	entry, err := suite.service.CreateEntry(ctx, suite.scope, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.True(entry.IsBalanced())
}

func (suite *JournalServiceTestSuite) TestCreateEntry_UnknownAccount() {
	ctx := context.Background()
	req := suite.balancedRequest()

	// Only one of the two referenced accounts exists in this organization.
	accountsMap := map[string]domain.Account{
		suite.cashAccount.AccountID: suite.cashAccount,
	}
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, suite.orgID, mock.AnythingOfType("[]string")).Return(accountsMap, nil).Once()

	entry, err := suite.service.CreateEntry(ctx, suite.scope, req, suite.userID)

	suite.Require().ErrorIs(err, services.ErrUnknownAccount)
	suite.Nil(entry)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_NoTenant() {
	ctx := context.Background()
	emptyScope := domain.NewExemptScope("")

	entry, err := suite.service.CreateEntry(ctx, emptyScope, suite.balancedRequest(), suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrNoTenantAssigned)
	suite.Nil(entry)
}

func (suite *JournalServiceTestSuite) TestGetEntryByID_NotFound() {
	ctx := context.Background()
	entryID := uuid.NewString()
	suite.mockJournalRepo.On("FindEntryByID", ctx, suite.orgID, entryID).Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.GetEntryByID(ctx, suite.scope, entryID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(entry)
}

func (suite *JournalServiceTestSuite) TestListEntries_AttachesLines() {
	ctx := context.Background()
	entryID := uuid.NewString()
	entries := []domain.JournalEntry{{EntryID: entryID, OrganizationID: suite.orgID}}
	lines := map[string][]domain.JournalEntryLine{
		entryID: {
			{LineID: uuid.NewString(), EntryID: entryID, Debit: decimal.NewFromInt(25)},
			{LineID: uuid.NewString(), EntryID: entryID, Credit: decimal.NewFromInt(25)},
		},
	}
	suite.mockJournalRepo.On("ListEntries", ctx, suite.orgID, 20, (*string)(nil)).Return(entries, nil, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryIDs", ctx, []string{entryID}).Return(lines, nil).Once()

	got, token, err := suite.service.ListEntries(ctx, suite.scope, 0, nil)

	suite.Require().NoError(err)
	suite.Nil(token)
	suite.Require().Len(got, 1)
	suite.Len(got[0].Lines, 2)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
