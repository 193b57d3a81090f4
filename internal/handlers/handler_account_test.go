package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AhmedMohamed005/erp-sys/internal/apperrors"
	"github.com/AhmedMohamed005/erp-sys/internal/core/domain"
	portssvc "github.com/AhmedMohamed005/erp-sys/internal/core/ports/services"
	"github.com/AhmedMohamed005/erp-sys/internal/dto"
	"github.com/AhmedMohamed005/erp-sys/internal/handlers"
	"github.com/AhmedMohamed005/erp-sys/internal/middleware"
	"github.com/AhmedMohamed005/erp-sys/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountService ---

type MockAccountService struct {
	mock.Mock
}

// Ensure mock implements the interface
var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) CreateAccount(ctx context.Context, scope domain.TenantScope, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, scope, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, scope domain.TenantScope, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, scope, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, scope domain.TenantScope, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, scope, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, scope domain.TenantScope, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, scope, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeactivateAccount(ctx context.Context, scope domain.TenantScope, accountID string, userID string) error {
	args := m.Called(ctx, scope, accountID, userID)
	return args.Error(0)
}

// --- Test Suite ---

type AccountHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *MockAccountService
	jwtSecret          string
	orgID              string
	userID             string
}

// generateTestToken creates a signed JWT for the test user.
func (suite *AccountHandlerTestSuite) generateTestToken(userID, orgID string, superAdmin bool) string {
	claims := middleware.AuthClaims{
		OrganizationID: orgID,
		SuperAdmin:     superAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "erp-test",
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.orgID = uuid.NewString()
	suite.userID = uuid.NewString()

	suite.mockAccountService = new(MockAccountService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // skip swagger routes
	}
	services := &portssvc.ServiceContainer{
		Account: suite.mockAccountService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *AccountHandlerTestSuite) doRequest(method, url string, body []byte, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	reqBody := dto.CreateAccountRequest{
		Code: "1000",
		Name: "Cash",
		Type: domain.AccountTypeAsset,
	}
	created := &domain.Account{
		AccountID:      uuid.NewString(),
		OrganizationID: suite.orgID,
		Code:           "1000",
		Name:           "Cash",
		AccountType:    domain.AccountTypeAsset,
		IsActive:       true,
	}
	expectedScope := domain.NewTenantScope(suite.orgID)

	suite.mockAccountService.On("CreateAccount", mock.Anything, expectedScope, reqBody, suite.userID).Return(created, nil).Once()

	body, _ := json.Marshal(reqBody)
	token := suite.generateTestToken(suite.userID, suite.orgID, false)
	w := suite.doRequest(http.MethodPost, "/api/v1/accounts", body, token)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.AccountID, resp.AccountID)
	suite.Equal("1000", resp.Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_DuplicateCode() {
	reqBody := dto.CreateAccountRequest{
		Code: "1000",
		Name: "Cash",
		Type: domain.AccountTypeAsset,
	}
	expectedScope := domain.NewTenantScope(suite.orgID)

	suite.mockAccountService.On("CreateAccount", mock.Anything, expectedScope, reqBody, suite.userID).Return(nil, apperrors.ErrDuplicate).Once()

	body, _ := json.Marshal(reqBody)
	token := suite.generateTestToken(suite.userID, suite.orgID, false)
	w := suite.doRequest(http.MethodPost, "/api/v1/accounts", body, token)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *AccountHandlerTestSuite) TestGetAccount_NotFound() {
	accountID := uuid.NewString()
	expectedScope := domain.NewTenantScope(suite.orgID)

	suite.mockAccountService.On("GetAccountByID", mock.Anything, expectedScope, accountID).Return(nil, apperrors.ErrNotFound).Once()

	token := suite.generateTestToken(suite.userID, suite.orgID, false)
	w := suite.doRequest(http.MethodGet, "/api/v1/accounts/"+accountID, nil, token)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_MissingToken() {
	body, _ := json.Marshal(dto.CreateAccountRequest{Code: "1000", Name: "Cash", Type: domain.AccountTypeAsset})
	w := suite.doRequest(http.MethodPost, "/api/v1/accounts", body, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_ExemptRetargetsViaHeader() {
	targetOrg := uuid.NewString()
	reqBody := dto.CreateAccountRequest{
		Code: "1000",
		Name: "Cash",
		Type: domain.AccountTypeAsset,
	}
	created := &domain.Account{
		AccountID:      uuid.NewString(),
		OrganizationID: targetOrg,
		Code:           "1000",
		Name:           "Cash",
		AccountType:    domain.AccountTypeAsset,
		IsActive:       true,
	}
	expectedScope := domain.NewExemptScope(targetOrg)

	suite.mockAccountService.On("CreateAccount", mock.Anything, expectedScope, reqBody, suite.userID).Return(created, nil).Once()

	body, _ := json.Marshal(reqBody)
	token := suite.generateTestToken(suite.userID, "", true)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/accounts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Organization-ID", targetOrg)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func TestAccountHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
