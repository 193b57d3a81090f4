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

var (
	// ErrInvalidAccountType indicates an unknown account type was supplied.
	ErrInvalidAccountType = fmt.Errorf("invalid account type: %w", apperrors.ErrValidation)
	// ErrDuplicateAccountCode indicates the account code is already taken
	// within the organization.
	ErrDuplicateAccountCode = fmt.Errorf("account code already exists: %w", apperrors.ErrDuplicate)
)

// accountServiceImpl implements the AccountSvcFacade interface
type accountServiceImpl struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountServiceImpl{
		accountRepo: repo,
	}
}

// Ensure accountServiceImpl implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountServiceImpl)(nil)

func (s *accountServiceImpl) CreateAccount(ctx context.Context, scope domain.TenantScope, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	orgID, err := scope.OrgID()
	if err != nil {
		s.LogError(ctx, err, "Cannot create account without an organization", slog.String("user_id", userID))
		return nil, err
	}

	accountType := req.Type
	if !accountType.IsValid() {
		s.LogError(ctx, ErrInvalidAccountType, "Rejected account with unknown type",
			slog.String("type", string(req.Type)))
		return nil, ErrInvalidAccountType
	}

	now := time.Now()
	account := domain.Account{
		AccountID:      uuid.NewString(),
		OrganizationID: orgID,
		Code:           req.Code,
		Name:           req.Name,
		AccountType:    accountType,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogWarn(ctx, "Account code collision",
				slog.String("code", req.Code),
				slog.String("organization_id", orgID))
			return nil, ErrDuplicateAccountCode
		}
		s.LogError(ctx, err, "Failed to save account", slog.String("code", req.Code))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.LogInfo(ctx, "Account created",
		slog.String("account_id", account.AccountID),
		slog.String("code", account.Code),
		slog.String("organization_id", orgID))
	return &account, nil
}

func (s *accountServiceImpl) GetAccountByID(ctx context.Context, scope domain.TenantScope, accountID string) (*domain.Account, error) {
	orgID, err := scope.OrgID()
	if err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, orgID, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountServiceImpl) ListAccounts(ctx context.Context, scope domain.TenantScope, limit int, offset int) ([]domain.Account, error) {
	orgID, err := scope.OrgID()
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, orgID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("organization_id", orgID))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (s *accountServiceImpl) UpdateAccount(ctx context.Context, scope domain.TenantScope, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	orgID, err := scope.OrgID()
	if err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, orgID, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account for update", slog.String("account_id", accountID))
		}
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	s.LogInfo(ctx, "Account updated", slog.String("account_id", accountID))
	return account, nil
}

func (s *accountServiceImpl) DeactivateAccount(ctx context.Context, scope domain.TenantScope, accountID string, userID string) error {
	orgID, err := scope.OrgID()
	if err != nil {
		return err
	}

	// Confirm visibility before touching the row so cross-tenant callers get
	// the same not found answer as for reads.
	if _, err := s.accountRepo.FindAccountByID(ctx, orgID, accountID); err != nil {
		return err
	}

	if err := s.accountRepo.DeactivateAccount(ctx, orgID, accountID, userID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate account", slog.String("account_id", accountID))
		return fmt.Errorf("failed to deactivate account: %w", err)
	}

	s.LogInfo(ctx, "Account deactivated",
		slog.String("account_id", accountID),
		slog.String("deleted_by", userID))
	return nil
}
