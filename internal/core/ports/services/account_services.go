package services

import (
	"context"

	"github.com/AhmedMohamed005/erp-sys/internal/core/domain"
	"github.com/AhmedMohamed005/erp-sys/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account visible to the caller's scope.
	GetAccountByID(ctx context.Context, scope domain.TenantScope, accountID string) (*domain.Account, error)

	// ListAccounts retrieves the chart of accounts for the caller's scope.
	ListAccounts(ctx context.Context, scope domain.TenantScope, limit int, offset int) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account in the caller's organization.
	CreateAccount(ctx context.Context, scope domain.TenantScope, req dto.CreateAccountRequest, userID string) (*domain.Account, error)

	// UpdateAccount updates an existing account's name or active flag.
	UpdateAccount(ctx context.Context, scope domain.TenantScope, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)

	// DeactivateAccount soft deletes an account.
	DeactivateAccount(ctx context.Context, scope domain.TenantScope, accountID string, userID string) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
