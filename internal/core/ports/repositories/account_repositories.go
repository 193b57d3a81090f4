package repositories

import (
	"context"
	"time"

	"github.com/AhmedMohamed005/erp-sys/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account within an organization.
	// Accounts belonging to other organizations are reported as not found.
	FindAccountByID(ctx context.Context, organizationID string, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by ID within an organization.
	FindAccountsByIDs(ctx context.Context, organizationID string, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves the accounts of an organization ordered by code.
	ListAccounts(ctx context.Context, organizationID string, limit int, offset int) ([]domain.Account, error)

	// FindFirstByTypeMatching returns the lowest-code active account of the
	// given type whose code or name contains any of the keywords
	// (case-insensitive).
	FindFirstByTypeMatching(ctx context.Context, organizationID string, accountType domain.AccountType, keywords []string) (*domain.Account, error)

	// FindFirstByType returns the lowest-code active account of the given type.
	FindFirstByType(ctx context.Context, organizationID string, accountType domain.AccountType) (*domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeactivateAccount soft deletes an account, recording who removed it.
	DeactivateAccount(ctx context.Context, organizationID string, accountID string, userID string, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}

// AccountRepositoryWithTx extends AccountRepositoryFacade with transaction capabilities
type AccountRepositoryWithTx interface {
	AccountRepositoryFacade
	TransactionManager
}
