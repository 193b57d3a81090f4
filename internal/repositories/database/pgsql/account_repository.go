package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/AhmedMohamed005/erp-sys/internal/apperrors"
	"github.com/AhmedMohamed005/erp-sys/internal/core/domain"
	portsrepo "github.com/AhmedMohamed005/erp-sys/internal/core/ports/repositories"
	"github.com/AhmedMohamed005/erp-sys/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryWithTx {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryWithTx
var _ portsrepo.AccountRepositoryWithTx = (*PgxAccountRepository)(nil)

func toModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:      d.AccountID,
		OrganizationID: d.OrganizationID,
		Code:           d.Code,
		Name:           d.Name,
		AccountType:    models.AccountType(d.AccountType),
		IsActive:       d.IsActive,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
		SoftDeleteFields: models.SoftDeleteFields{
			DeletedAt: d.DeletedAt,
			DeletedBy: d.DeletedBy,
		},
	}
}

func toDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:      m.AccountID,
		OrganizationID: m.OrganizationID,
		Code:           m.Code,
		Name:           m.Name,
		AccountType:    domain.AccountType(m.AccountType),
		IsActive:       m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
		SoftDeleteFields: domain.SoftDeleteFields{
			DeletedAt: m.DeletedAt,
			DeletedBy: m.DeletedBy,
		},
	}
}

const accountColumns = `account_id, organization_id, code, name, account_type, is_active, created_at, created_by, last_updated_at, last_updated_by, deleted_at, deleted_by`

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.OrganizationID,
		&m.Code,
		&m.Name,
		&m.AccountType,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
		&m.DeletedBy,
	)
	return m, err
}

// SaveAccount inserts a new account. The (organization_id, code) pair is
// unique; collisions surface as ErrDuplicate.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := toModelAccount(account)

	query := `
		INSERT INTO accounts (account_id, organization_id, code, name, account_type, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.OrganizationID,
		m.Code,
		m.Name,
		m.AccountType,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: account code %s already exists in organization %s", apperrors.ErrDuplicate, m.Code, m.OrganizationID)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account scoped to an organization. A row that
// exists under another organization answers ErrNotFound.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, organizationID string, accountID string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_id = $1 AND organization_id = $2 AND deleted_at IS NULL;
	`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID, organizationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	account := toDomainAccount(m)
	return &account, nil
}

// FindAccountsByIDs retrieves multiple accounts by ID within an organization.
// Missing IDs are simply absent from the result map.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, organizationID string, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}

	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_id = ANY($1) AND organization_id = $2 AND deleted_at IS NULL;
	`
	rows, err := r.Pool.Query(ctx, query, accountIDs, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by ids: %w", err)
	}
	defer rows.Close()

	accounts := make(map[string]domain.Account, len(accountIDs))
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts[m.AccountID] = toDomainAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read accounts: %w", err)
	}
	return accounts, nil
}

// ListAccounts retrieves an organization's chart of accounts ordered by code.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, organizationID string, limit int, offset int) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE organization_id = $1 AND deleted_at IS NULL
		ORDER BY code ASC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts for organization %s: %w", organizationID, err)
	}
	defer rows.Close()

	accounts := make([]domain.Account, 0, limit)
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, toDomainAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read accounts: %w", err)
	}
	return accounts, nil
}

// UpdateAccount updates an account's mutable columns. The organization id
// never changes after creation.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	query := `
		UPDATE accounts
		SET name = $1, is_active = $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $5 AND organization_id = $6 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query,
		account.Name,
		account.IsActive,
		account.LastUpdatedAt,
		account.LastUpdatedBy,
		account.AccountID,
		account.OrganizationID,
	)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", account.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %s: %w", account.AccountID, apperrors.ErrNotFound)
	}
	return nil
}

// DeactivateAccount soft deletes an account, recording who removed it.
func (r *PgxAccountRepository) DeactivateAccount(ctx context.Context, organizationID string, accountID string, userID string, now time.Time) error {
	query := `
		UPDATE accounts
		SET is_active = FALSE, deleted_at = $1, deleted_by = $2, last_updated_at = $1, last_updated_by = $2
		WHERE account_id = $3 AND organization_id = $4 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, now, userID, accountID, organizationID)
	if err != nil {
		return fmt.Errorf("failed to deactivate account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}
	return nil
}

// keywordMatchClause appends one %keyword% argument per keyword and builds
// the matching conditions. Each keyword matches against code or name.
func keywordMatchClause(args []interface{}, keywords []string) (string, []interface{}) {
	conditions := make([]string, len(keywords))
	for i, keyword := range keywords {
		args = append(args, "%"+keyword+"%")
		placeholder := "$" + strconv.Itoa(len(args))
		conditions[i] = "(code ILIKE " + placeholder + " OR name ILIKE " + placeholder + ")"
	}
	return strings.Join(conditions, " OR "), args
}

// FindFirstByTypeMatching returns the lowest-code active account of the given
// type whose code or name contains any keyword, case-insensitively.
func (r *PgxAccountRepository) FindFirstByTypeMatching(ctx context.Context, organizationID string, accountType domain.AccountType, keywords []string) (*domain.Account, error) {
	if len(keywords) == 0 {
		return r.FindFirstByType(ctx, organizationID, accountType)
	}

	clause, args := keywordMatchClause([]interface{}{organizationID, string(accountType)}, keywords)

	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE organization_id = $1 AND account_type = $2 AND is_active = TRUE AND deleted_at IS NULL
		  AND (` + clause + `)
		ORDER BY code ASC
		LIMIT 1;
	`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("no %s account matching %s: %w", accountType, strings.Join(keywords, "/"), apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find %s account: %w", accountType, err)
	}
	account := toDomainAccount(m)
	return &account, nil
}

// FindFirstByType returns the lowest-code active account of the given type.
func (r *PgxAccountRepository) FindFirstByType(ctx context.Context, organizationID string, accountType domain.AccountType) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE organization_id = $1 AND account_type = $2 AND is_active = TRUE AND deleted_at IS NULL
		ORDER BY code ASC
		LIMIT 1;
	`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, organizationID, string(accountType)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("no %s account in organization %s: %w", accountType, organizationID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find %s account: %w", accountType, err)
	}
	account := toDomainAccount(m)
	return &account, nil
}
