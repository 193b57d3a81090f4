package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/AhmedMohamed005/erp-sys/internal/core/domain"
	portsrepo "github.com/AhmedMohamed005/erp-sys/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for report aggregation.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxReportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetAccountActivity aggregates posted debits and credits per account. One
// query serves the trial balance, income statement, and balance sheet.
func (r *PgxReportingRepository) GetAccountActivity(ctx context.Context, organizationID string, accountTypes []domain.AccountType, start, end *time.Time) ([]domain.AccountActivity, error) {
	args := []interface{}{organizationID}

	query := `
		SELECT a.account_id, a.code, a.name, a.account_type,
		       COALESCE(SUM(l.debit), 0) AS total_debit,
		       COALESCE(SUM(l.credit), 0) AS total_credit
		FROM journal_entry_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		JOIN accounts a ON a.account_id = l.account_id
		WHERE l.organization_id = $1
	`
	if len(accountTypes) > 0 {
		types := make([]string, len(accountTypes))
		for i, t := range accountTypes {
			types[i] = string(t)
		}
		args = append(args, types)
		query += ` AND a.account_type = ANY($` + strconv.Itoa(len(args)) + `)`
	}
	if start != nil {
		args = append(args, *start)
		query += ` AND e.entry_date >= $` + strconv.Itoa(len(args))
	}
	if end != nil {
		args = append(args, *end)
		query += ` AND e.entry_date <= $` + strconv.Itoa(len(args))
	}
	query += `
		GROUP BY a.account_id, a.code, a.name, a.account_type
		ORDER BY a.code ASC;
	`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query account activity for organization %s: %w", organizationID, err)
	}
	defer rows.Close()

	activity := make([]domain.AccountActivity, 0)
	for rows.Next() {
		var row domain.AccountActivity
		if err := rows.Scan(
			&row.AccountID,
			&row.Code,
			&row.Name,
			&row.AccountType,
			&row.Debit,
			&row.Credit,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account activity: %w", err)
		}
		activity = append(activity, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read account activity: %w", err)
	}
	return activity, nil
}

// GetAccountLedgerLines retrieves the posted lines touching one account with
// their entry metadata, ordered chronologically. Running balances are filled
// in by the service.
func (r *PgxReportingRepository) GetAccountLedgerLines(ctx context.Context, organizationID string, accountID string, start, end *time.Time) ([]domain.LedgerLine, error) {
	args := []interface{}{organizationID, accountID}

	query := `
		SELECT l.line_id, l.entry_id, e.entry_date, e.description, e.reference_number, l.debit, l.credit
		FROM journal_entry_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		WHERE l.organization_id = $1 AND l.account_id = $2
	`
	if start != nil {
		args = append(args, *start)
		query += ` AND e.entry_date >= $` + strconv.Itoa(len(args))
	}
	if end != nil {
		args = append(args, *end)
		query += ` AND e.entry_date <= $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY e.entry_date ASC, l.created_at ASC, l.line_id ASC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger for account %s: %w", accountID, err)
	}
	defer rows.Close()

	lines := make([]domain.LedgerLine, 0)
	for rows.Next() {
		var line domain.LedgerLine
		if err := rows.Scan(
			&line.LineID,
			&line.EntryID,
			&line.Date,
			&line.Description,
			&line.ReferenceNumber,
			&line.Debit,
			&line.Credit,
		); err != nil {
			return nil, fmt.Errorf("failed to scan ledger line: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ledger lines: %w", err)
	}
	return lines, nil
}
