package repositories

import (
	"context"
	"time"

	"github.com/AhmedMohamed005/erp-sys/internal/core/domain"
)

// ReportingRepository defines operations for retrieving financial report data
type ReportingRepository interface {
	// GetAccountActivity aggregates posted debits and credits per account over
	// an optional date window, restricted to the given account types when
	// provided. Accounts with no activity in the window are omitted.
	GetAccountActivity(ctx context.Context, organizationID string, accountTypes []domain.AccountType, start, end *time.Time) ([]domain.AccountActivity, error)

	// GetAccountLedgerLines retrieves the posted lines touching a single
	// account over an optional date window, ordered by entry date then creation.
	GetAccountLedgerLines(ctx context.Context, organizationID string, accountID string, start, end *time.Time) ([]domain.LedgerLine, error)
}
