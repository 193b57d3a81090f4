package services

import (
	"context"
	"time"

	"github.com/AhmedMohamed005/erp-sys/internal/core/domain"
	"github.com/AhmedMohamed005/erp-sys/internal/dto"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// GetTrialBalance generates a trial balance over an optional date window.
	GetTrialBalance(ctx context.Context, scope domain.TenantScope, start, end *time.Time) (*dto.TrialBalanceResponse, error)

	// GetTrialBalanceGrouped generates a trial balance grouped by account type.
	GetTrialBalanceGrouped(ctx context.Context, scope domain.TenantScope, start, end *time.Time) (*dto.GroupedTrialBalanceResponse, error)

	// GetIncomeStatement generates an income statement over an optional date window.
	GetIncomeStatement(ctx context.Context, scope domain.TenantScope, start, end *time.Time) (*dto.IncomeStatementResponse, error)

	// GetBalanceSheet generates a balance sheet cumulative to asOf.
	GetBalanceSheet(ctx context.Context, scope domain.TenantScope, asOf time.Time) (*dto.BalanceSheetResponse, error)

	// GetAccountLedger generates the ledger of a single account with running balances.
	GetAccountLedger(ctx context.Context, scope domain.TenantScope, accountID string, start, end *time.Time) (*dto.AccountLedgerResponse, error)
}
