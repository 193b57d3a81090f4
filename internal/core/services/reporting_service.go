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
	"github.com/shopspring/decimal"
)

// reportingServiceImpl implements the ReportingService interface
type reportingServiceImpl struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	accountRepo   portsrepo.AccountReader
}

// NewReportingService creates a new reporting service
func NewReportingService(reportingRepo portsrepo.ReportingRepository, accountRepo portsrepo.AccountReader) portssvc.ReportingService {
	return &reportingServiceImpl{
		reportingRepo: reportingRepo,
		accountRepo:   accountRepo,
	}
}

// Ensure reportingServiceImpl implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingServiceImpl)(nil)

// trialBalanceRow converts one activity row into a trial balance account row.
func trialBalanceRow(activity domain.AccountActivity) dto.TrialBalanceAccount {
	balance := activity.Balance()
	balanceType := "debit"
	if balance.IsNegative() {
		balanceType = "credit"
	}
	return dto.TrialBalanceAccount{
		AccountID:   activity.AccountID,
		Code:        activity.Code,
		Name:        activity.Name,
		Type:        string(activity.AccountType),
		Debit:       activity.Debit,
		Credit:      activity.Credit,
		Balance:     balance,
		BalanceType: balanceType,
	}
}

// trialBalanceTotals sums the report and checks the double-entry identity.
func trialBalanceTotals(activity []domain.AccountActivity) dto.TrialBalanceTotals {
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, row := range activity {
		totalDebit = totalDebit.Add(row.Debit)
		totalCredit = totalCredit.Add(row.Credit)
	}
	difference := totalDebit.Sub(totalCredit)
	return dto.TrialBalanceTotals{
		Debit:      totalDebit,
		Credit:     totalCredit,
		Difference: difference,
		IsBalanced: difference.Round(2).IsZero(),
	}
}

func (s *reportingServiceImpl) GetTrialBalance(ctx context.Context, scope domain.TenantScope, start, end *time.Time) (*dto.TrialBalanceResponse, error) {
	orgID, err := scope.OrgID()
	if err != nil {
		return nil, err
	}

	activity, err := s.reportingRepo.GetAccountActivity(ctx, orgID, nil, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to load trial balance data", slog.String("organization_id", orgID))
		return nil, fmt.Errorf("failed to load trial balance data: %w", err)
	}

	accounts := make([]dto.TrialBalanceAccount, len(activity))
	for i, row := range activity {
		accounts[i] = trialBalanceRow(row)
	}

	return &dto.TrialBalanceResponse{
		Accounts: accounts,
		Totals:   trialBalanceTotals(activity),
		Period:   dto.NewReportPeriod(start, end),
	}, nil
}

func (s *reportingServiceImpl) GetTrialBalanceGrouped(ctx context.Context, scope domain.TenantScope, start, end *time.Time) (*dto.GroupedTrialBalanceResponse, error) {
	orgID, err := scope.OrgID()
	if err != nil {
		return nil, err
	}

	activity, err := s.reportingRepo.GetAccountActivity(ctx, orgID, nil, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to load trial balance data", slog.String("organization_id", orgID))
		return nil, fmt.Errorf("failed to load trial balance data: %w", err)
	}

	byType := make(map[domain.AccountType][]domain.AccountActivity)
	for _, row := range activity {
		byType[row.AccountType] = append(byType[row.AccountType], row)
	}

	groups := make([]dto.TrialBalanceGroup, 0, len(byType))
	for _, accountType := range domain.AccountTypes {
		rows, ok := byType[accountType]
		if !ok {
			continue
		}
		group := dto.TrialBalanceGroup{
			Type:        string(accountType),
			Accounts:    make([]dto.TrialBalanceAccount, len(rows)),
			TotalDebit:  decimal.Zero,
			TotalCredit: decimal.Zero,
		}
		for i, row := range rows {
			group.Accounts[i] = trialBalanceRow(row)
			group.TotalDebit = group.TotalDebit.Add(row.Debit)
			group.TotalCredit = group.TotalCredit.Add(row.Credit)
		}
		groups = append(groups, group)
	}

	return &dto.GroupedTrialBalanceResponse{
		GroupedAccounts: groups,
		Totals:          trialBalanceTotals(activity),
		Period:          dto.NewReportPeriod(start, end),
	}, nil
}

func (s *reportingServiceImpl) GetIncomeStatement(ctx context.Context, scope domain.TenantScope, start, end *time.Time) (*dto.IncomeStatementResponse, error) {
	orgID, err := scope.OrgID()
	if err != nil {
		return nil, err
	}

	activity, err := s.reportingRepo.GetAccountActivity(ctx, orgID,
		[]domain.AccountType{domain.AccountTypeRevenue, domain.AccountTypeExpense}, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to load income statement data", slog.String("organization_id", orgID))
		return nil, fmt.Errorf("failed to load income statement data: %w", err)
	}

	revenue := make([]dto.ReportAccountAmount, 0)
	expenses := make([]dto.ReportAccountAmount, 0)
	totalRevenue := decimal.Zero
	totalExpenses := decimal.Zero
	for _, row := range activity {
		switch row.AccountType {
		case domain.AccountTypeRevenue:
			// Revenue accounts carry credit balances.
			amount := row.Credit.Sub(row.Debit)
			totalRevenue = totalRevenue.Add(amount)
			revenue = append(revenue, dto.ReportAccountAmount{
				AccountID: row.AccountID,
				Code:      row.Code,
				Name:      row.Name,
				Amount:    amount,
			})
		case domain.AccountTypeExpense:
			amount := row.Debit.Sub(row.Credit)
			totalExpenses = totalExpenses.Add(amount)
			expenses = append(expenses, dto.ReportAccountAmount{
				AccountID: row.AccountID,
				Code:      row.Code,
				Name:      row.Name,
				Amount:    amount,
			})
		}
	}

	return &dto.IncomeStatementResponse{
		Revenue:  revenue,
		Expenses: expenses,
		Totals: dto.IncomeStatementTotals{
			TotalRevenue:  totalRevenue,
			TotalExpenses: totalExpenses,
			NetIncome:     totalRevenue.Sub(totalExpenses),
		},
		Period: dto.NewReportPeriod(start, end),
	}, nil
}

func (s *reportingServiceImpl) GetBalanceSheet(ctx context.Context, scope domain.TenantScope, asOf time.Time) (*dto.BalanceSheetResponse, error) {
	orgID, err := scope.OrgID()
	if err != nil {
		return nil, err
	}

	// Balance sheet figures are cumulative from the beginning of the books.
	activity, err := s.reportingRepo.GetAccountActivity(ctx, orgID,
		[]domain.AccountType{domain.AccountTypeAsset, domain.AccountTypeLiability, domain.AccountTypeEquity}, nil, &asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to load balance sheet data", slog.String("organization_id", orgID))
		return nil, fmt.Errorf("failed to load balance sheet data: %w", err)
	}

	assets := make([]dto.ReportAccountAmount, 0)
	liabilities := make([]dto.ReportAccountAmount, 0)
	equity := make([]dto.ReportAccountAmount, 0)
	totalAssets := decimal.Zero
	totalLiabilities := decimal.Zero
	totalEquity := decimal.Zero
	for _, row := range activity {
		item := dto.ReportAccountAmount{
			AccountID: row.AccountID,
			Code:      row.Code,
			Name:      row.Name,
		}
		switch row.AccountType {
		case domain.AccountTypeAsset:
			item.Amount = row.Debit.Sub(row.Credit)
			totalAssets = totalAssets.Add(item.Amount)
			assets = append(assets, item)
		case domain.AccountTypeLiability:
			item.Amount = row.Credit.Sub(row.Debit)
			totalLiabilities = totalLiabilities.Add(item.Amount)
			liabilities = append(liabilities, item)
		case domain.AccountTypeEquity:
			item.Amount = row.Credit.Sub(row.Debit)
			totalEquity = totalEquity.Add(item.Amount)
			equity = append(equity, item)
		}
	}

	liabilitiesPlusEquity := totalLiabilities.Add(totalEquity)
	return &dto.BalanceSheetResponse{
		Assets:      assets,
		Liabilities: liabilities,
		Equity:      equity,
		Totals: dto.BalanceSheetTotals{
			TotalAssets:           totalAssets,
			TotalLiabilities:      totalLiabilities,
			TotalEquity:           totalEquity,
			LiabilitiesPlusEquity: liabilitiesPlusEquity,
			IsBalanced:            totalAssets.Round(2).Equal(liabilitiesPlusEquity.Round(2)),
		},
		AsOfDate: asOf.Format("2006-01-02"),
	}, nil
}

func (s *reportingServiceImpl) GetAccountLedger(ctx context.Context, scope domain.TenantScope, accountID string, start, end *time.Time) (*dto.AccountLedgerResponse, error) {
	orgID, err := scope.OrgID()
	if err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, orgID, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account for ledger", slog.String("account_id", accountID))
		}
		return nil, err
	}

	lines, err := s.reportingRepo.GetAccountLedgerLines(ctx, orgID, accountID, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to load account ledger", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to load account ledger: %w", err)
	}

	running := decimal.Zero
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for i := range lines {
		running = running.Add(lines[i].Debit).Sub(lines[i].Credit)
		lines[i].RunningBalance = running
		totalDebit = totalDebit.Add(lines[i].Debit)
		totalCredit = totalCredit.Add(lines[i].Credit)
	}

	return &dto.AccountLedgerResponse{
		Account: dto.ToAccountResponse(account),
		Ledger:  dto.ToLedgerLineResponses(lines),
		Totals: dto.AccountLedgerTotals{
			Debit:   totalDebit,
			Credit:  totalCredit,
			Balance: totalDebit.Sub(totalCredit),
		},
		Period: dto.NewReportPeriod(start, end),
	}, nil
}
