package dto

import (
	"time"

	"github.com/AhmedMohamed005/erp-sys/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportPeriod echoes the date window a report was computed over,
// formatted as YYYY-MM-DD. Empty strings mean unbounded.
type ReportPeriod struct {
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// NewReportPeriod formats optional bounds into a ReportPeriod.
func NewReportPeriod(start, end *time.Time) ReportPeriod {
	p := ReportPeriod{}
	if start != nil {
		p.StartDate = start.Format("2006-01-02")
	}
	if end != nil {
		p.EndDate = end.Format("2006-01-02")
	}
	return p
}

// TrialBalanceAccount is one row of the trial balance.
type TrialBalanceAccount struct {
	AccountID   string          `json:"account_id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
	BalanceType string          `json:"balance_type"` // "debit" or "credit"
}

// TrialBalanceTotals summarizes the report and whether the ledger balances.
type TrialBalanceTotals struct {
	Debit      decimal.Decimal `json:"debit"`
	Credit     decimal.Decimal `json:"credit"`
	Difference decimal.Decimal `json:"difference"`
	IsBalanced bool            `json:"is_balanced"`
}

// TrialBalanceResponse is the flat trial balance report.
type TrialBalanceResponse struct {
	Accounts []TrialBalanceAccount `json:"accounts"`
	Totals   TrialBalanceTotals    `json:"totals"`
	Period   ReportPeriod          `json:"period"`
}

// TrialBalanceGroup buckets trial balance rows by account type with
// per-group subtotals.
type TrialBalanceGroup struct {
	Type        string                `json:"type"`
	Accounts    []TrialBalanceAccount `json:"accounts"`
	TotalDebit  decimal.Decimal       `json:"total_debit"`
	TotalCredit decimal.Decimal       `json:"total_credit"`
}

// GroupedTrialBalanceResponse is the trial balance grouped by account type.
type GroupedTrialBalanceResponse struct {
	GroupedAccounts []TrialBalanceGroup `json:"grouped_accounts"`
	Totals          TrialBalanceTotals  `json:"totals"`
	Period          ReportPeriod        `json:"period"`
}

// ReportAccountAmount is one account with its net amount on the income
// statement or balance sheet.
type ReportAccountAmount struct {
	AccountID string          `json:"account_id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
}

// IncomeStatementTotals summarizes revenue, expenses, and net income.
type IncomeStatementTotals struct {
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetIncome     decimal.Decimal `json:"net_income"`
}

// IncomeStatementResponse is the income statement report.
type IncomeStatementResponse struct {
	Revenue  []ReportAccountAmount `json:"revenue"`
	Expenses []ReportAccountAmount `json:"expenses"`
	Totals   IncomeStatementTotals `json:"totals"`
	Period   ReportPeriod          `json:"period"`
}

// BalanceSheetTotals summarizes the balance sheet equation.
type BalanceSheetTotals struct {
	TotalAssets           decimal.Decimal `json:"total_assets"`
	TotalLiabilities      decimal.Decimal `json:"total_liabilities"`
	TotalEquity           decimal.Decimal `json:"total_equity"`
	LiabilitiesPlusEquity decimal.Decimal `json:"liabilities_plus_equity"`
	IsBalanced            bool            `json:"is_balanced"`
}

// BalanceSheetResponse is the balance sheet report, cumulative to AsOfDate.
type BalanceSheetResponse struct {
	Assets      []ReportAccountAmount `json:"assets"`
	Liabilities []ReportAccountAmount `json:"liabilities"`
	Equity      []ReportAccountAmount `json:"equity"`
	Totals      BalanceSheetTotals    `json:"totals"`
	AsOfDate    string                `json:"as_of_date"`
}

// LedgerLineResponse is one account ledger row with running totals.
type LedgerLineResponse struct {
	LineID          string          `json:"lineID"`
	EntryID         string          `json:"entryID"`
	Date            time.Time       `json:"date"`
	Description     string          `json:"entry_description"`
	ReferenceNumber string          `json:"reference_number,omitempty"`
	Debit           decimal.Decimal `json:"debit"`
	Credit          decimal.Decimal `json:"credit"`
	RunningBalance  decimal.Decimal `json:"running_balance"`
}

// AccountLedgerTotals summarizes an account's ledger over the window.
type AccountLedgerTotals struct {
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
	Balance decimal.Decimal `json:"balance"`
}

// AccountLedgerResponse is the per-account ledger report.
type AccountLedgerResponse struct {
	Account AccountResponse      `json:"account"`
	Ledger  []LedgerLineResponse `json:"ledger"`
	Totals  AccountLedgerTotals  `json:"totals"`
	Period  ReportPeriod         `json:"period"`
}

// ToLedgerLineResponses converts domain ledger lines to response DTOs.
func ToLedgerLineResponses(lines []domain.LedgerLine) []LedgerLineResponse {
	res := make([]LedgerLineResponse, len(lines))
	for i, line := range lines {
		res[i] = LedgerLineResponse{
			LineID:          line.LineID,
			EntryID:         line.EntryID,
			Date:            line.Date,
			Description:     line.Description,
			ReferenceNumber: line.ReferenceNumber,
			Debit:           line.Debit,
			Credit:          line.Credit,
			RunningBalance:  line.RunningBalance,
		}
	}
	return res
}
