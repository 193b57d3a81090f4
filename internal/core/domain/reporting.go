package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountActivity is one account's aggregated debit/credit totals over a
// report window. It is the common input row for every report.
type AccountActivity struct {
	AccountID   string          `json:"accountID"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"type"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// Balance returns debit minus credit for the row.
func (a AccountActivity) Balance() decimal.Decimal {
	return a.Debit.Sub(a.Credit)
}

// LedgerLine is one journal line joined with its entry's metadata, as shown
// on an account ledger.
type LedgerLine struct {
	LineID          string          `json:"lineID"`
	EntryID         string          `json:"entryID"`
	Date            time.Time       `json:"date"`
	Description     string          `json:"description"`
	ReferenceNumber string          `json:"referenceNumber,omitempty"`
	Debit           decimal.Decimal `json:"debit"`
	Credit          decimal.Decimal `json:"credit"`
	RunningBalance  decimal.Decimal `json:"runningBalance"`
}

// ReportPeriod is the inclusive date window a report was computed over.
// Nil bounds mean unbounded.
type ReportPeriod struct {
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}
