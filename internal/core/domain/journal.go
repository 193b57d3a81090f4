package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SourceKind names the closed set of document types a journal entry can be
// derived from.
type SourceKind string

const (
	SourceKindInvoice SourceKind = "invoice"
	SourceKindPayment SourceKind = "payment"
)

// SourceRef links a journal entry to the business document it was derived
// from. The pair is used to keep auto-posting idempotent.
type SourceRef struct {
	Kind SourceKind `json:"kind"`
	ID   string     `json:"id"`
}

// JournalEntry is a balanced set of debit/credit lines recorded atomically.
// Entries are never mutated after creation; corrections are new entries.
type JournalEntry struct {
	EntryID         string     `json:"entryID"` // Primary key (UUID)
	OrganizationID  string     `json:"organizationID"`
	Date            time.Time  `json:"date"`
	Description     string     `json:"description"`
	ReferenceNumber string     `json:"referenceNumber,omitempty"`
	Source          *SourceRef `json:"source,omitempty"`
	Lines           []JournalEntryLine `json:"lines,omitempty"`
	AuditFields
}

// JournalEntryLine is a single posting within an entry: exactly one of Debit
// and Credit is strictly positive, the other is exactly zero.
type JournalEntryLine struct {
	LineID         string          `json:"lineID"` // Primary key (UUID)
	EntryID        string          `json:"entryID"`
	OrganizationID string          `json:"organizationID"`
	AccountID      string          `json:"accountID"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	AuditFields
}

// TotalDebits sums the debit side of the entry's lines.
func (e *JournalEntry) TotalDebits() decimal.Decimal {
	total := decimal.Zero
	for _, line := range e.Lines {
		total = total.Add(line.Debit)
	}
	return total
}

// TotalCredits sums the credit side of the entry's lines.
func (e *JournalEntry) TotalCredits() decimal.Decimal {
	total := decimal.Zero
	for _, line := range e.Lines {
		total = total.Add(line.Credit)
	}
	return total
}

// IsBalanced reports whether total debits equal total credits, compared at
// two decimal places.
func (e *JournalEntry) IsBalanced() bool {
	return e.TotalDebits().Round(2).Equal(e.TotalCredits().Round(2))
}
