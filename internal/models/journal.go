package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry represents a row of the journal_entries table. SourceKind and
// SourceID are both NULL for manual entries and both set for derived ones.
type JournalEntry struct {
	EntryID         string    `db:"entry_id"`
	OrganizationID  string    `db:"organization_id"`
	EntryDate       time.Time `db:"entry_date"`
	Description     string    `db:"description"`
	ReferenceNumber string    `db:"reference_number"`
	SourceKind      *string   `db:"source_kind"`
	SourceID        *string   `db:"source_id"`
	AuditFields
}

// JournalEntryLine represents a row of the journal_entry_lines table.
type JournalEntryLine struct {
	LineID         string          `db:"line_id"`
	EntryID        string          `db:"entry_id"`
	OrganizationID string          `db:"organization_id"`
	AccountID      string          `db:"account_id"`
	Debit          decimal.Decimal `db:"debit"`
	Credit         decimal.Decimal `db:"credit"`
	AuditFields
}
