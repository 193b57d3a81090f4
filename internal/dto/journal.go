package dto

import (
	"time"

	"github.com/AhmedMohamed005/erp-sys/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEntryLineRequest is one debit/credit line of a journal entry request.
// Exactly one of Debit and Credit must be strictly positive; the service
// enforces this beyond binding.
type CreateEntryLineRequest struct {
	AccountID string          `json:"account_id" binding:"required"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// CreateJournalEntryRequest defines the data needed to post a journal entry.
type CreateJournalEntryRequest struct {
	Date            time.Time                `json:"date" binding:"required" time_format:"2006-01-02"`
	Description     string                   `json:"description" binding:"required,max=255"`
	ReferenceNumber string                   `json:"reference_number" binding:"max=255"`
	Lines           []CreateEntryLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// EntryLineResponse defines the data returned for a journal entry line.
type EntryLineResponse struct {
	LineID    string          `json:"lineID"`
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// EntryValidation is the computed balance summary of an entry.
type EntryValidation struct {
	TotalDebits  decimal.Decimal `json:"total_debits"`
	TotalCredits decimal.Decimal `json:"total_credits"`
	Difference   decimal.Decimal `json:"difference"`
	IsBalanced   bool            `json:"is_balanced"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID         string              `json:"entryID"`
	OrganizationID  string              `json:"organizationID"`
	Date            time.Time           `json:"date"`
	Description     string              `json:"description"`
	ReferenceNumber string              `json:"referenceNumber,omitempty"`
	Source          *domain.SourceRef   `json:"source,omitempty"`
	Lines           []EntryLineResponse `json:"lines"`
	Validation      EntryValidation     `json:"validation"`
	CreatedAt       time.Time           `json:"createdAt"`
	CreatedBy       string              `json:"createdBy"`
}

// ListJournalEntriesParams defines query parameters for listing entries.
type ListJournalEntriesParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"next_token"`
}

// ListJournalEntriesResponse wraps a page of journal entries.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"journal_entries"`
	NextToken *string                `json:"next_token,omitempty"`
}

// ToJournalEntryResponse converts a domain.JournalEntry (with lines) to its
// response DTO, including the computed validation block.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	lines := make([]EntryLineResponse, len(e.Lines))
	for i, line := range e.Lines {
		lines[i] = EntryLineResponse{
			LineID:    line.LineID,
			AccountID: line.AccountID,
			Debit:     line.Debit,
			Credit:    line.Credit,
		}
	}
	totalDebits := e.TotalDebits()
	totalCredits := e.TotalCredits()
	return JournalEntryResponse{
		EntryID:         e.EntryID,
		OrganizationID:  e.OrganizationID,
		Date:            e.Date,
		Description:     e.Description,
		ReferenceNumber: e.ReferenceNumber,
		Source:          e.Source,
		Lines:           lines,
		Validation: EntryValidation{
			TotalDebits:  totalDebits,
			TotalCredits: totalCredits,
			Difference:   totalDebits.Sub(totalCredits),
			IsBalanced:   e.IsBalanced(),
		},
		CreatedAt: e.CreatedAt,
		CreatedBy: e.CreatedBy,
	}
}
