package services

import (
	"context"

	"github.com/AhmedMohamed005/erp-sys/internal/core/domain"
	"github.com/AhmedMohamed005/erp-sys/internal/dto"
)

// JournalReaderSvc defines read operations for journal entries
type JournalReaderSvc interface {
	// GetEntryByID retrieves a journal entry with its lines.
	GetEntryByID(ctx context.Context, scope domain.TenantScope, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a paginated list of entries using token-based
	// pagination. Returned entries include their lines.
	ListEntries(ctx context.Context, scope domain.TenantScope, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// JournalWriterSvc defines write operations for journal entries
type JournalWriterSvc interface {
	// CreateEntry validates and persists a balanced manual journal entry.
	CreateEntry(ctx context.Context, scope domain.TenantScope, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
