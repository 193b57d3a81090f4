package repositories

import (
	"context"

	"github.com/AhmedMohamed005/erp-sys/internal/core/domain"
)

// JournalEntryReader defines read operations for journal entry data
type JournalEntryReader interface {
	// FindEntryByID retrieves a journal entry with its lines within an organization.
	FindEntryByID(ctx context.Context, organizationID string, entryID string) (*domain.JournalEntry, error)

	// FindEntryBySource retrieves the entry posted for a source document, if any.
	FindEntryBySource(ctx context.Context, organizationID string, source domain.SourceRef) (*domain.JournalEntry, error)

	// ListEntries retrieves a paginated list of entries for an organization using
	// token-based pagination. It returns the entries without their lines, a token
	// for the next page, and an error.
	ListEntries(ctx context.Context, organizationID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// JournalEntryWriter defines write operations for journal entry data
type JournalEntryWriter interface {
	// SaveEntry persists an entry and all of its lines atomically.
	SaveEntry(ctx context.Context, entry domain.JournalEntry) error
}

// JournalLineReader defines read operations for journal entry lines
type JournalLineReader interface {
	// FindLinesByEntryID retrieves the lines of a single entry, ordered by creation.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalEntryLine, error)

	// FindLinesByEntryIDs retrieves lines for multiple entries, grouped by entry ID.
	FindLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.JournalEntryLine, error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalEntryReader
	JournalEntryWriter
	JournalLineReader
}

// JournalRepositoryWithTx extends JournalRepositoryFacade with transaction capabilities
type JournalRepositoryWithTx interface {
	JournalRepositoryFacade
	TransactionManager
}
