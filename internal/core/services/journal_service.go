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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrNoLines indicates an entry was submitted without any lines.
	ErrNoLines = fmt.Errorf("journal entry requires at least one line: %w", apperrors.ErrValidation)
	// ErrInvalidLine indicates a line does not carry exactly one positive side.
	ErrInvalidLine = fmt.Errorf("each line must have exactly one of debit or credit greater than zero: %w", apperrors.ErrValidation)
	// ErrUnbalancedEntry indicates total debits and credits differ.
	ErrUnbalancedEntry = fmt.Errorf("journal entry debits and credits must balance: %w", apperrors.ErrValidation)
	// ErrUnknownAccount indicates a line references an account outside the
	// organization's chart.
	ErrUnknownAccount = fmt.Errorf("line references an unknown account: %w", apperrors.ErrValidation)
)

// journalServiceImpl implements the JournalSvcFacade interface
type journalServiceImpl struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	accountRepo portsrepo.AccountReader
}

// NewJournalService creates a new journal service
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountRepo portsrepo.AccountReader) portssvc.JournalSvcFacade {
	return &journalServiceImpl{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
	}
}

// Ensure journalServiceImpl implements the JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalServiceImpl)(nil)

// validateLines checks the double-entry invariants on the requested lines and
// returns the parsed totals.
func (s *journalServiceImpl) validateLines(lines []dto.CreateEntryLineRequest) (decimal.Decimal, decimal.Decimal, error) {
	if len(lines) == 0 {
		return decimal.Zero, decimal.Zero, ErrNoLines
	}

	totalDebits := decimal.Zero
	totalCredits := decimal.Zero
	for _, line := range lines {
		debitPositive := line.Debit.IsPositive()
		creditPositive := line.Credit.IsPositive()
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return decimal.Zero, decimal.Zero, ErrInvalidLine
		}
		if debitPositive == creditPositive {
			// Either both sides carry an amount or neither does.
			return decimal.Zero, decimal.Zero, ErrInvalidLine
		}
		totalDebits = totalDebits.Add(line.Debit)
		totalCredits = totalCredits.Add(line.Credit)
	}

	if !totalDebits.Round(2).Equal(totalCredits.Round(2)) {
		return totalDebits, totalCredits, ErrUnbalancedEntry
	}
	return totalDebits, totalCredits, nil
}

func (s *journalServiceImpl) CreateEntry(ctx context.Context, scope domain.TenantScope, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	orgID, err := scope.OrgID()
	if err != nil {
		s.LogError(ctx, err, "Cannot create journal entry without an organization", slog.String("user_id", userID))
		return nil, err
	}

	totalDebits, totalCredits, err := s.validateLines(req.Lines)
	if err != nil {
		if errors.Is(err, ErrUnbalancedEntry) {
			s.LogWarn(ctx, "Rejected unbalanced journal entry",
				slog.String("total_debits", totalDebits.String()),
				slog.String("total_credits", totalCredits.String()),
				slog.String("difference", totalDebits.Sub(totalCredits).String()))
		}
		return nil, err
	}

	// Every line must reference an account in this organization's chart.
	accountIDs := make([]string, 0, len(req.Lines))
	seen := make(map[string]struct{}, len(req.Lines))
	for _, line := range req.Lines {
		if _, ok := seen[line.AccountID]; ok {
			continue
		}
		seen[line.AccountID] = struct{}{}
		accountIDs = append(accountIDs, line.AccountID)
	}
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, orgID, accountIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to look up accounts for journal entry")
		return nil, fmt.Errorf("failed to look up accounts: %w", err)
	}
	for _, accountID := range accountIDs {
		if _, ok := accounts[accountID]; !ok {
			s.LogWarn(ctx, "Journal entry references unknown account",
				slog.String("account_id", accountID),
				slog.String("organization_id", orgID))
			return nil, ErrUnknownAccount
		}
	}

	now := time.Now()
	entryID := uuid.NewString()
	entry := domain.JournalEntry{
		EntryID:         entryID,
		OrganizationID:  orgID,
		Date:            req.Date,
		Description:     req.Description,
		ReferenceNumber: req.ReferenceNumber,
		Lines:           make([]domain.JournalEntryLine, len(req.Lines)),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	for i, line := range req.Lines {
		entry.Lines[i] = domain.JournalEntryLine{
			LineID:         uuid.NewString(),
			EntryID:        entryID,
			OrganizationID: orgID,
			AccountID:      line.AccountID,
			Debit:          line.Debit,
			Credit:         line.Credit,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
	}

	if err := s.journalRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save journal entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	s.LogInfo(ctx, "Journal entry created",
		slog.String("entry_id", entryID),
		slog.String("organization_id", orgID),
		slog.Int("line_count", len(entry.Lines)),
		slog.String("total", totalDebits.String()))
	return &entry, nil
}

func (s *journalServiceImpl) GetEntryByID(ctx context.Context, scope domain.TenantScope, entryID string) (*domain.JournalEntry, error) {
	orgID, err := scope.OrgID()
	if err != nil {
		return nil, err
	}

	entry, err := s.journalRepo.FindEntryByID(ctx, orgID, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find journal entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

func (s *journalServiceImpl) ListEntries(ctx context.Context, scope domain.TenantScope, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	orgID, err := scope.OrgID()
	if err != nil {
		return nil, nil, err
	}

	if limit <= 0 {
		limit = 20
	}

	entries, token, err := s.journalRepo.ListEntries(ctx, orgID, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries", slog.String("organization_id", orgID))
		return nil, nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	if len(entries) == 0 {
		return entries, token, nil
	}

	entryIDs := make([]string, len(entries))
	for i, entry := range entries {
		entryIDs[i] = entry.EntryID
	}
	linesByEntry, err := s.journalRepo.FindLinesByEntryIDs(ctx, entryIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to load lines for journal entries")
		return nil, nil, fmt.Errorf("failed to load journal entry lines: %w", err)
	}
	for i := range entries {
		entries[i].Lines = linesByEntry[entries[i].EntryID]
	}
	return entries, token, nil
}
