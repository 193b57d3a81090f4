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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrNoReceivableAccount indicates the chart has no asset account whose
	// name mentions receivables.
	ErrNoReceivableAccount = fmt.Errorf("no receivable account configured: %w", apperrors.ErrValidation)
	// ErrNoRevenueAccount indicates the chart has no revenue account.
	ErrNoRevenueAccount = fmt.Errorf("no revenue account configured: %w", apperrors.ErrValidation)
	// ErrNoCashAccount indicates the chart has no cash or bank asset account.
	ErrNoCashAccount = fmt.Errorf("no cash account configured: %w", apperrors.ErrValidation)
)

// Account name fragments used to locate the posting targets in the chart.
var (
	receivableKeywords = []string{"receivable"}
	cashKeywords       = []string{"cash", "bank"}
)

// postingServiceImpl implements the PostingSvc interface
type postingServiceImpl struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	accountRepo portsrepo.AccountReader
}

// NewPostingService creates a new posting service
func NewPostingService(journalRepo portsrepo.JournalRepositoryFacade, accountRepo portsrepo.AccountReader) portssvc.PostingSvc {
	return &postingServiceImpl{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
	}
}

// Ensure postingServiceImpl implements the PostingSvc interface
var _ portssvc.PostingSvc = (*postingServiceImpl)(nil)

func (s *postingServiceImpl) PostInvoiceSent(ctx context.Context, scope domain.TenantScope, invoice domain.Invoice, userID string) (*domain.JournalEntry, bool, error) {
	orgID, err := scope.OrgID()
	if err != nil {
		return nil, false, err
	}

	source := domain.SourceRef{Kind: domain.SourceKindInvoice, ID: invoice.InvoiceID}

	// Sending the same invoice twice must not double the receivable.
	existing, err := s.journalRepo.FindEntryBySource(ctx, orgID, source)
	if err == nil {
		s.LogDebug(ctx, "Invoice already posted, skipping",
			slog.String("invoice_id", invoice.InvoiceID),
			slog.String("entry_id", existing.EntryID))
		return existing, false, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for existing invoice entry",
			slog.String("invoice_id", invoice.InvoiceID))
		return nil, false, fmt.Errorf("failed to check for existing entry: %w", err)
	}

	receivable, err := s.accountRepo.FindFirstByTypeMatching(ctx, orgID, domain.AccountTypeAsset, receivableKeywords)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, false, ErrNoReceivableAccount
		}
		return nil, false, fmt.Errorf("failed to find receivable account: %w", err)
	}
	revenue, err := s.accountRepo.FindFirstByType(ctx, orgID, domain.AccountTypeRevenue)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, false, ErrNoRevenueAccount
		}
		return nil, false, fmt.Errorf("failed to find revenue account: %w", err)
	}

	entry := s.buildEntry(orgID, userID, time.Now(),
		fmt.Sprintf("Invoice #%s - %s", invoice.InvoiceID, invoice.ClientName),
		fmt.Sprintf("INV-%s", invoice.InvoiceID),
		source,
		receivable.AccountID, revenue.AccountID, invoice.Total)

	if err := s.journalRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to post invoice entry",
			slog.String("invoice_id", invoice.InvoiceID))
		return nil, false, fmt.Errorf("failed to post invoice entry: %w", err)
	}

	s.LogInfo(ctx, "Invoice posted to ledger",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("entry_id", entry.EntryID),
		slog.String("amount", invoice.Total.String()))
	return &entry, true, nil
}

func (s *postingServiceImpl) PostPaymentReceived(ctx context.Context, scope domain.TenantScope, payment domain.Payment, userID string) (*domain.JournalEntry, error) {
	orgID, err := scope.OrgID()
	if err != nil {
		return nil, err
	}

	cash, err := s.accountRepo.FindFirstByTypeMatching(ctx, orgID, domain.AccountTypeAsset, cashKeywords)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrNoCashAccount
		}
		return nil, fmt.Errorf("failed to find cash account: %w", err)
	}
	receivable, err := s.accountRepo.FindFirstByTypeMatching(ctx, orgID, domain.AccountTypeAsset, receivableKeywords)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrNoReceivableAccount
		}
		return nil, fmt.Errorf("failed to find receivable account: %w", err)
	}

	reference := payment.ReferenceNumber
	if reference == "" {
		reference = fmt.Sprintf("PAY-%s", payment.PaymentID)
	}

	entry := s.buildEntry(orgID, userID, payment.PaymentDate,
		fmt.Sprintf("Payment #%s for Invoice #%s", payment.PaymentID, payment.InvoiceID),
		reference,
		domain.SourceRef{Kind: domain.SourceKindPayment, ID: payment.PaymentID},
		cash.AccountID, receivable.AccountID, payment.Amount)

	if err := s.journalRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to post payment entry",
			slog.String("payment_id", payment.PaymentID))
		return nil, fmt.Errorf("failed to post payment entry: %w", err)
	}

	s.LogInfo(ctx, "Payment posted to ledger",
		slog.String("payment_id", payment.PaymentID),
		slog.String("entry_id", entry.EntryID),
		slog.String("amount", payment.Amount.String()))
	return &entry, nil
}

// buildEntry assembles a two-line entry debiting debitAccountID and crediting
// creditAccountID for the same amount.
func (s *postingServiceImpl) buildEntry(orgID, userID string, date time.Time, description, reference string, source domain.SourceRef, debitAccountID, creditAccountID string, amount decimal.Decimal) domain.JournalEntry {
	now := time.Now()
	entryID := uuid.NewString()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
	return domain.JournalEntry{
		EntryID:         entryID,
		OrganizationID:  orgID,
		Date:            date,
		Description:     description,
		ReferenceNumber: reference,
		Source:          &source,
		Lines: []domain.JournalEntryLine{
			{
				LineID:         uuid.NewString(),
				EntryID:        entryID,
				OrganizationID: orgID,
				AccountID:      debitAccountID,
				Debit:          amount,
				Credit:         decimal.Zero,
				AuditFields:    audit,
			},
			{
				LineID:         uuid.NewString(),
				EntryID:        entryID,
				OrganizationID: orgID,
				AccountID:      creditAccountID,
				Debit:          decimal.Zero,
				Credit:         amount,
				AuditFields:    audit,
			},
		},
		AuditFields: audit,
	}
}
