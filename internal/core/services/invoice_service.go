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
)

var (
	// ErrInvalidInvoiceStatus indicates an unknown invoice status.
	ErrInvalidInvoiceStatus = fmt.Errorf("invalid invoice status: %w", apperrors.ErrValidation)
	// ErrNonPositiveInvoiceTotal indicates the invoice total is zero or negative.
	ErrNonPositiveInvoiceTotal = fmt.Errorf("invoice total must be greater than zero: %w", apperrors.ErrValidation)
	// ErrInvoicePosted indicates the invoice has a posted journal entry and
	// can no longer be deleted.
	ErrInvoicePosted = fmt.Errorf("invoice has a posted journal entry: %w", apperrors.ErrConflict)
)

// invoiceServiceImpl implements the InvoiceSvcFacade interface
type invoiceServiceImpl struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	paymentRepo portsrepo.PaymentReader
	journalRepo portsrepo.JournalEntryReader
	posting     portssvc.PostingSvc
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, paymentRepo portsrepo.PaymentReader, journalRepo portsrepo.JournalEntryReader, posting portssvc.PostingSvc) portssvc.InvoiceSvcFacade {
	return &invoiceServiceImpl{
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		journalRepo: journalRepo,
		posting:     posting,
	}
}

// Ensure invoiceServiceImpl implements the InvoiceSvcFacade interface
var _ portssvc.InvoiceSvcFacade = (*invoiceServiceImpl)(nil)

func (s *invoiceServiceImpl) CreateInvoice(ctx context.Context, scope domain.TenantScope, req dto.CreateInvoiceRequest, userID string) (*domain.Invoice, error) {
	orgID, err := scope.OrgID()
	if err != nil {
		s.LogError(ctx, err, "Cannot create invoice without an organization", slog.String("user_id", userID))
		return nil, err
	}

	if !req.Status.IsValid() {
		return nil, ErrInvalidInvoiceStatus
	}
	if !req.Total.IsPositive() {
		return nil, ErrNonPositiveInvoiceTotal
	}

	now := time.Now()
	invoice := domain.Invoice{
		InvoiceID:      uuid.NewString(),
		OrganizationID: orgID,
		ClientName:     req.ClientName,
		Total:          req.Total,
		Status:         req.Status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "Failed to save invoice", slog.String("client_name", req.ClientName))
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	s.LogInfo(ctx, "Invoice created",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("organization_id", orgID),
		slog.String("total", invoice.Total.String()))

	// Invoices created directly in sent status post immediately.
	if invoice.Status == domain.InvoiceStatusSent {
		if _, _, err := s.posting.PostInvoiceSent(ctx, scope, invoice, userID); err != nil {
			s.LogError(ctx, err, "Automatic posting failed for new invoice",
				slog.String("invoice_id", invoice.InvoiceID))
		}
	}

	return &invoice, nil
}

func (s *invoiceServiceImpl) GetInvoiceByID(ctx context.Context, scope domain.TenantScope, invoiceID string) (*domain.Invoice, error) {
	orgID, err := scope.OrgID()
	if err != nil {
		return nil, err
	}

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, orgID, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find invoice", slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}
	return invoice, nil
}

func (s *invoiceServiceImpl) GetInvoiceDetail(ctx context.Context, scope domain.TenantScope, invoiceID string) (*dto.InvoiceDetailResponse, error) {
	orgID, err := scope.OrgID()
	if err != nil {
		return nil, err
	}

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, orgID, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find invoice", slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}

	detail := dto.InvoiceDetailResponse{
		Invoice: dto.ToInvoiceResponse(invoice),
	}

	source := domain.SourceRef{Kind: domain.SourceKindInvoice, ID: invoiceID}
	entry, err := s.journalRepo.FindEntryBySource(ctx, orgID, source)
	switch {
	case err == nil:
		resp := dto.ToJournalEntryResponse(entry)
		detail.JournalEntry = &resp
		detail.HasJournalEntry = true
	case errors.Is(err, apperrors.ErrNotFound):
		// Draft invoices have no entry yet.
	default:
		s.LogError(ctx, err, "Failed to load journal entry for invoice", slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to load journal entry: %w", err)
	}

	payments, err := s.paymentRepo.ListPaymentsByInvoice(ctx, orgID, invoiceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load payments for invoice", slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}
	detail.Payments = dto.ToPaymentResponses(payments)

	totalPaid, err := s.paymentRepo.SumPaymentsForInvoice(ctx, orgID, invoiceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum payments for invoice", slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to sum payments: %w", err)
	}
	detail.TotalPaid = totalPaid
	detail.RemainingBalance = invoice.Total.Sub(totalPaid)

	return &detail, nil
}

func (s *invoiceServiceImpl) ListInvoices(ctx context.Context, scope domain.TenantScope, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	orgID, err := scope.OrgID()
	if err != nil {
		return nil, nil, err
	}

	if limit <= 0 {
		limit = 20
	}

	invoices, token, err := s.invoiceRepo.ListInvoices(ctx, orgID, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices", slog.String("organization_id", orgID))
		return nil, nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, token, nil
}

func (s *invoiceServiceImpl) UpdateInvoiceStatus(ctx context.Context, scope domain.TenantScope, invoiceID string, status domain.InvoiceStatus, userID string) (*domain.Invoice, bool, error) {
	orgID, err := scope.OrgID()
	if err != nil {
		return nil, false, err
	}

	if !status.IsValid() {
		return nil, false, ErrInvalidInvoiceStatus
	}

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, orgID, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find invoice for status update", slog.String("invoice_id", invoiceID))
		}
		return nil, false, err
	}

	now := time.Now()
	if err := s.invoiceRepo.UpdateInvoiceStatus(ctx, orgID, invoiceID, status, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to update invoice status",
			slog.String("invoice_id", invoiceID),
			slog.String("status", string(status)))
		return nil, false, fmt.Errorf("failed to update invoice status: %w", err)
	}
	invoice.Status = status
	invoice.LastUpdatedAt = now
	invoice.LastUpdatedBy = userID

	s.LogInfo(ctx, "Invoice status updated",
		slog.String("invoice_id", invoiceID),
		slog.String("status", string(status)))

	// The status change is already committed. A posting failure is logged
	// and surfaced as created=false without failing the request.
	entryCreated := false
	if status == domain.InvoiceStatusSent {
		_, created, err := s.posting.PostInvoiceSent(ctx, scope, *invoice, userID)
		if err != nil {
			s.LogError(ctx, err, "Automatic posting failed after status update",
				slog.String("invoice_id", invoiceID))
		} else {
			entryCreated = created
		}
	}

	return invoice, entryCreated, nil
}

func (s *invoiceServiceImpl) DeleteInvoice(ctx context.Context, scope domain.TenantScope, invoiceID string, userID string) error {
	orgID, err := scope.OrgID()
	if err != nil {
		return err
	}

	if _, err := s.invoiceRepo.FindInvoiceByID(ctx, orgID, invoiceID); err != nil {
		return err
	}

	// A posted invoice cannot be deleted; dropping the document would orphan
	// its ledger entry.
	source := domain.SourceRef{Kind: domain.SourceKindInvoice, ID: invoiceID}
	_, err = s.journalRepo.FindEntryBySource(ctx, orgID, source)
	switch {
	case err == nil:
		return ErrInvoicePosted
	case errors.Is(err, apperrors.ErrNotFound):
		// No entry, safe to delete.
	default:
		s.LogError(ctx, err, "Failed to check journal entry before invoice delete", slog.String("invoice_id", invoiceID))
		return fmt.Errorf("failed to check journal entry: %w", err)
	}

	if err := s.invoiceRepo.DeleteInvoice(ctx, orgID, invoiceID, userID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to delete invoice", slog.String("invoice_id", invoiceID))
		return fmt.Errorf("failed to delete invoice: %w", err)
	}

	s.LogInfo(ctx, "Invoice deleted",
		slog.String("invoice_id", invoiceID),
		slog.String("deleted_by", userID))
	return nil
}
