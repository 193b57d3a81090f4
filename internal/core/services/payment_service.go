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
	// ErrNonPositivePaymentAmount indicates the payment amount is zero or negative.
	ErrNonPositivePaymentAmount = fmt.Errorf("payment amount must be greater than zero: %w", apperrors.ErrValidation)
	// ErrAmountExceedsInvoiceTotal indicates the payment would push the paid
	// total past the invoice amount.
	ErrAmountExceedsInvoiceTotal = fmt.Errorf("payment amount exceeds remaining invoice balance: %w", apperrors.ErrConflict)
)

// paymentServiceImpl implements the PaymentSvcFacade interface
type paymentServiceImpl struct {
	BaseService
	paymentRepo portsrepo.PaymentRepositoryFacade
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	posting     portssvc.PostingSvc
}

// NewPaymentService creates a new payment service
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade, invoiceRepo portsrepo.InvoiceRepositoryFacade, posting portssvc.PostingSvc) portssvc.PaymentSvcFacade {
	return &paymentServiceImpl{
		paymentRepo: paymentRepo,
		invoiceRepo: invoiceRepo,
		posting:     posting,
	}
}

// Ensure paymentServiceImpl implements the PaymentSvcFacade interface
var _ portssvc.PaymentSvcFacade = (*paymentServiceImpl)(nil)

func (s *paymentServiceImpl) CreatePayment(ctx context.Context, scope domain.TenantScope, req dto.CreatePaymentRequest, userID string) (*domain.Payment, error) {
	orgID, err := scope.OrgID()
	if err != nil {
		s.LogError(ctx, err, "Cannot record payment without an organization", slog.String("user_id", userID))
		return nil, err
	}

	if !req.Amount.IsPositive() {
		return nil, ErrNonPositivePaymentAmount
	}

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, orgID, req.InvoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find invoice for payment", slog.String("invoice_id", req.InvoiceID))
		}
		return nil, err
	}

	alreadyPaid, err := s.paymentRepo.SumPaymentsForInvoice(ctx, orgID, req.InvoiceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum existing payments", slog.String("invoice_id", req.InvoiceID))
		return nil, fmt.Errorf("failed to sum existing payments: %w", err)
	}
	if alreadyPaid.Add(req.Amount).GreaterThan(invoice.Total) {
		s.LogWarn(ctx, "Rejected payment exceeding invoice total",
			slog.String("invoice_id", req.InvoiceID),
			slog.String("amount", req.Amount.String()),
			slog.String("already_paid", alreadyPaid.String()),
			slog.String("invoice_total", invoice.Total.String()))
		return nil, ErrAmountExceedsInvoiceTotal
	}

	now := time.Now()
	payment := domain.Payment{
		PaymentID:       uuid.NewString(),
		OrganizationID:  orgID,
		InvoiceID:       req.InvoiceID,
		Amount:          req.Amount,
		PaymentDate:     req.PaymentDate,
		PaymentMethod:   req.PaymentMethod,
		ReferenceNumber: req.ReferenceNumber,
		Notes:           req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		s.LogError(ctx, err, "Failed to save payment", slog.String("invoice_id", req.InvoiceID))
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("invoice_id", req.InvoiceID),
		slog.String("amount", req.Amount.String()))

	// The payment is committed. Posting and the paid transition run best
	// effort; failures are logged without failing the request.
	if _, err := s.posting.PostPaymentReceived(ctx, scope, payment, userID); err != nil {
		s.LogError(ctx, err, "Automatic posting failed for payment",
			slog.String("payment_id", payment.PaymentID))
	}

	if alreadyPaid.Add(req.Amount).GreaterThanOrEqual(invoice.Total) && invoice.Status != domain.InvoiceStatusPaid {
		if err := s.invoiceRepo.UpdateInvoiceStatus(ctx, orgID, invoice.InvoiceID, domain.InvoiceStatusPaid, userID, now); err != nil {
			s.LogError(ctx, err, "Failed to mark invoice paid",
				slog.String("invoice_id", invoice.InvoiceID))
		} else {
			s.LogInfo(ctx, "Invoice fully paid", slog.String("invoice_id", invoice.InvoiceID))
		}
	}

	return &payment, nil
}

func (s *paymentServiceImpl) GetPaymentByID(ctx context.Context, scope domain.TenantScope, paymentID string) (*domain.Payment, error) {
	orgID, err := scope.OrgID()
	if err != nil {
		return nil, err
	}

	payment, err := s.paymentRepo.FindPaymentByID(ctx, orgID, paymentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find payment", slog.String("payment_id", paymentID))
		}
		return nil, err
	}
	return payment, nil
}

func (s *paymentServiceImpl) ListPaymentsByInvoice(ctx context.Context, scope domain.TenantScope, invoiceID string) ([]domain.Payment, error) {
	orgID, err := scope.OrgID()
	if err != nil {
		return nil, err
	}

	// Cross-tenant invoice IDs answer not found, same as direct reads.
	if _, err := s.invoiceRepo.FindInvoiceByID(ctx, orgID, invoiceID); err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.ListPaymentsByInvoice(ctx, orgID, invoiceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments", slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}
