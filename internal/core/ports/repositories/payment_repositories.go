package repositories

import (
	"context"

	"github.com/AhmedMohamed005/erp-sys/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// FindPaymentByID retrieves a payment within an organization.
	FindPaymentByID(ctx context.Context, organizationID string, paymentID string) (*domain.Payment, error)

	// ListPaymentsByInvoice retrieves all payments recorded against an invoice,
	// ordered by payment date.
	ListPaymentsByInvoice(ctx context.Context, organizationID string, invoiceID string) ([]domain.Payment, error)

	// SumPaymentsForInvoice returns the total amount already paid against an invoice.
	SumPaymentsForInvoice(ctx context.Context, organizationID string, invoiceID string) (decimal.Decimal, error)
}

// PaymentWriter defines write operations for payment data
type PaymentWriter interface {
	// SavePayment persists a new payment.
	SavePayment(ctx context.Context, payment domain.Payment) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
