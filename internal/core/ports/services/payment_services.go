package services

import (
	"context"

	"github.com/AhmedMohamed005/erp-sys/internal/core/domain"
	"github.com/AhmedMohamed005/erp-sys/internal/dto"
)

// PaymentReaderSvc defines read operations for payment data
type PaymentReaderSvc interface {
	// GetPaymentByID retrieves a payment visible to the caller's scope.
	GetPaymentByID(ctx context.Context, scope domain.TenantScope, paymentID string) (*domain.Payment, error)

	// ListPaymentsByInvoice retrieves the payments recorded against an invoice.
	ListPaymentsByInvoice(ctx context.Context, scope domain.TenantScope, invoiceID string) ([]domain.Payment, error)
}

// PaymentWriterSvc defines write operations for payment data
type PaymentWriterSvc interface {
	// CreatePayment validates and persists a payment against an invoice,
	// posting the matching journal entry and marking the invoice paid when
	// the running total reaches its amount.
	CreatePayment(ctx context.Context, scope domain.TenantScope, req dto.CreatePaymentRequest, userID string) (*domain.Payment, error)
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
