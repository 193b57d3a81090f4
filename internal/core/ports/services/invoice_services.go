package services

import (
	"context"

	"github.com/AhmedMohamed005/erp-sys/internal/core/domain"
	"github.com/AhmedMohamed005/erp-sys/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoice data
type InvoiceReaderSvc interface {
	// GetInvoiceByID retrieves an invoice visible to the caller's scope.
	GetInvoiceByID(ctx context.Context, scope domain.TenantScope, invoiceID string) (*domain.Invoice, error)

	// GetInvoiceDetail retrieves an invoice together with its journal entry,
	// payments, and payment progress figures.
	GetInvoiceDetail(ctx context.Context, scope domain.TenantScope, invoiceID string) (*dto.InvoiceDetailResponse, error)

	// ListInvoices retrieves a paginated list of invoices using token-based
	// pagination.
	ListInvoices(ctx context.Context, scope domain.TenantScope, limit int, nextToken *string) ([]domain.Invoice, *string, error)
}

// InvoiceWriterSvc defines write operations for invoice data
type InvoiceWriterSvc interface {
	// CreateInvoice persists a new invoice in the caller's organization.
	CreateInvoice(ctx context.Context, scope domain.TenantScope, req dto.CreateInvoiceRequest, userID string) (*domain.Invoice, error)

	// UpdateInvoiceStatus transitions an invoice to a new status, triggering
	// automatic posting when it first becomes sent. The returned flag reports
	// whether a journal entry was created by this call.
	UpdateInvoiceStatus(ctx context.Context, scope domain.TenantScope, invoiceID string, status domain.InvoiceStatus, userID string) (*domain.Invoice, bool, error)

	// DeleteInvoice soft deletes an invoice.
	DeleteInvoice(ctx context.Context, scope domain.TenantScope, invoiceID string, userID string) error
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
