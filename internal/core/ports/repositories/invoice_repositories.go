package repositories

import (
	"context"
	"time"

	"github.com/AhmedMohamed005/erp-sys/internal/core/domain"
)

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice within an organization.
	FindInvoiceByID(ctx context.Context, organizationID string, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves a paginated list of invoices for an organization
	// using token-based pagination.
	ListInvoices(ctx context.Context, organizationID string, limit int, nextToken *string) ([]domain.Invoice, *string, error)
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	// SaveInvoice persists a new invoice.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// UpdateInvoiceStatus transitions an invoice to a new status.
	UpdateInvoiceStatus(ctx context.Context, organizationID string, invoiceID string, status domain.InvoiceStatus, userID string, now time.Time) error

	// DeleteInvoice soft deletes an invoice, recording who removed it.
	DeleteInvoice(ctx context.Context, organizationID string, invoiceID string, userID string, now time.Time) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
