package services

import (
	"context"

	"github.com/AhmedMohamed005/erp-sys/internal/core/domain"
)

// PostingSvc translates source documents into balanced journal entries.
// Callers invoke it after the document mutation has committed; a posting
// failure must never roll the document back.
type PostingSvc interface {
	// PostInvoiceSent posts the receivable/revenue entry for an invoice that
	// just became sent. Posting is idempotent per invoice: if an entry already
	// exists for the source, it is returned and no new entry is created.
	PostInvoiceSent(ctx context.Context, scope domain.TenantScope, invoice domain.Invoice, userID string) (*domain.JournalEntry, bool, error)

	// PostPaymentReceived posts the cash/receivable entry for a recorded payment.
	PostPaymentReceived(ctx context.Context, scope domain.TenantScope, payment domain.Payment, userID string) (*domain.JournalEntry, error)
}
