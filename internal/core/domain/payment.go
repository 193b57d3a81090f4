package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment records money received against an invoice. Payments are immutable
// once created; each one derives exactly one journal entry at creation time.
type Payment struct {
	PaymentID       string          `json:"paymentID"` // Primary key (UUID)
	OrganizationID  string          `json:"organizationID"`
	InvoiceID       string          `json:"invoiceID"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentDate     time.Time       `json:"paymentDate"`
	PaymentMethod   string          `json:"paymentMethod"`
	ReferenceNumber string          `json:"referenceNumber,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	AuditFields
}
