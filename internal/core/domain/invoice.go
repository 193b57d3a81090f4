package domain

import "github.com/shopspring/decimal"

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// IsValid reports whether s is one of the enumerated invoice statuses.
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	}
	return false
}

// Invoice is a receivable document. Transitioning into "sent" derives a
// journal entry through the auto-posting pipeline, at most once per invoice.
type Invoice struct {
	InvoiceID      string          `json:"invoiceID"` // Primary key (UUID)
	OrganizationID string          `json:"organizationID"`
	ClientName     string          `json:"clientName"`
	Total          decimal.Decimal `json:"total"`
	Status         InvoiceStatus   `json:"status"`
	AuditFields
	SoftDeleteFields
}
