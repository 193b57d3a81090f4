package models

import "github.com/shopspring/decimal"

// InvoiceStatus is the lifecycle status column of an invoice.
type InvoiceStatus string

// Invoice represents a row of the invoices table.
type Invoice struct {
	InvoiceID      string          `db:"invoice_id"`
	OrganizationID string          `db:"organization_id"`
	ClientName     string          `db:"client_name"`
	Total          decimal.Decimal `db:"total"`
	Status         InvoiceStatus   `db:"status"`
	AuditFields
	SoftDeleteFields
}
