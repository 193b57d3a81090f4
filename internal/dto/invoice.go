package dto

import (
	"time"

	"github.com/AhmedMohamed005/erp-sys/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest defines the data needed to create an invoice.
type CreateInvoiceRequest struct {
	ClientName string               `json:"client_name" binding:"required,max=255"`
	Total      decimal.Decimal      `json:"total" binding:"required"`
	Status     domain.InvoiceStatus `json:"status" binding:"required,oneof=draft sent paid overdue cancelled"`
}

// UpdateInvoiceStatusRequest changes an invoice's lifecycle status.
type UpdateInvoiceStatusRequest struct {
	Status domain.InvoiceStatus `json:"status" binding:"required,oneof=draft sent paid overdue cancelled"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID      string               `json:"invoiceID"`
	OrganizationID string               `json:"organizationID"`
	ClientName     string               `json:"client_name"`
	Total          decimal.Decimal      `json:"total"`
	Status         domain.InvoiceStatus `json:"status"`
	CreatedAt      time.Time            `json:"createdAt"`
	CreatedBy      string               `json:"createdBy"`
}

// InvoiceDetailResponse is an invoice with its derived journal entry and
// payment roll-up.
type InvoiceDetailResponse struct {
	Invoice          InvoiceResponse       `json:"invoice"`
	JournalEntry     *JournalEntryResponse `json:"journal_entry,omitempty"`
	HasJournalEntry  bool                  `json:"has_journal_entry"`
	Payments         []PaymentResponse     `json:"payments"`
	TotalPaid        decimal.Decimal       `json:"total_paid"`
	RemainingBalance decimal.Decimal       `json:"remaining_balance"`
}

// UpdateInvoiceStatusResponse reports the invoice after a status change and
// whether a derived journal entry now exists.
type UpdateInvoiceStatusResponse struct {
	Invoice             InvoiceResponse `json:"invoice"`
	JournalEntryCreated bool            `json:"journal_entry_created"`
}

// ListInvoicesParams defines query parameters for listing invoices.
type ListInvoicesParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"next_token"`
}

// ListInvoicesResponse wraps a page of invoices.
type ListInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	NextToken *string           `json:"next_token,omitempty"`
}

// ToInvoiceResponse converts a domain.Invoice to an InvoiceResponse DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:      inv.InvoiceID,
		OrganizationID: inv.OrganizationID,
		ClientName:     inv.ClientName,
		Total:          inv.Total,
		Status:         inv.Status,
		CreatedAt:      inv.CreatedAt,
		CreatedBy:      inv.CreatedBy,
	}
}

// ToListInvoicesResponse converts a page of domain invoices to the list DTO.
func ToListInvoicesResponse(invoices []domain.Invoice, nextToken *string) ListInvoicesResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		res[i] = ToInvoiceResponse(&inv)
	}
	return ListInvoicesResponse{Invoices: res, NextToken: nextToken}
}
