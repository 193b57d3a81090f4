package services

import (
	portsrepo "github.com/AhmedMohamed005/erp-sys/internal/core/ports/repositories"
	portssvc "github.com/AhmedMohamed005/erp-sys/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Posting is initialized first since the document services depend on it.
	container.Posting = NewPostingService(repos.JournalRepo, repos.AccountRepo)

	container.Organization = NewOrganizationService(repos.OrganizationRepo)
	container.Account = NewAccountService(repos.AccountRepo)
	container.Journal = NewJournalService(repos.JournalRepo, repos.AccountRepo)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.PaymentRepo, repos.JournalRepo, container.Posting)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.InvoiceRepo, container.Posting)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.AccountRepo)

	return container
}
