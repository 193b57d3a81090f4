package pgsql

import (
	portsrepo "github.com/AhmedMohamed005/erp-sys/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:      newPgxAccountRepository(dbPool),
		JournalRepo:      newPgxJournalRepository(dbPool),
		InvoiceRepo:      newPgxInvoiceRepository(dbPool),
		PaymentRepo:      newPgxPaymentRepository(dbPool),
		OrganizationRepo: newPgxOrganizationRepository(dbPool),
		ReportingRepo:    newPgxReportingRepository(dbPool),
	}
}
