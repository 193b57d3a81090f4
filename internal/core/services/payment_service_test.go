package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/AhmedMohamed005/erp-sys/internal/apperrors"
	"github.com/AhmedMohamed005/erp-sys/internal/core/domain"
	portssvc "github.com/AhmedMohamed005/erp-sys/internal/core/ports/services"
	"github.com/AhmedMohamed005/erp-sys/internal/core/services"
	"github.com/AhmedMohamed005/erp-sys/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo *MockPaymentRepository
	mockInvoiceRepo *MockInvoiceRepository
	mockPosting     *MockPostingService
	service         portssvc.PaymentSvcFacade
	scope           domain.TenantScope
	orgID           string
	userID          string
	invoice         domain.Invoice
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockPosting = new(MockPostingService)
	suite.service = services.NewPaymentService(suite.mockPaymentRepo, suite.mockInvoiceRepo, suite.mockPosting)

	suite.orgID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.scope = domain.NewTenantScope(suite.orgID)

	suite.invoice = domain.Invoice{
		InvoiceID:      uuid.NewString(),
		OrganizationID: suite.orgID,
		ClientName:     "Acme Corp",
		Total:          decimal.NewFromInt(1000),
		Status:         domain.InvoiceStatusSent,
	}
}

func (suite *PaymentServiceTestSuite) paymentRequest(amount int64) dto.CreatePaymentRequest {
	return dto.CreatePaymentRequest{
		InvoiceID:     suite.invoice.InvoiceID,
		Amount:        decimal.NewFromInt(amount),
		PaymentDate:   time.Now(),
		PaymentMethod: "bank_transfer",
	}
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_Success() {
	ctx := context.Background()
	req := suite.paymentRequest(400)

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, suite.orgID, suite.invoice.InvoiceID).Return(&suite.invoice, nil).Once()
	suite.mockPaymentRepo.On("SumPaymentsForInvoice", ctx, suite.orgID, suite.invoice.InvoiceID).Return(decimal.Zero, nil).Once()
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.AnythingOfType("domain.Payment")).Return(nil).Once()
	suite.mockPosting.On("PostPaymentReceived", ctx, suite.scope, mock.AnythingOfType("domain.Payment"), suite.userID).Return(&domain.JournalEntry{EntryID: uuid.NewString()}, nil).Once()

	payment, err := suite.service.CreatePayment(ctx, suite.scope, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.NotEmpty(payment.PaymentID)
	suite.Equal(suite.orgID, payment.OrganizationID)
	suite.True(payment.Amount.Equal(decimal.NewFromInt(400)))
	// 400 of 1000 leaves the invoice unpaid.
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "UpdateInvoiceStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockPosting.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_FullPaymentMarksInvoicePaid() {
	ctx := context.Background()
	req := suite.paymentRequest(600)

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, suite.orgID, suite.invoice.InvoiceID).Return(&suite.invoice, nil).Once()
	suite.mockPaymentRepo.On("SumPaymentsForInvoice", ctx, suite.orgID, suite.invoice.InvoiceID).Return(decimal.NewFromInt(400), nil).Once()
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.AnythingOfType("domain.Payment")).Return(nil).Once()
	suite.mockPosting.On("PostPaymentReceived", ctx, suite.scope, mock.AnythingOfType("domain.Payment"), suite.userID).Return(&domain.JournalEntry{EntryID: uuid.NewString()}, nil).Once()
	suite.mockInvoiceRepo.On("UpdateInvoiceStatus", ctx, suite.orgID, suite.invoice.InvoiceID, domain.InvoiceStatusPaid, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	payment, err := suite.service.CreatePayment(ctx, suite.scope, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_ExceedsInvoiceTotal() {
	ctx := context.Background()
	req := suite.paymentRequest(700)

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, suite.orgID, suite.invoice.InvoiceID).Return(&suite.invoice, nil).Once()
	suite.mockPaymentRepo.On("SumPaymentsForInvoice", ctx, suite.orgID, suite.invoice.InvoiceID).Return(decimal.NewFromInt(400), nil).Once()

	payment, err := suite.service.CreatePayment(ctx, suite.scope, req, suite.userID)

	suite.Require().ErrorIs(err, services.ErrAmountExceedsInvoiceTotal)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Nil(payment)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_NonPositiveAmount() {
	ctx := context.Background()
	req := suite.paymentRequest(0)

	payment, err := suite.service.CreatePayment(ctx, suite.scope, req, suite.userID)

	suite.Require().ErrorIs(err, services.ErrNonPositivePaymentAmount)
	suite.Nil(payment)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "FindInvoiceByID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_InvoiceNotFound() {
	ctx := context.Background()
	req := suite.paymentRequest(100)

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, suite.orgID, suite.invoice.InvoiceID).Return(nil, apperrors.ErrNotFound).Once()

	payment, err := suite.service.CreatePayment(ctx, suite.scope, req, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(payment)
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_PostingFailureDoesNotFailRequest() {
	ctx := context.Background()
	req := suite.paymentRequest(100)

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, suite.orgID, suite.invoice.InvoiceID).Return(&suite.invoice, nil).Once()
	suite.mockPaymentRepo.On("SumPaymentsForInvoice", ctx, suite.orgID, suite.invoice.InvoiceID).Return(decimal.Zero, nil).Once()
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.AnythingOfType("domain.Payment")).Return(nil).Once()
	suite.mockPosting.On("PostPaymentReceived", ctx, suite.scope, mock.AnythingOfType("domain.Payment"), suite.userID).Return(nil, services.ErrNoCashAccount).Once()

	payment, err := suite.service.CreatePayment(ctx, suite.scope, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.mockPosting.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestListPaymentsByInvoice_ChecksInvoiceFirst() {
	ctx := context.Background()

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, suite.orgID, suite.invoice.InvoiceID).Return(nil, apperrors.ErrNotFound).Once()

	payments, err := suite.service.ListPaymentsByInvoice(ctx, suite.scope, suite.invoice.InvoiceID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(payments)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "ListPaymentsByInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
