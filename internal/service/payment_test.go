package service

import (
	"testing"
	"time"

	"github.com/garagio/garagio/internal/api/dto"
	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/garagio/garagio/internal/testutil"
	"github.com/garagio/garagio/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PaymentServiceSuite struct {
	testutil.BaseServiceTestSuite
	service         PaymentService
	invoiceService  InvoiceService
	customerService CustomerService
	customerID      string
}

func TestPaymentService(t *testing.T) {
	suite.Run(t, new(PaymentServiceSuite))
}

func (s *PaymentServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := newTestServiceParams(&s.BaseServiceTestSuite)
	s.service = NewPaymentService(params)
	s.invoiceService = NewInvoiceService(params)
	s.customerService = NewCustomerService(params)

	cust, err := s.customerService.CreateCustomer(s.GetContext(), dto.CreateCustomerRequest{
		Name:  "Petra Winter",
		Email: "petra.winter@example.com",
	})
	s.Require().NoError(err)
	s.customerID = cust.ID
}

func (s *PaymentServiceSuite) createInvoice(amount string) string {
	resp, err := s.invoiceService.CreateInvoice(s.GetContext(), dto.CreateInvoiceRequest{
		CustomerID: s.customerID,
		Amount:     decimal.RequireFromString(amount),
		DueDate:    time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	s.Require().NoError(err)
	return resp.ID
}

func (s *PaymentServiceSuite) TestFullPaymentMarksInvoicePaid() {
	invoiceID := s.createInvoice("85.00")

	paymentDate := time.Date(2025, 1, 28, 0, 0, 0, 0, time.UTC)
	_, err := s.service.RecordPayment(s.GetContext(), dto.RecordPaymentRequest{
		InvoiceID:   invoiceID,
		Amount:      decimal.RequireFromString("85.00"),
		PaymentDate: paymentDate,
		Method:      types.PaymentMethodTransfer,
	})
	s.NoError(err)

	inv, err := s.invoiceService.GetInvoice(s.GetContext(), invoiceID)
	s.NoError(err)
	s.Equal(types.InvoiceStatusPaid, inv.InvoiceStatus)
	s.Require().NotNil(inv.PaidAt)
	s.Equal(paymentDate, *inv.PaidAt)
}

func (s *PaymentServiceSuite) TestPartialPaymentsAccumulate() {
	invoiceID := s.createInvoice("100.00")

	_, err := s.service.RecordPayment(s.GetContext(), dto.RecordPaymentRequest{
		InvoiceID:   invoiceID,
		Amount:      decimal.RequireFromString("40.00"),
		PaymentDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
	})
	s.NoError(err)

	inv, err := s.invoiceService.GetInvoice(s.GetContext(), invoiceID)
	s.NoError(err)
	s.Equal(types.InvoiceStatusSent, inv.InvoiceStatus)
	s.Nil(inv.PaidAt)
	s.Require().NotNil(inv.AmountPaid)
	s.True(inv.AmountPaid.Equal(decimal.RequireFromString("40.00")))

	_, err = s.service.RecordPayment(s.GetContext(), dto.RecordPaymentRequest{
		InvoiceID:   invoiceID,
		Amount:      decimal.RequireFromString("60.00"),
		PaymentDate: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
	})
	s.NoError(err)

	inv, err = s.invoiceService.GetInvoice(s.GetContext(), invoiceID)
	s.NoError(err)
	s.Equal(types.InvoiceStatusPaid, inv.InvoiceStatus)
	s.NotNil(inv.PaidAt)
	s.True(inv.AmountPaid.Equal(decimal.RequireFromString("100.00")))
}

func (s *PaymentServiceSuite) TestPaymentOnPaidInvoiceRejected() {
	invoiceID := s.createInvoice("85.00")

	_, err := s.service.RecordPayment(s.GetContext(), dto.RecordPaymentRequest{
		InvoiceID:   invoiceID,
		Amount:      decimal.RequireFromString("85.00"),
		PaymentDate: time.Date(2025, 1, 28, 0, 0, 0, 0, time.UTC),
	})
	s.NoError(err)

	_, err = s.service.RecordPayment(s.GetContext(), dto.RecordPaymentRequest{
		InvoiceID:   invoiceID,
		Amount:      decimal.NewFromInt(10),
		PaymentDate: time.Date(2025, 1, 29, 0, 0, 0, 0, time.UTC),
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *PaymentServiceSuite) TestPaymentOnCancelledInvoiceRejected() {
	invoiceID := s.createInvoice("85.00")

	_, err := s.invoiceService.UpdateInvoiceStatus(s.GetContext(), invoiceID, dto.UpdateInvoiceStatusRequest{
		Status: types.InvoiceStatusCancelled,
	})
	s.NoError(err)

	_, err = s.service.RecordPayment(s.GetContext(), dto.RecordPaymentRequest{
		InvoiceID:   invoiceID,
		Amount:      decimal.NewFromInt(85),
		PaymentDate: time.Date(2025, 1, 28, 0, 0, 0, 0, time.UTC),
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *PaymentServiceSuite) TestDuplicateReferenceRejected() {
	invoiceID := s.createInvoice("100.00")

	_, err := s.service.RecordPayment(s.GetContext(), dto.RecordPaymentRequest{
		InvoiceID:       invoiceID,
		Amount:          decimal.NewFromInt(40),
		PaymentDate:     time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		ReferenceNumber: lo.ToPtr("SEPA-789"),
	})
	s.NoError(err)

	_, err = s.service.RecordPayment(s.GetContext(), dto.RecordPaymentRequest{
		InvoiceID:       invoiceID,
		Amount:          decimal.NewFromInt(40),
		PaymentDate:     time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC),
		ReferenceNumber: lo.ToPtr("SEPA-789"),
	})
	s.Error(err)
	s.True(ierr.IsAlreadyExists(err))

	payments, err := s.service.ListPaymentsByInvoice(s.GetContext(), invoiceID)
	s.NoError(err)
	s.Len(payments.Items, 1)
}

func (s *PaymentServiceSuite) TestPaymentOnOverdueInvoiceSettles() {
	invoiceID := s.createInvoice("85.00")

	_, err := s.invoiceService.UpdateInvoiceStatus(s.GetContext(), invoiceID, dto.UpdateInvoiceStatusRequest{
		Status: types.InvoiceStatusOverdue,
	})
	s.NoError(err)

	_, err = s.service.RecordPayment(s.GetContext(), dto.RecordPaymentRequest{
		InvoiceID:   invoiceID,
		Amount:      decimal.NewFromInt(85),
		PaymentDate: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
	})
	s.NoError(err)

	inv, err := s.invoiceService.GetInvoice(s.GetContext(), invoiceID)
	s.NoError(err)
	s.Equal(types.InvoiceStatusPaid, inv.InvoiceStatus)
}

func (s *PaymentServiceSuite) TestRecordPaymentValidation() {
	invoiceID := s.createInvoice("85.00")

	_, err := s.service.RecordPayment(s.GetContext(), dto.RecordPaymentRequest{
		InvoiceID:   invoiceID,
		Amount:      decimal.Zero,
		PaymentDate: time.Date(2025, 1, 28, 0, 0, 0, 0, time.UTC),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	_, err = s.service.RecordPayment(s.GetContext(), dto.RecordPaymentRequest{
		InvoiceID:   "inv_missing",
		Amount:      decimal.NewFromInt(10),
		PaymentDate: time.Date(2025, 1, 28, 0, 0, 0, 0, time.UTC),
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
