package service

import (
	"testing"
	"time"

	"github.com/garagio/garagio/internal/api/dto"
	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/garagio/garagio/internal/testutil"
	"github.com/garagio/garagio/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type InvoiceServiceSuite struct {
	testutil.BaseServiceTestSuite
	service         InvoiceService
	customerService CustomerService
	customerID      string
}

func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceSuite))
}

func (s *InvoiceServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := newTestServiceParams(&s.BaseServiceTestSuite)
	s.service = NewInvoiceService(params)
	s.customerService = NewCustomerService(params)

	cust, err := s.customerService.CreateCustomer(s.GetContext(), dto.CreateCustomerRequest{
		Name:  "Milan Petrov",
		Email: "milan.petrov@example.com",
	})
	s.Require().NoError(err)
	s.customerID = cust.ID
}

func (s *InvoiceServiceSuite) TestCreateInvoice() {
	resp, err := s.service.CreateInvoice(s.GetContext(), dto.CreateInvoiceRequest{
		CustomerID: s.customerID,
		Amount:     decimal.RequireFromString("85.00"),
		DueDate:    time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	s.NoError(err)
	s.Equal(types.InvoiceStatusSent, resp.InvoiceStatus)
	s.NotEmpty(resp.InvoiceNumber)
	s.Nil(resp.PaidAt)
}

func (s *InvoiceServiceSuite) TestCreateInvoiceSendsNotification() {
	_, err := s.service.CreateInvoice(s.GetContext(), dto.CreateInvoiceRequest{
		CustomerID:    s.customerID,
		Amount:        decimal.NewFromInt(85),
		DueDate:       time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		InvoiceNumber: "INV-2025-001",
	})
	s.NoError(err)

	sent := s.GetEmailSender().Sent
	s.Require().Len(sent, 1)
	s.Equal("milan.petrov@example.com", sent[0].CustomerEmail)
	s.Equal("INV-2025-001", sent[0].InvoiceNumber)
}

func (s *InvoiceServiceSuite) TestCreateInvoiceMirrorsToProvider() {
	resp, err := s.service.CreateInvoice(s.GetContext(), dto.CreateInvoiceRequest{
		CustomerID:    s.customerID,
		Amount:        decimal.NewFromInt(85),
		DueDate:       time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		InvoiceNumber: "INV-2025-002",
	})
	s.NoError(err)

	s.Require().Len(s.GetInvoicingMirror().Mirrored, 1)
	s.Equal("INV-2025-002", s.GetInvoicingMirror().Mirrored[0].InvoiceNumber)

	stored, err := s.service.GetInvoice(s.GetContext(), resp.ID)
	s.NoError(err)
	s.NotNil(stored.ExternalInvoiceID)
}

func (s *InvoiceServiceSuite) TestCreateInvoiceSurvivesMirrorOutage() {
	s.GetInvoicingMirror().CreateErr = ierr.NewError("provider unavailable").
		WithHint("Invoicing provider request failed").
		Mark(ierr.ErrIntegration)

	resp, err := s.service.CreateInvoice(s.GetContext(), dto.CreateInvoiceRequest{
		CustomerID: s.customerID,
		Amount:     decimal.NewFromInt(85),
		DueDate:    time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	s.NoError(err)

	stored, err := s.service.GetInvoice(s.GetContext(), resp.ID)
	s.NoError(err)
	s.Nil(stored.ExternalInvoiceID)
	s.Equal(types.InvoiceStatusSent, stored.InvoiceStatus)
}

func (s *InvoiceServiceSuite) TestCreateInvoiceSurvivesEmailFailure() {
	s.GetEmailSender().Err = ierr.NewError("smtp rejected").
		WithHint("Email provider request failed").
		Mark(ierr.ErrIntegration)

	resp, err := s.service.CreateInvoice(s.GetContext(), dto.CreateInvoiceRequest{
		CustomerID: s.customerID,
		Amount:     decimal.NewFromInt(85),
		DueDate:    time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	s.NoError(err)
	s.Equal(types.InvoiceStatusSent, resp.InvoiceStatus)
}

func (s *InvoiceServiceSuite) TestDuplicateInvoiceNumberRejected() {
	_, err := s.service.CreateInvoice(s.GetContext(), dto.CreateInvoiceRequest{
		CustomerID:    s.customerID,
		Amount:        decimal.NewFromInt(85),
		DueDate:       time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		InvoiceNumber: "INV-2025-010",
	})
	s.NoError(err)

	_, err = s.service.CreateInvoice(s.GetContext(), dto.CreateInvoiceRequest{
		CustomerID:    s.customerID,
		Amount:        decimal.NewFromInt(120),
		DueDate:       time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		InvoiceNumber: "INV-2025-010",
	})
	s.Error(err)
	s.True(ierr.IsAlreadyExists(err))
}

func (s *InvoiceServiceSuite) TestUpdateInvoiceStatusToPaidSetsPaidDate() {
	resp, err := s.service.CreateInvoice(s.GetContext(), dto.CreateInvoiceRequest{
		CustomerID: s.customerID,
		Amount:     decimal.NewFromInt(85),
		DueDate:    time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	s.NoError(err)

	paid, err := s.service.UpdateInvoiceStatus(s.GetContext(), resp.ID, dto.UpdateInvoiceStatusRequest{
		Status: types.InvoiceStatusPaid,
	})
	s.NoError(err)
	s.Equal(types.InvoiceStatusPaid, paid.InvoiceStatus)
	s.NotNil(paid.PaidAt)
}

func (s *InvoiceServiceSuite) TestInvalidStatusTransitionRejected() {
	resp, err := s.service.CreateInvoice(s.GetContext(), dto.CreateInvoiceRequest{
		CustomerID: s.customerID,
		Amount:     decimal.NewFromInt(85),
		DueDate:    time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	s.NoError(err)

	_, err = s.service.UpdateInvoiceStatus(s.GetContext(), resp.ID, dto.UpdateInvoiceStatusRequest{
		Status: types.InvoiceStatusPaid,
	})
	s.NoError(err)

	// paid is terminal except for nothing: no way back to sent
	_, err = s.service.UpdateInvoiceStatus(s.GetContext(), resp.ID, dto.UpdateInvoiceStatusRequest{
		Status: types.InvoiceStatusSent,
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *InvoiceServiceSuite) TestMarkOverdueInvoices() {
	_, err := s.service.CreateInvoice(s.GetContext(), dto.CreateInvoiceRequest{
		CustomerID:    s.customerID,
		Amount:        decimal.NewFromInt(85),
		DueDate:       time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		InvoiceNumber: "INV-2025-020",
	})
	s.NoError(err)

	_, err = s.service.CreateInvoice(s.GetContext(), dto.CreateInvoiceRequest{
		CustomerID:    s.customerID,
		Amount:        decimal.NewFromInt(85),
		DueDate:       time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		InvoiceNumber: "INV-2025-021",
	})
	s.NoError(err)

	changed, err := s.service.MarkOverdueInvoices(s.GetContext(), time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	s.NoError(err)
	s.Equal(1, changed)

	overdue, err := s.GetStores().InvoiceRepo.GetByNumber(s.GetContext(), "INV-2025-020")
	s.NoError(err)
	s.Equal(types.InvoiceStatusOverdue, overdue.InvoiceStatus)

	current, err := s.GetStores().InvoiceRepo.GetByNumber(s.GetContext(), "INV-2025-021")
	s.NoError(err)
	s.Equal(types.InvoiceStatusSent, current.InvoiceStatus)
}
