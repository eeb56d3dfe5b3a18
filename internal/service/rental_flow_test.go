package service

import (
	"testing"
	"time"

	"github.com/garagio/garagio/internal/api/dto"
	"github.com/garagio/garagio/internal/testutil"
	"github.com/garagio/garagio/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// RentalFlowSuite walks one unit through a complete rental cycle across
// the service layer: listing, contract, invoice, payment, termination.
type RentalFlowSuite struct {
	testutil.BaseServiceTestSuite
	properties PropertyService
	units      UnitService
	customers  CustomerService
	contracts  ContractService
	invoices   InvoiceService
	payments   PaymentService
}

func TestRentalFlow(t *testing.T) {
	suite.Run(t, new(RentalFlowSuite))
}

func (s *RentalFlowSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := newTestServiceParams(&s.BaseServiceTestSuite)
	s.properties = NewPropertyService(params)
	s.units = NewUnitService(params)
	s.customers = NewCustomerService(params)
	s.contracts = NewContractService(params)
	s.invoices = NewInvoiceService(params)
	s.payments = NewPaymentService(params)
}

func (s *RentalFlowSuite) TestFullRentalCycle() {
	ctx := s.GetContext()

	prop, err := s.properties.CreateProperty(ctx, dto.CreatePropertyRequest{
		Name:    "Weststadt Garagenpark",
		Address: "Gleisweg 8, 76135 Karlsruhe",
	})
	s.Require().NoError(err)

	u, err := s.units.CreateUnit(ctx, dto.CreateUnitRequest{
		PropertyID:  prop.ID,
		UnitNumber:  "C-14",
		SizeSqm:     decimal.RequireFromString("13.5"),
		MonthlyRate: decimal.RequireFromString("85.00"),
	})
	s.Require().NoError(err)
	s.False(u.Occupied)

	cust, err := s.customers.CreateCustomer(ctx, dto.CreateCustomerRequest{
		Name:  "Franka Siebert",
		Email: "franka.siebert@example.com",
	})
	s.Require().NoError(err)

	contract, err := s.contracts.CreateContract(ctx, dto.CreateContractRequest{
		UnitID:      u.ID,
		CustomerID:  cust.ID,
		StartDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		MonthlyRent: decimal.RequireFromString("85.00"),
	})
	s.Require().NoError(err)
	s.Equal(types.ContractStatusActive, contract.ContractStatus)

	u2, err := s.units.GetUnit(ctx, u.ID)
	s.Require().NoError(err)
	s.True(u2.Occupied)

	inv, err := s.invoices.CreateInvoice(ctx, dto.CreateInvoiceRequest{
		CustomerID:  cust.ID,
		ContractID:  lo.ToPtr(contract.ID),
		Amount:      decimal.RequireFromString("85.00"),
		DueDate:     time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Description: "Rent January 2025, unit C-14",
	})
	s.Require().NoError(err)
	s.Equal(types.InvoiceStatusSent, inv.InvoiceStatus)
	s.Len(s.GetEmailSender().Sent, 1)

	paymentDate := time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)
	_, err = s.payments.RecordPayment(ctx, dto.RecordPaymentRequest{
		InvoiceID:       inv.ID,
		Amount:          decimal.RequireFromString("85.00"),
		PaymentDate:     paymentDate,
		Method:          types.PaymentMethodTransfer,
		ReferenceNumber: lo.ToPtr("SEPA-2025-0112"),
	})
	s.Require().NoError(err)

	paidInv, err := s.invoices.GetInvoice(ctx, inv.ID)
	s.Require().NoError(err)
	s.Equal(types.InvoiceStatusPaid, paidInv.InvoiceStatus)
	s.Require().NotNil(paidInv.PaidAt)
	s.Equal(paymentDate, *paidInv.PaidAt)

	_, err = s.contracts.UpdateContractStatus(ctx, contract.ID, dto.UpdateContractStatusRequest{
		Status: types.ContractStatusTerminated,
	})
	s.Require().NoError(err)

	u3, err := s.units.GetUnit(ctx, u.ID)
	s.Require().NoError(err)
	s.False(u3.Occupied)

	// The ledger and invoice history survive the contract ending
	payments, err := s.payments.ListPaymentsByInvoice(ctx, inv.ID)
	s.Require().NoError(err)
	s.Len(payments.Items, 1)
}
