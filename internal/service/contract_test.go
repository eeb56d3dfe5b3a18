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

type ContractServiceSuite struct {
	testutil.BaseServiceTestSuite
	service         ContractService
	unitService     UnitService
	propertyService PropertyService
	customerService CustomerService
}

func TestContractService(t *testing.T) {
	suite.Run(t, new(ContractServiceSuite))
}

func (s *ContractServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := newTestServiceParams(&s.BaseServiceTestSuite)
	s.service = NewContractService(params)
	s.unitService = NewUnitService(params)
	s.propertyService = NewPropertyService(params)
	s.customerService = NewCustomerService(params)
}

func (s *ContractServiceSuite) createTestUnit() string {
	prop, err := s.propertyService.CreateProperty(s.GetContext(), dto.CreatePropertyRequest{
		Name:    "Nordring Garagenhof",
		Address: "Nordring 12, 34117 Kassel",
	})
	s.NoError(err)

	u, err := s.unitService.CreateUnit(s.GetContext(), dto.CreateUnitRequest{
		PropertyID:  prop.ID,
		UnitNumber:  "A-01",
		MonthlyRate: decimal.NewFromInt(85),
	})
	s.NoError(err)
	return u.ID
}

func (s *ContractServiceSuite) createTestCustomer() string {
	cust, err := s.customerService.CreateCustomer(s.GetContext(), dto.CreateCustomerRequest{
		Name:  "Jana Brandt",
		Email: "jana.brandt@example.com",
	})
	s.NoError(err)
	return cust.ID
}

func (s *ContractServiceSuite) TestCreateContractMarksUnitOccupied() {
	unitID := s.createTestUnit()
	customerID := s.createTestCustomer()

	resp, err := s.service.CreateContract(s.GetContext(), dto.CreateContractRequest{
		UnitID:      unitID,
		CustomerID:  customerID,
		StartDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		MonthlyRent: decimal.RequireFromString("85.00"),
	})
	s.NoError(err)
	s.Equal(types.ContractStatusActive, resp.ContractStatus)

	u, err := s.unitService.GetUnit(s.GetContext(), unitID)
	s.NoError(err)
	s.True(u.Occupied)
}

func (s *ContractServiceSuite) TestCreateContractRejectsSecondActive() {
	unitID := s.createTestUnit()
	customerID := s.createTestCustomer()

	_, err := s.service.CreateContract(s.GetContext(), dto.CreateContractRequest{
		UnitID:      unitID,
		CustomerID:  customerID,
		StartDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		MonthlyRent: decimal.NewFromInt(85),
	})
	s.NoError(err)

	_, err = s.service.CreateContract(s.GetContext(), dto.CreateContractRequest{
		UnitID:      unitID,
		CustomerID:  customerID,
		StartDate:   time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		MonthlyRent: decimal.NewFromInt(90),
	})
	s.Error(err)
	s.True(ierr.IsAlreadyExists(err))
}

func (s *ContractServiceSuite) TestCreateContractValidation() {
	unitID := s.createTestUnit()
	customerID := s.createTestCustomer()

	// zero rent
	_, err := s.service.CreateContract(s.GetContext(), dto.CreateContractRequest{
		UnitID:      unitID,
		CustomerID:  customerID,
		StartDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		MonthlyRent: decimal.Zero,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	// end before start
	_, err = s.service.CreateContract(s.GetContext(), dto.CreateContractRequest{
		UnitID:      unitID,
		CustomerID:  customerID,
		StartDate:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     lo.ToPtr(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		MonthlyRent: decimal.NewFromInt(85),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	// unknown unit
	_, err = s.service.CreateContract(s.GetContext(), dto.CreateContractRequest{
		UnitID:      "unit_missing",
		CustomerID:  customerID,
		StartDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		MonthlyRent: decimal.NewFromInt(85),
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *ContractServiceSuite) TestTerminateVacatesUnit() {
	unitID := s.createTestUnit()
	customerID := s.createTestCustomer()

	resp, err := s.service.CreateContract(s.GetContext(), dto.CreateContractRequest{
		UnitID:      unitID,
		CustomerID:  customerID,
		StartDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		MonthlyRent: decimal.NewFromInt(85),
	})
	s.NoError(err)

	terminated, err := s.service.UpdateContractStatus(s.GetContext(), resp.ID, dto.UpdateContractStatusRequest{
		Status: types.ContractStatusTerminated,
	})
	s.NoError(err)
	s.Equal(types.ContractStatusTerminated, terminated.ContractStatus)

	u, err := s.unitService.GetUnit(s.GetContext(), unitID)
	s.NoError(err)
	s.False(u.Occupied)
}

func (s *ContractServiceSuite) TestTerminateTwiceIsNoOp() {
	unitID := s.createTestUnit()
	customerID := s.createTestCustomer()

	resp, err := s.service.CreateContract(s.GetContext(), dto.CreateContractRequest{
		UnitID:      unitID,
		CustomerID:  customerID,
		StartDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		MonthlyRent: decimal.NewFromInt(85),
	})
	s.NoError(err)

	_, err = s.service.UpdateContractStatus(s.GetContext(), resp.ID, dto.UpdateContractStatusRequest{
		Status: types.ContractStatusTerminated,
	})
	s.NoError(err)

	// Repeating the terminal status succeeds without error
	again, err := s.service.UpdateContractStatus(s.GetContext(), resp.ID, dto.UpdateContractStatusRequest{
		Status: types.ContractStatusTerminated,
	})
	s.NoError(err)
	s.Equal(types.ContractStatusTerminated, again.ContractStatus)

	u, err := s.unitService.GetUnit(s.GetContext(), unitID)
	s.NoError(err)
	s.False(u.Occupied)
}

func (s *ContractServiceSuite) TestTerminalContractCannotReactivate() {
	unitID := s.createTestUnit()
	customerID := s.createTestCustomer()

	resp, err := s.service.CreateContract(s.GetContext(), dto.CreateContractRequest{
		UnitID:      unitID,
		CustomerID:  customerID,
		StartDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		MonthlyRent: decimal.NewFromInt(85),
	})
	s.NoError(err)

	_, err = s.service.UpdateContractStatus(s.GetContext(), resp.ID, dto.UpdateContractStatusRequest{
		Status: types.ContractStatusExpired,
	})
	s.NoError(err)

	_, err = s.service.UpdateContractStatus(s.GetContext(), resp.ID, dto.UpdateContractStatusRequest{
		Status: types.ContractStatusActive,
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *ContractServiceSuite) TestUnitFreedAfterTerminationAcceptsNewContract() {
	unitID := s.createTestUnit()
	customerID := s.createTestCustomer()

	first, err := s.service.CreateContract(s.GetContext(), dto.CreateContractRequest{
		UnitID:      unitID,
		CustomerID:  customerID,
		StartDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		MonthlyRent: decimal.NewFromInt(85),
	})
	s.NoError(err)

	_, err = s.service.UpdateContractStatus(s.GetContext(), first.ID, dto.UpdateContractStatusRequest{
		Status: types.ContractStatusTerminated,
	})
	s.NoError(err)

	second, err := s.service.CreateContract(s.GetContext(), dto.CreateContractRequest{
		UnitID:      unitID,
		CustomerID:  customerID,
		StartDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		MonthlyRent: decimal.NewFromInt(95),
	})
	s.NoError(err)
	s.Equal(types.ContractStatusActive, second.ContractStatus)
}

func (s *ContractServiceSuite) TestDeleteActiveContractVacatesUnit() {
	unitID := s.createTestUnit()
	customerID := s.createTestCustomer()

	resp, err := s.service.CreateContract(s.GetContext(), dto.CreateContractRequest{
		UnitID:      unitID,
		CustomerID:  customerID,
		StartDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		MonthlyRent: decimal.NewFromInt(85),
	})
	s.NoError(err)

	err = s.service.DeleteContract(s.GetContext(), resp.ID)
	s.NoError(err)

	u, err := s.unitService.GetUnit(s.GetContext(), unitID)
	s.NoError(err)
	s.False(u.Occupied)
}

func (s *ContractServiceSuite) TestDeleteUnitCascadesContracts() {
	unitID := s.createTestUnit()
	customerID := s.createTestCustomer()

	resp, err := s.service.CreateContract(s.GetContext(), dto.CreateContractRequest{
		UnitID:      unitID,
		CustomerID:  customerID,
		StartDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		MonthlyRent: decimal.NewFromInt(85),
	})
	s.NoError(err)

	err = s.unitService.DeleteUnit(s.GetContext(), unitID)
	s.NoError(err)

	_, err = s.service.GetContract(s.GetContext(), resp.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
