package service

import (
	"testing"

	"github.com/garagio/garagio/internal/api/dto"
	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/garagio/garagio/internal/testutil"
	"github.com/garagio/garagio/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type MaintenanceServiceSuite struct {
	testutil.BaseServiceTestSuite
	service    MaintenanceService
	unitID     string
	customerID string
}

func TestMaintenanceService(t *testing.T) {
	suite.Run(t, new(MaintenanceServiceSuite))
}

func (s *MaintenanceServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := newTestServiceParams(&s.BaseServiceTestSuite)
	s.service = NewMaintenanceService(params)

	propertyService := NewPropertyService(params)
	unitService := NewUnitService(params)
	customerService := NewCustomerService(params)

	prop, err := propertyService.CreateProperty(s.GetContext(), dto.CreatePropertyRequest{
		Name:    "Südhof Garagen",
		Address: "Südhofstraße 3, 44135 Dortmund",
	})
	s.Require().NoError(err)

	u, err := unitService.CreateUnit(s.GetContext(), dto.CreateUnitRequest{
		PropertyID:  prop.ID,
		UnitNumber:  "B-07",
		MonthlyRate: decimal.NewFromInt(95),
	})
	s.Require().NoError(err)
	s.unitID = u.ID

	cust, err := customerService.CreateCustomer(s.GetContext(), dto.CreateCustomerRequest{
		Name:  "Omar Haddad",
		Email: "omar.haddad@example.com",
	})
	s.Require().NoError(err)
	s.customerID = cust.ID
}

func (s *MaintenanceServiceSuite) TestCreateDefaultsToPendingMedium() {
	resp, err := s.service.CreateMaintenanceRequest(s.GetContext(), dto.CreateMaintenanceRequestRequest{
		UnitID:     s.unitID,
		CustomerID: s.customerID,
		Title:      "Garage door jams halfway",
	})
	s.NoError(err)
	s.Equal(types.MaintenanceStatusPending, resp.RequestStatus)
	s.Equal(types.MaintenancePriorityMedium, resp.Priority)
	s.Nil(resp.ResolvedAt)
}

func (s *MaintenanceServiceSuite) TestCreateRejectsUnknownUnit() {
	_, err := s.service.CreateMaintenanceRequest(s.GetContext(), dto.CreateMaintenanceRequestRequest{
		UnitID:     "unit_missing",
		CustomerID: s.customerID,
		Title:      "Leaking roof",
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *MaintenanceServiceSuite) TestCompletionStampsResolvedAt() {
	resp, err := s.service.CreateMaintenanceRequest(s.GetContext(), dto.CreateMaintenanceRequestRequest{
		UnitID:     s.unitID,
		CustomerID: s.customerID,
		Title:      "Broken lock",
		Priority:   types.MaintenancePriorityHigh,
	})
	s.NoError(err)

	updated, err := s.service.UpdateMaintenanceRequest(s.GetContext(), resp.ID, dto.UpdateMaintenanceRequestRequest{
		RequestStatus: lo.ToPtr(types.MaintenanceStatusInProgress),
		AssignedTo:    lo.ToPtr("Hausmeister Krause"),
	})
	s.NoError(err)
	s.Equal(types.MaintenanceStatusInProgress, updated.RequestStatus)
	s.Nil(updated.ResolvedAt)

	updated, err = s.service.UpdateMaintenanceRequest(s.GetContext(), resp.ID, dto.UpdateMaintenanceRequestRequest{
		RequestStatus: lo.ToPtr(types.MaintenanceStatusCompleted),
	})
	s.NoError(err)
	s.Equal(types.MaintenanceStatusCompleted, updated.RequestStatus)
	s.NotNil(updated.ResolvedAt)
}

func (s *MaintenanceServiceSuite) TestUpdateRejectsInvalidStatus() {
	resp, err := s.service.CreateMaintenanceRequest(s.GetContext(), dto.CreateMaintenanceRequestRequest{
		UnitID:     s.unitID,
		CustomerID: s.customerID,
		Title:      "Flickering light",
	})
	s.NoError(err)

	_, err = s.service.UpdateMaintenanceRequest(s.GetContext(), resp.ID, dto.UpdateMaintenanceRequestRequest{
		RequestStatus: lo.ToPtr(types.MaintenanceStatus("escalated")),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *MaintenanceServiceSuite) TestDelete() {
	resp, err := s.service.CreateMaintenanceRequest(s.GetContext(), dto.CreateMaintenanceRequestRequest{
		UnitID:     s.unitID,
		CustomerID: s.customerID,
		Title:      "Graffiti removal",
	})
	s.NoError(err)

	s.NoError(s.service.DeleteMaintenanceRequest(s.GetContext(), resp.ID))

	_, err = s.service.GetMaintenanceRequest(s.GetContext(), resp.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
