package service

import (
	"fmt"
	"testing"

	"github.com/garagio/garagio/internal/api/dto"
	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/garagio/garagio/internal/testutil"
	"github.com/garagio/garagio/internal/types"
	"github.com/stretchr/testify/suite"
)

type LeadServiceSuite struct {
	testutil.BaseServiceTestSuite
	service LeadService
}

func TestLeadService(t *testing.T) {
	suite.Run(t, new(LeadServiceSuite))
}

func (s *LeadServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewLeadService(newTestServiceParams(&s.BaseServiceTestSuite))
}

func (s *LeadServiceSuite) TestCreateLeadStartsNew() {
	resp, err := s.service.CreateLead(s.GetContext(), dto.CreateLeadRequest{
		Name:    "Theresa Vogel",
		Email:   "theresa.vogel@example.com",
		Message: "Is the 12sqm garage on Nordring still available?",
		Source:  "landing_page",
	})
	s.NoError(err)
	s.Equal(types.LeadStatusNew, resp.LeadStatus)
	s.NotEmpty(resp.ID)
}

func (s *LeadServiceSuite) TestCreateLeadRequiresName() {
	_, err := s.service.CreateLead(s.GetContext(), dto.CreateLeadRequest{
		Message: "anonymous enquiry",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *LeadServiceSuite) TestUpdateLeadStatus() {
	resp, err := s.service.CreateLead(s.GetContext(), dto.CreateLeadRequest{
		Name:  "Victor Lang",
		Phone: "+49 171 5556677",
	})
	s.NoError(err)

	updated, err := s.service.UpdateLeadStatus(s.GetContext(), resp.ID, dto.UpdateLeadStatusRequest{
		LeadStatus: types.LeadStatusContacted,
	})
	s.NoError(err)
	s.Equal(types.LeadStatusContacted, updated.LeadStatus)

	_, err = s.service.UpdateLeadStatus(s.GetContext(), resp.ID, dto.UpdateLeadStatusRequest{
		LeadStatus: types.LeadStatus("archived"),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *LeadServiceSuite) TestListLeads() {
	for i, name := range []string{"Lead One", "Lead Two", "Lead Three"} {
		_, err := s.service.CreateLead(s.GetContext(), dto.CreateLeadRequest{
			Name:  name,
			Email: fmt.Sprintf("lead%d@example.com", i+1),
		})
		s.NoError(err)
	}

	resp, err := s.service.ListLeads(s.GetContext(), nil)
	s.NoError(err)
	s.Len(resp.Items, 3)
	s.Equal(3, resp.Pagination.Total)
}
