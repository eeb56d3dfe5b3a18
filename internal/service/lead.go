package service

import (
	"context"

	"github.com/garagio/garagio/internal/api/dto"
	"github.com/garagio/garagio/internal/types"
)

type LeadService interface {
	CreateLead(ctx context.Context, req dto.CreateLeadRequest) (*dto.LeadResponse, error)
	GetLead(ctx context.Context, id string) (*dto.LeadResponse, error)
	ListLeads(ctx context.Context, filter *types.QueryFilter) (*dto.ListLeadsResponse, error)
	UpdateLeadStatus(ctx context.Context, id string, req dto.UpdateLeadStatusRequest) (*dto.LeadResponse, error)
}

type leadService struct {
	ServiceParams
}

func NewLeadService(params ServiceParams) LeadService {
	return &leadService{
		ServiceParams: params,
	}
}

// CreateLead captures an enquiry from the public landing page. The caller
// is unauthenticated, so nothing beyond the submitted contact fields is
// trusted.
func (s *leadService) CreateLead(ctx context.Context, req dto.CreateLeadRequest) (*dto.LeadResponse, error) {
	l := req.ToLead(ctx)

	if err := l.Validate(); err != nil {
		return nil, err
	}

	if err := s.LeadRepo.Create(ctx, l); err != nil {
		return nil, err
	}

	s.Logger.Infow("lead captured", "lead_id", l.ID, "source", l.Source)

	return dto.NewLeadResponse(l), nil
}

func (s *leadService) GetLead(ctx context.Context, id string) (*dto.LeadResponse, error) {
	l, err := s.LeadRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewLeadResponse(l), nil
}

func (s *leadService) ListLeads(ctx context.Context, filter *types.QueryFilter) (*dto.ListLeadsResponse, error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	leads, err := s.LeadRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	count, err := s.LeadRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.LeadResponse, len(leads))
	for i, l := range leads {
		items[i] = dto.NewLeadResponse(l)
	}

	return &dto.ListLeadsResponse{
		Items:      items,
		Pagination: types.NewPaginationResponse(count, filter.GetLimit(), filter.GetOffset()),
	}, nil
}

func (s *leadService) UpdateLeadStatus(ctx context.Context, id string, req dto.UpdateLeadStatusRequest) (*dto.LeadResponse, error) {
	if err := req.LeadStatus.Validate(); err != nil {
		return nil, err
	}

	l, err := s.LeadRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	l.LeadStatus = req.LeadStatus

	if err := s.LeadRepo.Update(ctx, l); err != nil {
		return nil, err
	}

	return dto.NewLeadResponse(l), nil
}
