package service

import (
	"context"
	"time"

	"github.com/garagio/garagio/internal/api/dto"
	"github.com/garagio/garagio/internal/types"
	"github.com/samber/lo"
)

type MaintenanceService interface {
	CreateMaintenanceRequest(ctx context.Context, req dto.CreateMaintenanceRequestRequest) (*dto.MaintenanceRequestResponse, error)
	GetMaintenanceRequest(ctx context.Context, id string) (*dto.MaintenanceRequestResponse, error)
	ListMaintenanceRequests(ctx context.Context, filter *types.QueryFilter) (*dto.ListMaintenanceRequestsResponse, error)
	UpdateMaintenanceRequest(ctx context.Context, id string, req dto.UpdateMaintenanceRequestRequest) (*dto.MaintenanceRequestResponse, error)
	DeleteMaintenanceRequest(ctx context.Context, id string) error
}

type maintenanceService struct {
	ServiceParams
}

func NewMaintenanceService(params ServiceParams) MaintenanceService {
	return &maintenanceService{
		ServiceParams: params,
	}
}

func (s *maintenanceService) CreateMaintenanceRequest(ctx context.Context, req dto.CreateMaintenanceRequestRequest) (*dto.MaintenanceRequestResponse, error) {
	if _, err := s.UnitRepo.Get(ctx, req.UnitID); err != nil {
		return nil, err
	}
	if _, err := s.CustomerRepo.Get(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	r := req.ToMaintenanceRequest(ctx)

	if err := r.Validate(); err != nil {
		return nil, err
	}

	if err := s.MaintenanceRepo.Create(ctx, r); err != nil {
		return nil, err
	}

	return dto.NewMaintenanceRequestResponse(r), nil
}

func (s *maintenanceService) GetMaintenanceRequest(ctx context.Context, id string) (*dto.MaintenanceRequestResponse, error) {
	r, err := s.MaintenanceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewMaintenanceRequestResponse(r), nil
}

func (s *maintenanceService) ListMaintenanceRequests(ctx context.Context, filter *types.QueryFilter) (*dto.ListMaintenanceRequestsResponse, error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	requests, err := s.MaintenanceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	count, err := s.MaintenanceRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.MaintenanceRequestResponse, len(requests))
	for i, r := range requests {
		items[i] = dto.NewMaintenanceRequestResponse(r)
	}

	return &dto.ListMaintenanceRequestsResponse{
		Items:      items,
		Pagination: types.NewPaginationResponse(count, filter.GetLimit(), filter.GetOffset()),
	}, nil
}

func (s *maintenanceService) UpdateMaintenanceRequest(ctx context.Context, id string, req dto.UpdateMaintenanceRequestRequest) (*dto.MaintenanceRequestResponse, error) {
	r, err := s.MaintenanceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		r.Title = *req.Title
	}
	if req.Description != nil {
		r.Description = *req.Description
	}
	if req.Priority != nil {
		r.Priority = *req.Priority
	}
	if req.RequestStatus != nil {
		r.RequestStatus = *req.RequestStatus
		// Completing a request stamps the resolution time unless the
		// caller supplied one
		if *req.RequestStatus == types.MaintenanceStatusCompleted && req.ResolvedAt == nil && r.ResolvedAt == nil {
			r.ResolvedAt = lo.ToPtr(time.Now().UTC())
		}
	}
	if req.AssignedTo != nil {
		r.AssignedTo = req.AssignedTo
	}
	if req.ResolvedAt != nil {
		r.ResolvedAt = req.ResolvedAt
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}

	if err := s.MaintenanceRepo.Update(ctx, r); err != nil {
		return nil, err
	}

	return dto.NewMaintenanceRequestResponse(r), nil
}

func (s *maintenanceService) DeleteMaintenanceRequest(ctx context.Context, id string) error {
	if _, err := s.MaintenanceRepo.Get(ctx, id); err != nil {
		return err
	}
	return s.MaintenanceRepo.Delete(ctx, id)
}
