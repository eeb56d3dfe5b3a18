package service

import (
	"context"

	"github.com/garagio/garagio/internal/api/dto"
	"github.com/garagio/garagio/internal/types"
)

type AppointmentService interface {
	CreateAppointment(ctx context.Context, req dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id string) (*dto.AppointmentResponse, error)
	ListAppointments(ctx context.Context, filter *types.QueryFilter) (*dto.ListAppointmentsResponse, error)
	UpdateAppointment(ctx context.Context, id string, req dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, id string) error
}

type appointmentService struct {
	ServiceParams
}

func NewAppointmentService(params ServiceParams) AppointmentService {
	return &appointmentService{
		ServiceParams: params,
	}
}

func (s *appointmentService) CreateAppointment(ctx context.Context, req dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if _, err := s.CustomerRepo.Get(ctx, req.CustomerID); err != nil {
		return nil, err
	}
	if req.UnitID != nil {
		if _, err := s.UnitRepo.Get(ctx, *req.UnitID); err != nil {
			return nil, err
		}
	}

	a := req.ToAppointment(ctx)

	if err := a.Validate(); err != nil {
		return nil, err
	}

	if err := s.AppointmentRepo.Create(ctx, a); err != nil {
		return nil, err
	}

	return dto.NewAppointmentResponse(a), nil
}

func (s *appointmentService) GetAppointment(ctx context.Context, id string) (*dto.AppointmentResponse, error) {
	a, err := s.AppointmentRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewAppointmentResponse(a), nil
}

func (s *appointmentService) ListAppointments(ctx context.Context, filter *types.QueryFilter) (*dto.ListAppointmentsResponse, error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	appointments, err := s.AppointmentRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	count, err := s.AppointmentRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.AppointmentResponse, len(appointments))
	for i, a := range appointments {
		items[i] = dto.NewAppointmentResponse(a)
	}

	return &dto.ListAppointmentsResponse{
		Items:      items,
		Pagination: types.NewPaginationResponse(count, filter.GetLimit(), filter.GetOffset()),
	}, nil
}

func (s *appointmentService) UpdateAppointment(ctx context.Context, id string, req dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	a, err := s.AppointmentRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ScheduledAt != nil {
		a.ScheduledAt = *req.ScheduledAt
	}
	if req.Purpose != nil {
		a.Purpose = *req.Purpose
	}
	if req.Notes != nil {
		a.Notes = *req.Notes
	}
	if req.AppointmentStatus != nil {
		a.AppointmentStatus = *req.AppointmentStatus
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}

	if err := s.AppointmentRepo.Update(ctx, a); err != nil {
		return nil, err
	}

	return dto.NewAppointmentResponse(a), nil
}

func (s *appointmentService) DeleteAppointment(ctx context.Context, id string) error {
	if _, err := s.AppointmentRepo.Get(ctx, id); err != nil {
		return err
	}
	return s.AppointmentRepo.Delete(ctx, id)
}
