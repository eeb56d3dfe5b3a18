package testutil

import (
	"context"

	"github.com/garagio/garagio/internal/domain/appointment"
	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/garagio/garagio/internal/types"
)

// InMemoryAppointmentStore implements appointment.Repository
type InMemoryAppointmentStore struct {
	*InMemoryStore[*appointment.Appointment]
}

func NewInMemoryAppointmentStore() *InMemoryAppointmentStore {
	return &InMemoryAppointmentStore{
		InMemoryStore: NewInMemoryStore[*appointment.Appointment](),
	}
}

func appointmentFilterFn(ctx context.Context, a *appointment.Appointment, _ interface{}) bool {
	return a.TenantID == types.GetTenantID(ctx)
}

func appointmentSortFn(i, j *appointment.Appointment) bool {
	return i.ScheduledAt.Before(j.ScheduledAt)
}

func (s *InMemoryAppointmentStore) Create(ctx context.Context, a *appointment.Appointment) error {
	if a == nil {
		return ierr.NewError("appointment cannot be nil").
			WithHint("Appointment cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, a.ID, a)
}

func (s *InMemoryAppointmentStore) Get(ctx context.Context, id string) (*appointment.Appointment, error) {
	a, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.TenantID != types.GetTenantID(ctx) {
		return nil, ierr.NewError("item not found").
			WithHint("The requested record does not exist").
			Mark(ierr.ErrNotFound)
	}
	return a, nil
}

func (s *InMemoryAppointmentStore) Update(ctx context.Context, a *appointment.Appointment) error {
	if _, err := s.Get(ctx, a.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, a.ID, a)
}

func (s *InMemoryAppointmentStore) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.InMemoryStore.Delete(ctx, id)
}

func (s *InMemoryAppointmentStore) List(ctx context.Context, filter *types.QueryFilter) ([]*appointment.Appointment, error) {
	return s.InMemoryStore.List(ctx, filter, appointmentFilterFn, appointmentSortFn)
}

func (s *InMemoryAppointmentStore) ListByCustomer(ctx context.Context, customerID string) ([]*appointment.Appointment, error) {
	return s.InMemoryStore.List(ctx, nil, func(ctx context.Context, a *appointment.Appointment, _ interface{}) bool {
		return appointmentFilterFn(ctx, a, nil) && a.CustomerID == customerID
	}, appointmentSortFn)
}

func (s *InMemoryAppointmentStore) Count(ctx context.Context, filter *types.QueryFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, appointmentFilterFn)
}
