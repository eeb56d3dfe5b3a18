package testutil

import (
	"context"

	"github.com/garagio/garagio/internal/domain/maintenance"
	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/garagio/garagio/internal/types"
)

// InMemoryMaintenanceStore implements maintenance.Repository
type InMemoryMaintenanceStore struct {
	*InMemoryStore[*maintenance.Request]
}

func NewInMemoryMaintenanceStore() *InMemoryMaintenanceStore {
	return &InMemoryMaintenanceStore{
		InMemoryStore: NewInMemoryStore[*maintenance.Request](),
	}
}

func maintenanceFilterFn(ctx context.Context, r *maintenance.Request, _ interface{}) bool {
	return r.TenantID == types.GetTenantID(ctx)
}

func maintenanceSortFn(i, j *maintenance.Request) bool {
	return i.CreatedAt.Before(j.CreatedAt)
}

func (s *InMemoryMaintenanceStore) Create(ctx context.Context, r *maintenance.Request) error {
	if r == nil {
		return ierr.NewError("maintenance request cannot be nil").
			WithHint("Maintenance request cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, r.ID, r)
}

func (s *InMemoryMaintenanceStore) Get(ctx context.Context, id string) (*maintenance.Request, error) {
	r, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.TenantID != types.GetTenantID(ctx) {
		return nil, ierr.NewError("item not found").
			WithHint("The requested record does not exist").
			Mark(ierr.ErrNotFound)
	}
	return r, nil
}

func (s *InMemoryMaintenanceStore) Update(ctx context.Context, r *maintenance.Request) error {
	if _, err := s.Get(ctx, r.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, r.ID, r)
}

func (s *InMemoryMaintenanceStore) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.InMemoryStore.Delete(ctx, id)
}

func (s *InMemoryMaintenanceStore) List(ctx context.Context, filter *types.QueryFilter) ([]*maintenance.Request, error) {
	return s.InMemoryStore.List(ctx, filter, maintenanceFilterFn, maintenanceSortFn)
}

func (s *InMemoryMaintenanceStore) ListByUnit(ctx context.Context, unitID string) ([]*maintenance.Request, error) {
	return s.InMemoryStore.List(ctx, nil, func(ctx context.Context, r *maintenance.Request, _ interface{}) bool {
		return maintenanceFilterFn(ctx, r, nil) && r.UnitID == unitID
	}, maintenanceSortFn)
}

func (s *InMemoryMaintenanceStore) Count(ctx context.Context, filter *types.QueryFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, maintenanceFilterFn)
}
