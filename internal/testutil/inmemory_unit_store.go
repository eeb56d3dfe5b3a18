package testutil

import (
	"context"
	"time"

	"github.com/garagio/garagio/internal/domain/unit"
	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/garagio/garagio/internal/types"
)

// InMemoryUnitStore implements unit.Repository
type InMemoryUnitStore struct {
	*InMemoryStore[*unit.Unit]
}

func NewInMemoryUnitStore() *InMemoryUnitStore {
	return &InMemoryUnitStore{
		InMemoryStore: NewInMemoryStore[*unit.Unit](),
	}
}

func unitFilterFn(ctx context.Context, u *unit.Unit, _ interface{}) bool {
	return u.TenantID == types.GetTenantID(ctx)
}

func unitSortFn(i, j *unit.Unit) bool {
	return i.CreatedAt.Before(j.CreatedAt)
}

func (s *InMemoryUnitStore) Create(ctx context.Context, u *unit.Unit) error {
	if u == nil {
		return ierr.NewError("unit cannot be nil").
			WithHint("Unit cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, u.ID, u)
}

func (s *InMemoryUnitStore) Get(ctx context.Context, id string) (*unit.Unit, error) {
	u, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.TenantID != types.GetTenantID(ctx) {
		return nil, ierr.NewError("item not found").
			WithHint("The requested record does not exist").
			Mark(ierr.ErrNotFound)
	}
	return u, nil
}

func (s *InMemoryUnitStore) Update(ctx context.Context, u *unit.Unit) error {
	if _, err := s.Get(ctx, u.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, u.ID, u)
}

func (s *InMemoryUnitStore) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.InMemoryStore.Delete(ctx, id)
}

func (s *InMemoryUnitStore) List(ctx context.Context, filter *types.QueryFilter) ([]*unit.Unit, error) {
	return s.InMemoryStore.List(ctx, filter, unitFilterFn, unitSortFn)
}

func (s *InMemoryUnitStore) ListByProperty(ctx context.Context, propertyID string) ([]*unit.Unit, error) {
	return s.InMemoryStore.List(ctx, nil, func(ctx context.Context, u *unit.Unit, _ interface{}) bool {
		return unitFilterFn(ctx, u, nil) && u.PropertyID == propertyID
	}, unitSortFn)
}

func (s *InMemoryUnitStore) Count(ctx context.Context, filter *types.QueryFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, unitFilterFn)
}

// SetOccupied flips the occupancy flag. A missing unit is a no-op to match
// the delete cascade semantics of the real repository.
func (s *InMemoryUnitStore) SetOccupied(ctx context.Context, id string, occupied bool) error {
	u, err := s.Get(ctx, id)
	if err != nil {
		if ierr.IsNotFound(err) {
			return nil
		}
		return err
	}

	u.Occupied = occupied
	u.UpdatedAt = time.Now().UTC()
	return s.InMemoryStore.Update(ctx, id, u)
}
