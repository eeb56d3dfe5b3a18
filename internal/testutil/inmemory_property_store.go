package testutil

import (
	"context"

	"github.com/garagio/garagio/internal/domain/property"
	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/garagio/garagio/internal/types"
)

// InMemoryPropertyStore implements property.Repository
type InMemoryPropertyStore struct {
	*InMemoryStore[*property.Property]
}

func NewInMemoryPropertyStore() *InMemoryPropertyStore {
	return &InMemoryPropertyStore{
		InMemoryStore: NewInMemoryStore[*property.Property](),
	}
}

func propertyFilterFn(ctx context.Context, p *property.Property, _ interface{}) bool {
	return p.TenantID == types.GetTenantID(ctx)
}

func propertySortFn(i, j *property.Property) bool {
	return i.CreatedAt.Before(j.CreatedAt)
}

func (s *InMemoryPropertyStore) Create(ctx context.Context, p *property.Property) error {
	if p == nil {
		return ierr.NewError("property cannot be nil").
			WithHint("Property cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, p.ID, p)
}

func (s *InMemoryPropertyStore) Get(ctx context.Context, id string) (*property.Property, error) {
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.TenantID != types.GetTenantID(ctx) {
		return nil, ierr.NewError("item not found").
			WithHint("The requested record does not exist").
			Mark(ierr.ErrNotFound)
	}
	return p, nil
}

func (s *InMemoryPropertyStore) Update(ctx context.Context, p *property.Property) error {
	if _, err := s.Get(ctx, p.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, p.ID, p)
}

func (s *InMemoryPropertyStore) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.InMemoryStore.Delete(ctx, id)
}

func (s *InMemoryPropertyStore) List(ctx context.Context, filter *types.QueryFilter) ([]*property.Property, error) {
	return s.InMemoryStore.List(ctx, filter, propertyFilterFn, propertySortFn)
}

func (s *InMemoryPropertyStore) Count(ctx context.Context, filter *types.QueryFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, propertyFilterFn)
}
