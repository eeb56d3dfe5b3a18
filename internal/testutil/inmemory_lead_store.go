package testutil

import (
	"context"

	"github.com/garagio/garagio/internal/domain/lead"
	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/garagio/garagio/internal/types"
)

// InMemoryLeadStore implements lead.Repository
type InMemoryLeadStore struct {
	*InMemoryStore[*lead.Lead]
}

func NewInMemoryLeadStore() *InMemoryLeadStore {
	return &InMemoryLeadStore{
		InMemoryStore: NewInMemoryStore[*lead.Lead](),
	}
}

func leadFilterFn(ctx context.Context, l *lead.Lead, _ interface{}) bool {
	return l.TenantID == types.GetTenantID(ctx)
}

func leadSortFn(i, j *lead.Lead) bool {
	return i.CreatedAt.Before(j.CreatedAt)
}

func (s *InMemoryLeadStore) Create(ctx context.Context, l *lead.Lead) error {
	if l == nil {
		return ierr.NewError("lead cannot be nil").
			WithHint("Lead cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, l.ID, l)
}

func (s *InMemoryLeadStore) Get(ctx context.Context, id string) (*lead.Lead, error) {
	l, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if l.TenantID != types.GetTenantID(ctx) {
		return nil, ierr.NewError("item not found").
			WithHint("The requested record does not exist").
			Mark(ierr.ErrNotFound)
	}
	return l, nil
}

func (s *InMemoryLeadStore) Update(ctx context.Context, l *lead.Lead) error {
	if _, err := s.Get(ctx, l.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, l.ID, l)
}

func (s *InMemoryLeadStore) List(ctx context.Context, filter *types.QueryFilter) ([]*lead.Lead, error) {
	return s.InMemoryStore.List(ctx, filter, leadFilterFn, leadSortFn)
}

func (s *InMemoryLeadStore) Count(ctx context.Context, filter *types.QueryFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, leadFilterFn)
}
