package testutil

import (
	"context"

	"github.com/garagio/garagio/internal/domain/customer"
	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/garagio/garagio/internal/types"
)

// InMemoryCustomerStore implements customer.Repository
type InMemoryCustomerStore struct {
	*InMemoryStore[*customer.Customer]
}

func NewInMemoryCustomerStore() *InMemoryCustomerStore {
	return &InMemoryCustomerStore{
		InMemoryStore: NewInMemoryStore[*customer.Customer](),
	}
}

func customerFilterFn(ctx context.Context, c *customer.Customer, _ interface{}) bool {
	return c.TenantID == types.GetTenantID(ctx)
}

func customerSortFn(i, j *customer.Customer) bool {
	return i.CreatedAt.Before(j.CreatedAt)
}

func (s *InMemoryCustomerStore) Create(ctx context.Context, c *customer.Customer) error {
	if c == nil {
		return ierr.NewError("customer cannot be nil").
			WithHint("Customer cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, c.ID, c)
}

func (s *InMemoryCustomerStore) Get(ctx context.Context, id string) (*customer.Customer, error) {
	c, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.TenantID != types.GetTenantID(ctx) {
		return nil, ierr.NewError("item not found").
			WithHint("The requested record does not exist").
			Mark(ierr.ErrNotFound)
	}
	return c, nil
}

func (s *InMemoryCustomerStore) GetByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	customers, err := s.InMemoryStore.List(ctx, nil, func(ctx context.Context, c *customer.Customer, _ interface{}) bool {
		return customerFilterFn(ctx, c, nil) && c.Email == email
	}, customerSortFn)
	if err != nil {
		return nil, err
	}
	if len(customers) == 0 {
		return nil, ierr.NewError("item not found").
			WithHint("The requested record does not exist").
			Mark(ierr.ErrNotFound)
	}
	return customers[0], nil
}

func (s *InMemoryCustomerStore) Update(ctx context.Context, c *customer.Customer) error {
	if _, err := s.Get(ctx, c.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, c.ID, c)
}

func (s *InMemoryCustomerStore) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.InMemoryStore.Delete(ctx, id)
}

func (s *InMemoryCustomerStore) List(ctx context.Context, filter *types.QueryFilter) ([]*customer.Customer, error) {
	return s.InMemoryStore.List(ctx, filter, customerFilterFn, customerSortFn)
}

func (s *InMemoryCustomerStore) Count(ctx context.Context, filter *types.QueryFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, customerFilterFn)
}
