package testutil

import (
	"context"

	"github.com/garagio/garagio/internal/domain/contract"
	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/garagio/garagio/internal/types"
)

// InMemoryContractStore implements contract.Repository
type InMemoryContractStore struct {
	*InMemoryStore[*contract.Contract]
}

func NewInMemoryContractStore() *InMemoryContractStore {
	return &InMemoryContractStore{
		InMemoryStore: NewInMemoryStore[*contract.Contract](),
	}
}

func contractFilterFn(ctx context.Context, c *contract.Contract, _ interface{}) bool {
	return c.TenantID == types.GetTenantID(ctx)
}

func contractSortFn(i, j *contract.Contract) bool {
	return i.CreatedAt.Before(j.CreatedAt)
}

func (s *InMemoryContractStore) Create(ctx context.Context, c *contract.Contract) error {
	if c == nil {
		return ierr.NewError("contract cannot be nil").
			WithHint("Contract cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, c.ID, c)
}

func (s *InMemoryContractStore) Get(ctx context.Context, id string) (*contract.Contract, error) {
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

func (s *InMemoryContractStore) Update(ctx context.Context, c *contract.Contract) error {
	if _, err := s.Get(ctx, c.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, c.ID, c)
}

func (s *InMemoryContractStore) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.InMemoryStore.Delete(ctx, id)
}

func (s *InMemoryContractStore) List(ctx context.Context, filter *types.QueryFilter) ([]*contract.Contract, error) {
	return s.InMemoryStore.List(ctx, filter, contractFilterFn, contractSortFn)
}

func (s *InMemoryContractStore) ListByUnit(ctx context.Context, unitID string) ([]*contract.Contract, error) {
	return s.InMemoryStore.List(ctx, nil, func(ctx context.Context, c *contract.Contract, _ interface{}) bool {
		return contractFilterFn(ctx, c, nil) && c.UnitID == unitID
	}, contractSortFn)
}

func (s *InMemoryContractStore) ListByCustomer(ctx context.Context, customerID string) ([]*contract.Contract, error) {
	return s.InMemoryStore.List(ctx, nil, func(ctx context.Context, c *contract.Contract, _ interface{}) bool {
		return contractFilterFn(ctx, c, nil) && c.CustomerID == customerID
	}, contractSortFn)
}

func (s *InMemoryContractStore) Count(ctx context.Context, filter *types.QueryFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, contractFilterFn)
}

func (s *InMemoryContractStore) GetActiveByUnit(ctx context.Context, unitID string) (*contract.Contract, error) {
	contracts, err := s.InMemoryStore.List(ctx, nil, func(ctx context.Context, c *contract.Contract, _ interface{}) bool {
		return contractFilterFn(ctx, c, nil) &&
			c.UnitID == unitID &&
			c.ContractStatus == types.ContractStatusActive
	}, contractSortFn)
	if err != nil {
		return nil, err
	}
	if len(contracts) == 0 {
		return nil, ierr.NewError("item not found").
			WithHint("The requested record does not exist").
			Mark(ierr.ErrNotFound)
	}
	return contracts[0], nil
}
