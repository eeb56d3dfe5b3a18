package contract

import (
	"context"

	"github.com/garagio/garagio/internal/types"
)

// Repository defines persistence operations for contracts
type Repository interface {
	Create(ctx context.Context, c *Contract) error
	Get(ctx context.Context, id string) (*Contract, error)
	Update(ctx context.Context, c *Contract) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter *types.QueryFilter) ([]*Contract, error)
	ListByUnit(ctx context.Context, unitID string) ([]*Contract, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*Contract, error)
	Count(ctx context.Context, filter *types.QueryFilter) (int, error)

	// GetActiveByUnit returns the active contract on the unit, or a not
	// found error when none exists. Used by the check-then-insert that
	// keeps the one-active-contract-per-unit invariant.
	GetActiveByUnit(ctx context.Context, unitID string) (*Contract, error)
}
