package unit

import (
	"context"

	"github.com/garagio/garagio/internal/types"
)

// Repository defines persistence operations for units
type Repository interface {
	Create(ctx context.Context, u *Unit) error
	Get(ctx context.Context, id string) (*Unit, error)
	Update(ctx context.Context, u *Unit) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter *types.QueryFilter) ([]*Unit, error)
	ListByProperty(ctx context.Context, propertyID string) ([]*Unit, error)
	Count(ctx context.Context, filter *types.QueryFilter) (int, error)

	// SetOccupied flips the occupancy flag. It must run inside the same
	// transaction as the contract write it accompanies. When the unit has
	// been deleted concurrently the update is a no-op, not an error: unit
	// deletion cascade-deletes its contracts.
	SetOccupied(ctx context.Context, id string, occupied bool) error
}
