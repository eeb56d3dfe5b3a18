package property

import (
	"context"

	"github.com/garagio/garagio/internal/types"
)

// Repository defines persistence operations for properties
type Repository interface {
	Create(ctx context.Context, p *Property) error
	Get(ctx context.Context, id string) (*Property, error)
	Update(ctx context.Context, p *Property) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter *types.QueryFilter) ([]*Property, error)
	Count(ctx context.Context, filter *types.QueryFilter) (int, error)
}
