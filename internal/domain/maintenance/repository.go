package maintenance

import (
	"context"

	"github.com/garagio/garagio/internal/types"
)

// Repository defines persistence operations for maintenance requests
type Repository interface {
	Create(ctx context.Context, r *Request) error
	Get(ctx context.Context, id string) (*Request, error)
	Update(ctx context.Context, r *Request) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter *types.QueryFilter) ([]*Request, error)
	ListByUnit(ctx context.Context, unitID string) ([]*Request, error)
	Count(ctx context.Context, filter *types.QueryFilter) (int, error)
}
