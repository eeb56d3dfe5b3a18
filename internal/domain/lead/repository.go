package lead

import (
	"context"

	"github.com/garagio/garagio/internal/types"
)

// Repository defines persistence operations for leads
type Repository interface {
	Create(ctx context.Context, l *Lead) error
	Get(ctx context.Context, id string) (*Lead, error)
	Update(ctx context.Context, l *Lead) error
	List(ctx context.Context, filter *types.QueryFilter) ([]*Lead, error)
	Count(ctx context.Context, filter *types.QueryFilter) (int, error)
}
