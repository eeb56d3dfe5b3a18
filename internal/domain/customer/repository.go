package customer

import (
	"context"

	"github.com/garagio/garagio/internal/types"
)

// Repository defines persistence operations for customers
type Repository interface {
	Create(ctx context.Context, c *Customer) error
	Get(ctx context.Context, id string) (*Customer, error)
	GetByEmail(ctx context.Context, email string) (*Customer, error)
	Update(ctx context.Context, c *Customer) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter *types.QueryFilter) ([]*Customer, error)
	Count(ctx context.Context, filter *types.QueryFilter) (int, error)
}
