package appointment

import (
	"context"

	"github.com/garagio/garagio/internal/types"
)

// Repository defines persistence operations for appointments
type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	Get(ctx context.Context, id string) (*Appointment, error)
	Update(ctx context.Context, a *Appointment) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter *types.QueryFilter) ([]*Appointment, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*Appointment, error)
	Count(ctx context.Context, filter *types.QueryFilter) (int, error)
}
