package invoice

import (
	"context"

	"github.com/garagio/garagio/internal/types"
)

// Repository defines persistence operations for invoices. Create must
// enforce invoice number uniqueness and surface a duplicate as an
// already-exists error.
type Repository interface {
	Create(ctx context.Context, i *Invoice) error
	Get(ctx context.Context, id string) (*Invoice, error)
	GetByNumber(ctx context.Context, invoiceNumber string) (*Invoice, error)
	Update(ctx context.Context, i *Invoice) error
	List(ctx context.Context, filter *types.QueryFilter) ([]*Invoice, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*Invoice, error)
	Count(ctx context.Context, filter *types.QueryFilter) (int, error)
}
