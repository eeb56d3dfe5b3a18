package payment

import (
	"context"

	"github.com/garagio/garagio/internal/types"
)

// Repository defines persistence operations for the payment ledger. The
// ledger is append-only: there is no update and no delete.
type Repository interface {
	Create(ctx context.Context, p *Payment) error
	Get(ctx context.Context, id string) (*Payment, error)
	ListByInvoice(ctx context.Context, invoiceID string) ([]*Payment, error)
	List(ctx context.Context, filter *types.QueryFilter) ([]*Payment, error)
	Count(ctx context.Context, filter *types.QueryFilter) (int, error)

	// GetByReference returns the ledger entry with the given external
	// reference on the invoice, or a not found error. Used to deduplicate
	// gateway webhook replays.
	GetByReference(ctx context.Context, invoiceID, referenceNumber string) (*Payment, error)
}
