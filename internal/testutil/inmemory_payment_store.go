package testutil

import (
	"context"

	"github.com/garagio/garagio/internal/domain/payment"
	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/garagio/garagio/internal/types"
)

// InMemoryPaymentStore implements payment.Repository. Like the real table,
// the ledger is append-only: no update, no delete.
type InMemoryPaymentStore struct {
	*InMemoryStore[*payment.Payment]
}

func NewInMemoryPaymentStore() *InMemoryPaymentStore {
	return &InMemoryPaymentStore{
		InMemoryStore: NewInMemoryStore[*payment.Payment](),
	}
}

func paymentFilterFn(ctx context.Context, p *payment.Payment, _ interface{}) bool {
	return p.TenantID == types.GetTenantID(ctx)
}

func paymentSortFn(i, j *payment.Payment) bool {
	return i.CreatedAt.Before(j.CreatedAt)
}

// Create stores a new ledger entry, enforcing reference uniqueness per
// invoice the way the unique index does in postgres
func (s *InMemoryPaymentStore) Create(ctx context.Context, p *payment.Payment) error {
	if p == nil {
		return ierr.NewError("payment cannot be nil").
			WithHint("Payment cannot be nil").
			Mark(ierr.ErrValidation)
	}

	if p.ReferenceNumber != nil {
		existing, err := s.InMemoryStore.List(ctx, nil, func(ctx context.Context, other *payment.Payment, _ interface{}) bool {
			return paymentFilterFn(ctx, other, nil) &&
				other.InvoiceID == p.InvoiceID &&
				other.ReferenceNumber != nil &&
				*other.ReferenceNumber == *p.ReferenceNumber
		}, nil)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return ierr.NewError("payment reference already exists").
				WithHint("A payment with this reference number already exists on the invoice").
				Mark(ierr.ErrAlreadyExists)
		}
	}

	return s.InMemoryStore.Create(ctx, p.ID, p)
}

func (s *InMemoryPaymentStore) Get(ctx context.Context, id string) (*payment.Payment, error) {
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.TenantID != types.GetTenantID(ctx) {
		return nil, ierr.NewError("item not found").
			WithHint("The requested record does not exist").
			Mark(ierr.ErrNotFound)
	}
	return p, nil
}

func (s *InMemoryPaymentStore) ListByInvoice(ctx context.Context, invoiceID string) ([]*payment.Payment, error) {
	return s.InMemoryStore.List(ctx, nil, func(ctx context.Context, p *payment.Payment, _ interface{}) bool {
		return paymentFilterFn(ctx, p, nil) && p.InvoiceID == invoiceID
	}, paymentSortFn)
}

func (s *InMemoryPaymentStore) List(ctx context.Context, filter *types.QueryFilter) ([]*payment.Payment, error) {
	return s.InMemoryStore.List(ctx, filter, paymentFilterFn, paymentSortFn)
}

func (s *InMemoryPaymentStore) Count(ctx context.Context, filter *types.QueryFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, paymentFilterFn)
}

func (s *InMemoryPaymentStore) GetByReference(ctx context.Context, invoiceID, referenceNumber string) (*payment.Payment, error) {
	payments, err := s.InMemoryStore.List(ctx, nil, func(ctx context.Context, p *payment.Payment, _ interface{}) bool {
		return paymentFilterFn(ctx, p, nil) &&
			p.InvoiceID == invoiceID &&
			p.ReferenceNumber != nil &&
			*p.ReferenceNumber == referenceNumber
	}, paymentSortFn)
	if err != nil {
		return nil, err
	}
	if len(payments) == 0 {
		return nil, ierr.NewError("item not found").
			WithHint("The requested record does not exist").
			Mark(ierr.ErrNotFound)
	}
	return payments[0], nil
}
