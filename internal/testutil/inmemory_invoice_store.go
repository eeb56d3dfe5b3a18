package testutil

import (
	"context"

	"github.com/garagio/garagio/internal/domain/invoice"
	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/garagio/garagio/internal/types"
)

// InMemoryInvoiceStore implements invoice.Repository
type InMemoryInvoiceStore struct {
	*InMemoryStore[*invoice.Invoice]
}

func NewInMemoryInvoiceStore() *InMemoryInvoiceStore {
	return &InMemoryInvoiceStore{
		InMemoryStore: NewInMemoryStore[*invoice.Invoice](),
	}
}

func invoiceFilterFn(ctx context.Context, i *invoice.Invoice, _ interface{}) bool {
	return i.TenantID == types.GetTenantID(ctx)
}

func invoiceSortFn(i, j *invoice.Invoice) bool {
	return i.CreatedAt.Before(j.CreatedAt)
}

// Create stores a new invoice, enforcing invoice number uniqueness per
// tenant the way the unique index does in postgres
func (s *InMemoryInvoiceStore) Create(ctx context.Context, i *invoice.Invoice) error {
	if i == nil {
		return ierr.NewError("invoice cannot be nil").
			WithHint("Invoice cannot be nil").
			Mark(ierr.ErrValidation)
	}

	existing, err := s.InMemoryStore.List(ctx, nil, func(ctx context.Context, other *invoice.Invoice, _ interface{}) bool {
		return invoiceFilterFn(ctx, other, nil) && other.InvoiceNumber == i.InvoiceNumber
	}, nil)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return ierr.NewError("invoice number already exists").
			WithHint("An invoice with this number already exists").
			WithReportableDetails(map[string]any{
				"invoice_number": i.InvoiceNumber,
			}).
			Mark(ierr.ErrAlreadyExists)
	}

	return s.InMemoryStore.Create(ctx, i.ID, i)
}

func (s *InMemoryInvoiceStore) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	i, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if i.TenantID != types.GetTenantID(ctx) {
		return nil, ierr.NewError("item not found").
			WithHint("The requested record does not exist").
			Mark(ierr.ErrNotFound)
	}
	return i, nil
}

func (s *InMemoryInvoiceStore) GetByNumber(ctx context.Context, invoiceNumber string) (*invoice.Invoice, error) {
	invoices, err := s.InMemoryStore.List(ctx, nil, func(ctx context.Context, i *invoice.Invoice, _ interface{}) bool {
		return invoiceFilterFn(ctx, i, nil) && i.InvoiceNumber == invoiceNumber
	}, invoiceSortFn)
	if err != nil {
		return nil, err
	}
	if len(invoices) == 0 {
		return nil, ierr.NewError("item not found").
			WithHint("The requested record does not exist").
			Mark(ierr.ErrNotFound)
	}
	return invoices[0], nil
}

func (s *InMemoryInvoiceStore) Update(ctx context.Context, i *invoice.Invoice) error {
	if _, err := s.Get(ctx, i.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, i.ID, i)
}

func (s *InMemoryInvoiceStore) List(ctx context.Context, filter *types.QueryFilter) ([]*invoice.Invoice, error) {
	return s.InMemoryStore.List(ctx, filter, invoiceFilterFn, invoiceSortFn)
}

func (s *InMemoryInvoiceStore) ListByCustomer(ctx context.Context, customerID string) ([]*invoice.Invoice, error) {
	return s.InMemoryStore.List(ctx, nil, func(ctx context.Context, i *invoice.Invoice, _ interface{}) bool {
		return invoiceFilterFn(ctx, i, nil) && i.CustomerID == customerID
	}, invoiceSortFn)
}

func (s *InMemoryInvoiceStore) Count(ctx context.Context, filter *types.QueryFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, invoiceFilterFn)
}
