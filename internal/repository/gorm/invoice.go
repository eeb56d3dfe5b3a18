package gorm

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	domainInvoice "github.com/garagio/garagio/internal/domain/invoice"
	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/garagio/garagio/internal/logger"
	"github.com/garagio/garagio/internal/postgres"
	"github.com/garagio/garagio/internal/types"
	"gorm.io/gorm"
)

type invoiceRepository struct {
	client postgres.IClient
	log    *logger.Logger
}

func NewInvoiceRepository(client postgres.IClient, log *logger.Logger) domainInvoice.Repository {
	return &invoiceRepository{client: client, log: log}
}

func (r *invoiceRepository) Create(ctx context.Context, i *domainInvoice.Invoice) error {
	r.log.Debugw("creating invoice",
		"invoice_id", i.ID,
		"invoice_number", i.InvoiceNumber,
		"customer_id", i.CustomerID,
		"amount", i.Amount,
		"tenant_id", i.TenantID,
	)

	if err := r.client.Querier(ctx).Create(i).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ierr.WithError(err).
				WithHint("An invoice with this number already exists").
				WithReportableDetails(map[string]any{
					"invoice_number": i.InvoiceNumber,
				}).
				Mark(ierr.ErrAlreadyExists)
		}
		return translateDBError(err, "failed to create invoice")
	}
	return nil
}

func (r *invoiceRepository) Get(ctx context.Context, id string) (*domainInvoice.Invoice, error) {
	var i domainInvoice.Invoice
	err := r.client.Querier(ctx).
		Where("id = ? AND tenant_id = ? AND status != ?", id, types.GetTenantID(ctx), types.StatusDeleted).
		First(&i).Error
	if err != nil {
		return nil, translateDBError(err, "failed to get invoice")
	}
	return &i, nil
}

func (r *invoiceRepository) GetByNumber(ctx context.Context, invoiceNumber string) (*domainInvoice.Invoice, error) {
	var i domainInvoice.Invoice
	err := r.client.Querier(ctx).
		Where("invoice_number = ? AND tenant_id = ? AND status != ?", invoiceNumber, types.GetTenantID(ctx), types.StatusDeleted).
		First(&i).Error
	if err != nil {
		return nil, translateDBError(err, "failed to get invoice by number")
	}
	return &i, nil
}

func (r *invoiceRepository) Update(ctx context.Context, i *domainInvoice.Invoice) error {
	i.UpdatedAt = time.Now().UTC()
	i.UpdatedBy = types.GetUserID(ctx)

	if err := r.client.Querier(ctx).Save(i).Error; err != nil {
		return translateDBError(err, "failed to update invoice")
	}
	return nil
}

func (r *invoiceRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*domainInvoice.Invoice, error) {
	var invoices []*domainInvoice.Invoice
	err := r.client.Querier(ctx).
		Where("tenant_id = ? AND status = ?", types.GetTenantID(ctx), filter.GetStatus()).
		Order("created_at DESC").
		Limit(filter.GetLimit()).
		Offset(filter.GetOffset()).
		Find(&invoices).Error
	if err != nil {
		return nil, translateDBError(err, "failed to list invoices")
	}
	return invoices, nil
}

func (r *invoiceRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domainInvoice.Invoice, error) {
	var invoices []*domainInvoice.Invoice
	err := r.client.Querier(ctx).
		Where("customer_id = ? AND tenant_id = ? AND status != ?", customerID, types.GetTenantID(ctx), types.StatusDeleted).
		Order("created_at DESC").
		Find(&invoices).Error
	if err != nil {
		return nil, translateDBError(err, "failed to list invoices by customer")
	}
	return invoices, nil
}

func (r *invoiceRepository) Count(ctx context.Context, filter *types.QueryFilter) (int, error) {
	var count int64
	err := r.client.Querier(ctx).
		Model(&domainInvoice.Invoice{}).
		Where("tenant_id = ? AND status = ?", types.GetTenantID(ctx), filter.GetStatus()).
		Count(&count).Error
	if err != nil {
		return 0, translateDBError(err, "failed to count invoices")
	}
	return int(count), nil
}
