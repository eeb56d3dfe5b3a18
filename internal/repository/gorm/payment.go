package gorm

import (
	"context"

	"github.com/cockroachdb/errors"
	domainPayment "github.com/garagio/garagio/internal/domain/payment"
	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/garagio/garagio/internal/logger"
	"github.com/garagio/garagio/internal/postgres"
	"github.com/garagio/garagio/internal/types"
	"gorm.io/gorm"
)

// paymentRepository persists the append-only payment ledger. There is no
// update and no delete on purpose.
type paymentRepository struct {
	client postgres.IClient
	log    *logger.Logger
}

func NewPaymentRepository(client postgres.IClient, log *logger.Logger) domainPayment.Repository {
	return &paymentRepository{client: client, log: log}
}

func (r *paymentRepository) Create(ctx context.Context, p *domainPayment.Payment) error {
	r.log.Debugw("recording payment",
		"payment_id", p.ID,
		"invoice_id", p.InvoiceID,
		"amount", p.Amount,
		"tenant_id", p.TenantID,
	)

	if err := r.client.Querier(ctx).Create(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ierr.WithError(err).
				WithHint("A payment with this reference already exists for the invoice").
				WithReportableDetails(map[string]any{
					"invoice_id": p.InvoiceID,
				}).
				Mark(ierr.ErrAlreadyExists)
		}
		return translateDBError(err, "failed to record payment")
	}
	return nil
}

func (r *paymentRepository) Get(ctx context.Context, id string) (*domainPayment.Payment, error) {
	var p domainPayment.Payment
	err := r.client.Querier(ctx).
		Where("id = ? AND tenant_id = ?", id, types.GetTenantID(ctx)).
		First(&p).Error
	if err != nil {
		return nil, translateDBError(err, "failed to get payment")
	}
	return &p, nil
}

func (r *paymentRepository) ListByInvoice(ctx context.Context, invoiceID string) ([]*domainPayment.Payment, error) {
	var payments []*domainPayment.Payment
	err := r.client.Querier(ctx).
		Where("invoice_id = ? AND tenant_id = ?", invoiceID, types.GetTenantID(ctx)).
		Order("payment_date ASC").
		Find(&payments).Error
	if err != nil {
		return nil, translateDBError(err, "failed to list payments by invoice")
	}
	return payments, nil
}

func (r *paymentRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*domainPayment.Payment, error) {
	var payments []*domainPayment.Payment
	err := r.client.Querier(ctx).
		Where("tenant_id = ?", types.GetTenantID(ctx)).
		Order("created_at DESC").
		Limit(filter.GetLimit()).
		Offset(filter.GetOffset()).
		Find(&payments).Error
	if err != nil {
		return nil, translateDBError(err, "failed to list payments")
	}
	return payments, nil
}

func (r *paymentRepository) Count(ctx context.Context, filter *types.QueryFilter) (int, error) {
	var count int64
	err := r.client.Querier(ctx).
		Model(&domainPayment.Payment{}).
		Where("tenant_id = ?", types.GetTenantID(ctx)).
		Count(&count).Error
	if err != nil {
		return 0, translateDBError(err, "failed to count payments")
	}
	return int(count), nil
}

func (r *paymentRepository) GetByReference(ctx context.Context, invoiceID, referenceNumber string) (*domainPayment.Payment, error) {
	var p domainPayment.Payment
	err := r.client.Querier(ctx).
		Where(
			"invoice_id = ? AND reference_number = ? AND tenant_id = ?",
			invoiceID, referenceNumber, types.GetTenantID(ctx),
		).
		First(&p).Error
	if err != nil {
		return nil, translateDBError(err, "failed to get payment by reference")
	}
	return &p, nil
}
