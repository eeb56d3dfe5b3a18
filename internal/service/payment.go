package service

import (
	"context"

	"github.com/garagio/garagio/internal/api/dto"
	"github.com/garagio/garagio/internal/domain/invoice"
	"github.com/garagio/garagio/internal/domain/payment"
	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/garagio/garagio/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type PaymentService interface {
	RecordPayment(ctx context.Context, req dto.RecordPaymentRequest) (*dto.PaymentResponse, error)
	GetPayment(ctx context.Context, id string) (*dto.PaymentResponse, error)
	ListPayments(ctx context.Context, filter *types.QueryFilter) (*dto.ListPaymentsResponse, error)
	ListPaymentsByInvoice(ctx context.Context, invoiceID string) (*dto.ListPaymentsResponse, error)
}

type paymentService struct {
	ServiceParams
}

func NewPaymentService(params ServiceParams) PaymentService {
	return &paymentService{
		ServiceParams: params,
	}
}

// RecordPayment appends a ledger entry against an open invoice. When the
// cumulative ledger reaches the invoice amount the invoice flips to paid in
// the same transaction. A reference number already on the ledger is a
// conflict: the ledger never stores the same external transaction twice.
func (s *paymentService) RecordPayment(ctx context.Context, req dto.RecordPaymentRequest) (*dto.PaymentResponse, error) {
	p := req.ToPayment(ctx)

	if err := p.Validate(); err != nil {
		return nil, err
	}

	inv, err := s.InvoiceRepo.Get(ctx, p.InvoiceID)
	if err != nil {
		return nil, err
	}

	if inv.IsClosedToPayments() {
		return nil, ierr.NewError("invoice is closed to payments").
			WithHintf("Invoice %s is %s and accepts no further payments", inv.InvoiceNumber, inv.InvoiceStatus).
			WithReportableDetails(map[string]any{
				"invoice_id": inv.ID,
			}).
			Mark(ierr.ErrInvalidOperation)
	}

	err = s.DB.WithTx(ctx, func(txCtx context.Context) error {
		if p.ReferenceNumber != nil {
			existing, err := s.PaymentRepo.GetByReference(txCtx, p.InvoiceID, *p.ReferenceNumber)
			if err != nil && !ierr.IsNotFound(err) {
				return err
			}
			if existing != nil {
				return ierr.NewError("payment reference already recorded").
					WithHint("A payment with this reference number already exists on the invoice").
					WithReportableDetails(map[string]any{
						"invoice_id":       p.InvoiceID,
						"reference_number": *p.ReferenceNumber,
					}).
					Mark(ierr.ErrAlreadyExists)
			}
		}

		if err := s.PaymentRepo.Create(txCtx, p); err != nil {
			return err
		}

		return settleInvoice(txCtx, s.ServiceParams, inv)
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("payment recorded",
		"payment_id", p.ID,
		"invoice_id", p.InvoiceID,
		"amount", p.Amount,
	)

	return dto.NewPaymentResponse(p), nil
}

// settleInvoice recomputes the ledger total for the invoice and flips it to
// paid when the total covers the billed amount. Must run inside the same
// transaction as the ledger write that triggered it.
func settleInvoice(ctx context.Context, params ServiceParams, inv *invoice.Invoice) error {
	payments, err := params.PaymentRepo.ListByInvoice(ctx, inv.ID)
	if err != nil {
		return err
	}

	total := decimal.Zero
	var latest *payment.Payment
	for _, p := range payments {
		total = total.Add(p.Amount)
		if latest == nil || p.PaymentDate.After(latest.PaymentDate) {
			latest = p
		}
	}

	if total.LessThan(inv.Amount) {
		return nil
	}
	if !inv.InvoiceStatus.CanTransitionTo(types.InvoiceStatusPaid) {
		params.Logger.Warnw("invoice fully covered but not markable as paid",
			"invoice_id", inv.ID,
			"status", inv.InvoiceStatus,
		)
		return nil
	}

	inv.InvoiceStatus = types.InvoiceStatusPaid
	inv.PaidAt = lo.ToPtr(latest.PaymentDate.UTC())

	return params.InvoiceRepo.Update(ctx, inv)
}

func (s *paymentService) GetPayment(ctx context.Context, id string) (*dto.PaymentResponse, error) {
	p, err := s.PaymentRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewPaymentResponse(p), nil
}

func (s *paymentService) ListPayments(ctx context.Context, filter *types.QueryFilter) (*dto.ListPaymentsResponse, error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	payments, err := s.PaymentRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	count, err := s.PaymentRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.PaymentResponse, len(payments))
	for i, p := range payments {
		items[i] = dto.NewPaymentResponse(p)
	}

	return &dto.ListPaymentsResponse{
		Items:      items,
		Pagination: types.NewPaginationResponse(count, filter.GetLimit(), filter.GetOffset()),
	}, nil
}

func (s *paymentService) ListPaymentsByInvoice(ctx context.Context, invoiceID string) (*dto.ListPaymentsResponse, error) {
	if _, err := s.InvoiceRepo.Get(ctx, invoiceID); err != nil {
		return nil, err
	}

	payments, err := s.PaymentRepo.ListByInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.PaymentResponse, len(payments))
	for i, p := range payments {
		items[i] = dto.NewPaymentResponse(p)
	}

	return &dto.ListPaymentsResponse{
		Items:      items,
		Pagination: types.NewPaginationResponse(len(items), len(items), 0),
	}, nil
}
