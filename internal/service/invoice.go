package service

import (
	"context"
	"time"

	"github.com/garagio/garagio/internal/api/dto"
	"github.com/garagio/garagio/internal/domain/invoice"
	"github.com/garagio/garagio/internal/email"
	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/garagio/garagio/internal/integration/invoicing"
	"github.com/garagio/garagio/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type InvoiceService interface {
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error)
	ListInvoices(ctx context.Context, filter *types.QueryFilter) (*dto.ListInvoicesResponse, error)
	ListInvoicesByCustomer(ctx context.Context, customerID string) (*dto.ListInvoicesResponse, error)
	UpdateInvoiceStatus(ctx context.Context, id string, req dto.UpdateInvoiceStatusRequest) (*dto.InvoiceResponse, error)
	MarkOverdueInvoices(ctx context.Context, now time.Time) (int, error)
}

type invoiceService struct {
	ServiceParams
}

func NewInvoiceService(params ServiceParams) InvoiceService {
	return &invoiceService{
		ServiceParams: params,
	}
}

// CreateInvoice creates the invoice locally, then mirrors it to the
// invoicing SaaS and emails the customer. Mirror and email failures are
// logged and never fail the create: the local row is the source of truth.
func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	inv := req.ToInvoice(ctx)

	if err := inv.Validate(); err != nil {
		return nil, err
	}

	cust, err := s.CustomerRepo.Get(ctx, inv.CustomerID)
	if err != nil {
		return nil, err
	}

	if inv.ContractID != nil {
		if _, err := s.ContractRepo.Get(ctx, *inv.ContractID); err != nil {
			return nil, err
		}
	}

	if err := s.InvoiceRepo.Create(ctx, inv); err != nil {
		return nil, err
	}

	s.mirrorInvoice(ctx, inv, cust.Name, cust.Email)

	if err := s.EmailSender.SendInvoiceCreated(ctx, email.InvoiceNotification{
		CustomerName:  cust.Name,
		CustomerEmail: cust.Email,
		InvoiceNumber: inv.InvoiceNumber,
		Amount:        inv.Amount,
		DueDate:       inv.DueDate.Format("2006-01-02"),
		Description:   inv.Description,
	}); err != nil {
		s.Logger.Errorw("failed to send invoice notification",
			"error", err,
			"invoice_id", inv.ID,
		)
	}

	return dto.NewInvoiceResponse(inv), nil
}

// mirrorInvoice pushes the invoice to the external SaaS, best effort
func (s *invoiceService) mirrorInvoice(ctx context.Context, inv *invoice.Invoice, customerName, customerEmail string) {
	if !s.InvoicingMirror.Enabled() {
		return
	}

	externalID, err := s.InvoicingMirror.CreateInvoice(ctx, &invoicing.CreateInvoiceRequest{
		InvoiceNumber: inv.InvoiceNumber,
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		Amount:        inv.Amount,
		DueDate:       inv.DueDate,
		Description:   inv.Description,
	})
	if err != nil {
		s.Logger.Errorw("failed to mirror invoice to invoicing provider",
			"error", err,
			"invoice_id", inv.ID,
		)
		return
	}

	inv.ExternalInvoiceID = lo.ToPtr(externalID)
	if err := s.InvoiceRepo.Update(ctx, inv); err != nil {
		s.Logger.Errorw("failed to store external invoice id",
			"error", err,
			"invoice_id", inv.ID,
			"external_invoice_id", externalID,
		)
	}
}

func (s *invoiceService) GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.NewInvoiceResponse(inv)

	payments, err := s.PaymentRepo.ListByInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	resp.AmountPaid = lo.ToPtr(total)

	return resp, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, filter *types.QueryFilter) (*dto.ListInvoicesResponse, error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	invoices, err := s.InvoiceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	count, err := s.InvoiceRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		items[i] = dto.NewInvoiceResponse(inv)
	}

	return &dto.ListInvoicesResponse{
		Items:      items,
		Pagination: types.NewPaginationResponse(count, filter.GetLimit(), filter.GetOffset()),
	}, nil
}

func (s *invoiceService) ListInvoicesByCustomer(ctx context.Context, customerID string) (*dto.ListInvoicesResponse, error) {
	invoices, err := s.InvoiceRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		items[i] = dto.NewInvoiceResponse(inv)
	}

	return &dto.ListInvoicesResponse{
		Items:      items,
		Pagination: types.NewPaginationResponse(len(items), len(items), 0),
	}, nil
}

// UpdateInvoiceStatus applies an administrative status change. Marking an
// invoice paid this way sets the paid date; any other target clears it.
func (s *invoiceService) UpdateInvoiceStatus(ctx context.Context, id string, req dto.UpdateInvoiceStatusRequest) (*dto.InvoiceResponse, error) {
	if err := req.Status.Validate(); err != nil {
		return nil, err
	}

	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if inv.InvoiceStatus == req.Status {
		return dto.NewInvoiceResponse(inv), nil
	}

	if !inv.InvoiceStatus.CanTransitionTo(req.Status) {
		return nil, ierr.NewError("invalid invoice status transition").
			WithHintf("Cannot move a %s invoice to %s", inv.InvoiceStatus, req.Status).
			WithReportableDetails(map[string]any{
				"invoice_id": inv.ID,
				"from":       inv.InvoiceStatus,
				"to":         req.Status,
			}).
			Mark(ierr.ErrInvalidOperation)
	}

	inv.InvoiceStatus = req.Status
	if req.Status == types.InvoiceStatusPaid {
		inv.PaidAt = lo.ToPtr(time.Now().UTC())
	} else {
		inv.PaidAt = nil
	}

	if err := s.InvoiceRepo.Update(ctx, inv); err != nil {
		return nil, err
	}

	return dto.NewInvoiceResponse(inv), nil
}

// MarkOverdueInvoices flips sent invoices past their due date to overdue
// and returns how many changed. Meant to be called from a scheduler.
func (s *invoiceService) MarkOverdueInvoices(ctx context.Context, now time.Time) (int, error) {
	filter := types.NewDefaultQueryFilter()
	filter.Limit = lo.ToPtr(types.FilterMaxLimit)

	invoices, err := s.InvoiceRepo.List(ctx, filter)
	if err != nil {
		return 0, err
	}

	changed := 0
	for _, inv := range invoices {
		if inv.InvoiceStatus != types.InvoiceStatusSent || !inv.DueDate.Before(now) {
			continue
		}
		inv.InvoiceStatus = types.InvoiceStatusOverdue
		if err := s.InvoiceRepo.Update(ctx, inv); err != nil {
			s.Logger.Errorw("failed to mark invoice overdue",
				"error", err,
				"invoice_id", inv.ID,
			)
			continue
		}
		changed++
	}

	return changed, nil
}
