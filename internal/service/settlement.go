package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/garagio/garagio/internal/api/dto"
	"github.com/garagio/garagio/internal/domain/payment"
	ierr "github.com/garagio/garagio/internal/errors"
	gateway "github.com/garagio/garagio/internal/integration/stripe"
	"github.com/garagio/garagio/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
)

// SettlementService owns the online payment flow: it opens gateway-hosted
// checkout sessions for invoices and turns verified gateway webhooks into
// ledger entries.
type SettlementService interface {
	CreateCheckoutSession(ctx context.Context, invoiceID string, req dto.CreateCheckoutSessionRequest) (*dto.CheckoutSessionResponse, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

type settlementService struct {
	ServiceParams
}

func NewSettlementService(params ServiceParams) SettlementService {
	return &settlementService{
		ServiceParams: params,
	}
}

// CreateCheckoutSession opens a hosted payment flow for an open invoice and
// returns the redirect URL. The invoice id and number travel as session
// metadata so the completion webhook can correlate without trusting any
// client-supplied field.
func (s *settlementService) CreateCheckoutSession(ctx context.Context, invoiceID string, req dto.CreateCheckoutSessionRequest) (*dto.CheckoutSessionResponse, error) {
	inv, err := s.InvoiceRepo.Get(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	if inv.IsClosedToPayments() {
		return nil, ierr.NewError("invoice is closed to payments").
			WithHintf("Invoice %s is %s and cannot be paid online", inv.InvoiceNumber, inv.InvoiceStatus).
			WithReportableDetails(map[string]any{
				"invoice_id": inv.ID,
			}).
			Mark(ierr.ErrInvalidOperation)
	}

	cust, err := s.CustomerRepo.Get(ctx, inv.CustomerID)
	if err != nil {
		return nil, err
	}

	session, err := s.Gateway.CreateCheckoutSession(ctx, &gateway.CheckoutSessionRequest{
		InvoiceID:     inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		TenantID:      inv.TenantID,
		CustomerEmail: cust.Email,
		Description:   inv.Description,
		Amount:        inv.Amount,
		Currency:      s.Config.Stripe.Currency,
		SuccessURL:    req.SuccessURL,
		CancelURL:     req.CancelURL,
	})
	if err != nil {
		return nil, err
	}

	// Stored for traceability and as a secondary integrity check on the
	// webhook. Correlation itself runs on the signed metadata.
	inv.CheckoutSessionID = lo.ToPtr(session.SessionID)
	if err := s.InvoiceRepo.Update(ctx, inv); err != nil {
		return nil, err
	}

	s.Logger.Infow("checkout session created",
		"invoice_id", inv.ID,
		"session_id", session.SessionID,
	)

	return &dto.CheckoutSessionResponse{
		SessionID: session.SessionID,
		URL:       session.URL,
	}, nil
}

// HandleWebhook verifies the gateway signature, then settles completed
// checkout sessions into the payment ledger. Replays are no-ops: the ledger
// entry is keyed by the gateway transaction reference, and an existing
// entry short-circuits the write. Unknown event types are acknowledged.
func (s *settlementService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := s.Gateway.ParseWebhookEvent(payload, signature)
	if err != nil {
		return err
	}

	switch event.Type {
	case "checkout.session.completed":
		return s.handleCheckoutCompleted(ctx, event)
	default:
		s.Logger.Debugw("ignoring gateway event", "event_type", event.Type)
		return nil
	}
}

func (s *settlementService) handleCheckoutCompleted(ctx context.Context, event *stripe.Event) error {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return ierr.WithError(err).
			WithHint("Malformed checkout session payload").
			Mark(ierr.ErrValidation)
	}

	// The webhook arrives unauthenticated. The tenant travels in the
	// signed metadata, placed there when the session was created.
	if tenantID := session.Metadata[gateway.MetadataTenantID]; tenantID != "" {
		ctx = types.SetTenantID(ctx, tenantID)
	}

	invoiceID := session.Metadata[gateway.MetadataInvoiceID]
	if invoiceID == "" {
		// Not one of ours. Acknowledge so the gateway stops retrying.
		s.Logger.Warnw("checkout session without invoice metadata",
			"session_id", session.ID,
		)
		return nil
	}

	inv, err := s.InvoiceRepo.Get(ctx, invoiceID)
	if err != nil {
		if ierr.IsNotFound(err) {
			s.Logger.Warnw("checkout session references unknown invoice",
				"session_id", session.ID,
				"invoice_id", invoiceID,
			)
			return nil
		}
		return err
	}

	// The signed metadata is authoritative. A stored session id that
	// disagrees is logged but does not block settlement.
	if inv.CheckoutSessionID != nil && *inv.CheckoutSessionID != session.ID {
		s.Logger.Warnw("checkout session id mismatch",
			"invoice_id", inv.ID,
			"stored_session_id", *inv.CheckoutSessionID,
			"event_session_id", session.ID,
		)
	}

	reference := session.ID
	if session.PaymentIntent != nil && session.PaymentIntent.ID != "" {
		reference = session.PaymentIntent.ID
	}

	amount := decimal.New(session.AmountTotal, -2)
	if amount.IsZero() || amount.IsNegative() {
		amount = inv.Amount
	}

	paymentDate := time.Unix(event.Created, 0).UTC()
	if event.Created == 0 {
		paymentDate = time.Now().UTC()
	}

	return s.DB.WithTx(ctx, func(txCtx context.Context) error {
		existing, err := s.PaymentRepo.GetByReference(txCtx, inv.ID, reference)
		if err != nil && !ierr.IsNotFound(err) {
			return err
		}
		if existing != nil {
			s.Logger.Infow("webhook replay ignored, payment already recorded",
				"invoice_id", inv.ID,
				"reference_number", reference,
			)
			return nil
		}

		if inv.IsClosedToPayments() {
			s.Logger.Warnw("settled session for closed invoice, skipping ledger write",
				"invoice_id", inv.ID,
				"invoice_status", inv.InvoiceStatus,
				"reference_number", reference,
			)
			return nil
		}

		entry := &payment.Payment{
			ID:              types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PAYMENT),
			InvoiceID:       inv.ID,
			Amount:          amount,
			PaymentDate:     paymentDate,
			Method:          types.PaymentMethodGateway,
			ReferenceNumber: lo.ToPtr(reference),
			BaseModel:       types.GetDefaultBaseModel(txCtx),
		}
		if err := entry.Validate(); err != nil {
			return err
		}

		if err := s.PaymentRepo.Create(txCtx, entry); err != nil {
			return err
		}

		s.Logger.Infow("gateway payment settled",
			"payment_id", entry.ID,
			"invoice_id", inv.ID,
			"reference_number", reference,
			"amount", amount,
		)

		return settleInvoice(txCtx, s.ServiceParams, inv)
	})
}
