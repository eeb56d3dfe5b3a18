package stripe

import (
	"context"

	"github.com/garagio/garagio/internal/config"
	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/garagio/garagio/internal/logger"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// Metadata keys attached to every checkout session. The webhook correlates
// the event back to the invoice through these, never through unsigned
// client-supplied fields.
const (
	MetadataInvoiceID     = "garagio_invoice_id"
	MetadataInvoiceNumber = "garagio_invoice_number"
	MetadataTenantID      = "garagio_tenant_id"
)

// Gateway is the payment gateway collaborator used by the settlement
// adapter. Faked in tests; implemented by Client against the Stripe API.
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, req *CheckoutSessionRequest) (*CheckoutSessionResponse, error)
	ParseWebhookEvent(payload []byte, signature string) (*stripe.Event, error)
}

// Client handles Stripe API access
type Client struct {
	cfg config.StripeConfig
	log *logger.Logger
}

// NewClient creates a new Stripe client
func NewClient(cfg *config.Configuration, log *logger.Logger) *Client {
	return &Client{
		cfg: cfg.Stripe,
		log: log,
	}
}

// CheckoutSessionRequest describes the hosted payment flow to create for
// one invoice
type CheckoutSessionRequest struct {
	InvoiceID     string
	InvoiceNumber string
	TenantID      string
	CustomerEmail string
	Description   string
	Amount        decimal.Decimal
	Currency      string
	SuccessURL    string
	CancelURL     string
}

// CheckoutSessionResponse carries the created session back to the caller
type CheckoutSessionResponse struct {
	SessionID string
	URL       string
}

// CreateCheckoutSession creates a gateway-hosted payment flow for the
// invoice and returns the redirect URL
func (c *Client) CreateCheckoutSession(ctx context.Context, req *CheckoutSessionRequest) (*CheckoutSessionResponse, error) {
	if !c.cfg.Enabled() {
		return nil, ierr.NewError("stripe is not configured").
			WithHint("Payment gateway is not configured").
			Mark(ierr.ErrInvalidOperation)
	}

	amountCents := req.Amount.Mul(decimal.NewFromInt(100)).IntPart()

	metadata := map[string]string{
		MetadataInvoiceID:     req.InvoiceID,
		MetadataInvoiceNumber: req.InvoiceNumber,
	}
	if req.TenantID != "" {
		metadata[MetadataTenantID] = req.TenantID
	}

	successURL := req.SuccessURL
	if successURL == "" {
		successURL = c.cfg.SuccessURL
	}
	cancelURL := req.CancelURL
	if cancelURL == "" {
		cancelURL = c.cfg.CancelURL
	}

	productData := &stripe.CheckoutSessionCreateLineItemPriceDataProductDataParams{
		Name: stripe.String("Invoice " + req.InvoiceNumber),
	}
	if req.Description != "" {
		productData.Description = stripe.String(req.Description)
	}

	params := &stripe.CheckoutSessionCreateParams{
		Mode:       stripe.String("payment"),
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
		Metadata:   metadata,
		LineItems: []*stripe.CheckoutSessionCreateLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionCreateLineItemPriceDataParams{
					Currency: stripe.String(req.Currency),
					ProductData: productData,
					UnitAmount: stripe.Int64(amountCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		PaymentIntentData: &stripe.CheckoutSessionCreatePaymentIntentDataParams{
			Metadata: metadata,
		},
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}

	stripeClient := stripe.NewClient(c.cfg.SecretKey, nil)
	session, err := stripeClient.V1CheckoutSessions.Create(ctx, params)
	if err != nil {
		c.log.Errorw("failed to create Stripe checkout session",
			"error", err,
			"invoice_id", req.InvoiceID,
		)
		return nil, ierr.WithError(err).
			WithHint("Unable to create checkout session, please retry").
			WithReportableDetails(map[string]any{
				"invoice_id": req.InvoiceID,
			}).
			Mark(ierr.ErrIntegration)
	}

	return &CheckoutSessionResponse{
		SessionID: session.ID,
		URL:       session.URL,
	}, nil
}

// ParseWebhookEvent verifies the payload signature against the server-held
// webhook secret and parses the event. An invalid signature is a hard
// rejection: no field of the payload is trusted before this succeeds.
func (c *Client) ParseWebhookEvent(payload []byte, signature string) (*stripe.Event, error) {
	options := webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	}
	event, err := webhook.ConstructEventWithOptions(payload, signature, c.cfg.WebhookSecret, options)
	if err != nil {
		c.log.Warnw("stripe webhook signature verification failed", "error", err)
		return nil, ierr.WithError(err).
			WithHint("Invalid webhook signature or payload").
			Mark(ierr.ErrSignature)
	}
	return &event, nil
}
