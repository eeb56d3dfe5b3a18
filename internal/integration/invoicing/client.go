package invoicing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/garagio/garagio/internal/config"
	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/garagio/garagio/internal/logger"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/shopspring/decimal"
)

// Mirror pushes invoices to the external invoicing SaaS. The mirror is not
// a second source of truth: on conflict the local database wins for payment
// status as soon as a local ledger entry exists.
type Mirror interface {
	Enabled() bool
	CreateInvoice(ctx context.Context, req *CreateInvoiceRequest) (string, error)
	GetInvoiceStatus(ctx context.Context, externalID string) (string, error)
}

// CreateInvoiceRequest is the payload mirrored to the SaaS
type CreateInvoiceRequest struct {
	InvoiceNumber string          `json:"invoice_number"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       time.Time       `json:"due_date"`
	Description   string          `json:"description,omitempty"`
}

type invoiceResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Client talks to the invoicing SaaS REST API with bounded retries and
// timeouts. Upstream failures surface as retryable integration errors.
type Client struct {
	http *retryablehttp.Client
	cfg  config.InvoicingConfig
	log  *logger.Logger
}

// NewClient creates a new invoicing SaaS client
func NewClient(cfg *config.Configuration, log *logger.Logger) Mirror {
	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = 3
	httpClient.HTTPClient.Timeout = 10 * time.Second
	httpClient.Logger = nil

	return &Client{
		http: httpClient,
		cfg:  cfg.Invoicing,
		log:  log,
	}
}

func (c *Client) Enabled() bool {
	return c.cfg.Enabled && c.cfg.BaseURL != ""
}

// CreateInvoice mirrors the invoice to the SaaS and returns its external id
func (c *Client) CreateInvoice(ctx context.Context, req *CreateInvoiceRequest) (string, error) {
	if !c.Enabled() {
		return "", ierr.NewError("invoicing integration is disabled").
			WithHint("External invoicing is not configured").
			Mark(ierr.ErrInvalidOperation)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to encode invoice payload").
			Mark(ierr.ErrSystem)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(
		ctx, http.MethodPost, fmt.Sprintf("%s/invoices", c.cfg.BaseURL), bytes.NewReader(body),
	)
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to build invoicing request").
			Mark(ierr.ErrSystem)
	}
	c.setHeaders(httpReq)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", c.upstreamError(err, "create invoice")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", c.statusError(resp.StatusCode, "create invoice")
	}

	var parsed invoiceResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", c.upstreamError(err, "decode invoice response")
	}

	c.log.Infow("mirrored invoice to external invoicing",
		"invoice_number", req.InvoiceNumber,
		"external_id", parsed.ID,
	)
	return parsed.ID, nil
}

// GetInvoiceStatus queries the SaaS for the status of a mirrored invoice
func (c *Client) GetInvoiceStatus(ctx context.Context, externalID string) (string, error) {
	if !c.Enabled() {
		return "", ierr.NewError("invoicing integration is disabled").
			WithHint("External invoicing is not configured").
			Mark(ierr.ErrInvalidOperation)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(
		ctx, http.MethodGet, fmt.Sprintf("%s/invoices/%s", c.cfg.BaseURL, externalID), nil,
	)
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to build invoicing request").
			Mark(ierr.ErrSystem)
	}
	c.setHeaders(httpReq)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", c.upstreamError(err, "get invoice status")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", ierr.NewError("invoice not found in invoicing service").
			WithHint("The mirrored invoice no longer exists upstream").
			Mark(ierr.ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", c.statusError(resp.StatusCode, "get invoice status")
	}

	var parsed invoiceResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", c.upstreamError(err, "decode invoice response")
	}
	return parsed.Status, nil
}

func (c *Client) setHeaders(req *retryablehttp.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIToken)
}

func (c *Client) upstreamError(err error, op string) error {
	c.log.Errorw("invoicing request failed", "op", op, "error", err)
	return ierr.WithError(err).
		WithHint("Invoicing service unavailable, please retry").
		Mark(ierr.ErrIntegration)
}

func (c *Client) statusError(status int, op string) error {
	c.log.Errorw("invoicing request rejected", "op", op, "status", status)
	return ierr.NewError("unexpected invoicing response").
		WithHintf("Invoicing service returned status %d", status).
		Mark(ierr.ErrIntegration)
}
