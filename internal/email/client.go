package email

import (
	"context"

	"github.com/garagio/garagio/internal/config"
	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/resend/resend-go/v2"
)

// Client wraps the Resend API client. When the integration is disabled the
// client is constructed in a disabled state and every send is skipped.
type Client struct {
	client      *resend.Client
	enabled     bool
	fromAddress string
	replyTo     string
}

// NewClient creates a new email client from the application configuration
func NewClient(cfg *config.Configuration) *Client {
	if !cfg.Email.Enabled || cfg.Email.APIKey == "" {
		return &Client{enabled: false}
	}

	return &Client{
		client:      resend.NewClient(cfg.Email.APIKey),
		enabled:     true,
		fromAddress: cfg.Email.FromAddress,
		replyTo:     cfg.Email.ReplyTo,
	}
}

// IsEnabled returns whether the email client is enabled
func (c *Client) IsEnabled() bool {
	return c.enabled
}

// SendEmailRequest represents a request to send a plain text email
type SendEmailRequest struct {
	ToAddress string `json:"to_address" validate:"required,email"`
	Subject   string `json:"subject" validate:"required"`
	Text      string `json:"text" validate:"required"`
}

// Send delivers a plain text email through Resend
func (c *Client) Send(ctx context.Context, req SendEmailRequest) error {
	if !c.enabled {
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    c.fromAddress,
		To:      []string{req.ToAddress},
		Subject: req.Subject,
		Text:    req.Text,
		ReplyTo: c.replyTo,
	}

	if _, err := c.client.Emails.SendWithContext(ctx, params); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to send email").
			Mark(ierr.ErrIntegration)
	}
	return nil
}
