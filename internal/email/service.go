package email

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// Sender is the notification collaborator used by the invoice lifecycle.
// Sends are best-effort: callers log failures and never roll back the
// primary mutation because of one.
type Sender interface {
	SendInvoiceCreated(ctx context.Context, n InvoiceNotification) error
}

// InvoiceNotification carries the data rendered into the invoice email
type InvoiceNotification struct {
	CustomerName  string
	CustomerEmail string
	InvoiceNumber string
	Amount        decimal.Decimal
	DueDate       string
	Description   string
}

type sender struct {
	client *Client
}

// NewSender creates the invoice notification sender
func NewSender(client *Client) Sender {
	return &sender{client: client}
}

func (s *sender) SendInvoiceCreated(ctx context.Context, n InvoiceNotification) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nA new invoice %s over %s is due on %s.\n",
		n.CustomerName, n.InvoiceNumber, n.Amount.StringFixed(2), n.DueDate,
	)
	if n.Description != "" {
		body += fmt.Sprintf("\n%s\n", n.Description)
	}

	return s.client.Send(ctx, SendEmailRequest{
		ToAddress: n.CustomerEmail,
		Subject:   fmt.Sprintf("Invoice %s", n.InvoiceNumber),
		Text:      body,
	})
}
