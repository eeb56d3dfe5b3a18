package invoice

import (
	"time"

	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/garagio/garagio/internal/types"
	"github.com/shopspring/decimal"
)

// Invoice is a billable document owed by a customer
type Invoice struct {
	// Unique identifier for this invoice
	ID string `json:"id" gorm:"primaryKey"`
	// Human-readable invoice number, unique per tenant
	InvoiceNumber string `json:"invoice_number"`
	// The contract_id links the invoice to a lease (optional)
	ContractID *string `json:"contract_id,omitempty"`
	// The customer_id references the customer who owes the amount
	CustomerID string `json:"customer_id"`
	// The amount field specifies the billed value, currency-agnostic
	Amount decimal.Decimal `json:"amount"`
	// Date the payment is due
	DueDate time.Time `json:"due_date"`
	// The paid_at timestamp is set if and only if the status is paid
	PaidAt *time.Time `json:"paid_at,omitempty"`
	// The invoice_status is the billing lifecycle state
	InvoiceStatus types.InvoiceStatus `json:"invoice_status"`
	// Optional description shown to the customer
	Description string `json:"description,omitempty"`
	// The external_invoice_id is the identifier in the invoicing SaaS when
	// the invoice has been mirrored there (optional)
	ExternalInvoiceID *string `json:"external_invoice_id,omitempty"`
	// The checkout_session_id is the gateway session created for online
	// payment of this invoice (optional). The webhook correlates via signed
	// metadata; the stored id serves as a secondary integrity check.
	CheckoutSessionID *string `json:"checkout_session_id,omitempty"`

	types.BaseModel `gorm:"embedded"`
}

func (i *Invoice) TableName() string {
	return "invoices"
}

// Validate validates the invoice
func (i *Invoice) Validate() error {
	if i.CustomerID == "" {
		return ierr.NewError("customer id is required").
			WithHint("Invoice must reference a customer").
			Mark(ierr.ErrValidation)
	}
	if i.Amount.IsZero() || i.Amount.IsNegative() {
		return ierr.NewError("invalid amount").
			WithHint("Invoice amount must be greater than 0").
			Mark(ierr.ErrValidation)
	}
	if i.InvoiceNumber == "" {
		return ierr.NewError("invoice number is required").
			WithHint("Invoice number cannot be empty").
			Mark(ierr.ErrValidation)
	}
	if i.DueDate.IsZero() {
		return ierr.NewError("due date is required").
			WithHint("Invoice due date cannot be empty").
			Mark(ierr.ErrValidation)
	}
	if err := i.InvoiceStatus.Validate(); err != nil {
		return err
	}
	// paid_at and status paid always move together
	if (i.InvoiceStatus == types.InvoiceStatusPaid) != (i.PaidAt != nil) {
		return ierr.NewError("inconsistent paid state").
			WithHint("Paid date must be set exactly when the invoice is paid").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// IsClosedToPayments reports whether further ledger entries are rejected
func (i *Invoice) IsClosedToPayments() bool {
	return i.InvoiceStatus == types.InvoiceStatusPaid ||
		i.InvoiceStatus == types.InvoiceStatusCancelled
}
