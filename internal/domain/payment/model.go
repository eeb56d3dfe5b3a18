package payment

import (
	"time"

	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/garagio/garagio/internal/types"
	"github.com/shopspring/decimal"
)

// Payment is an immutable ledger entry recording money received against an
// invoice. Entries are never mutated or deleted once created; the
// repository deliberately exposes no update or delete operation.
type Payment struct {
	// Unique identifier for this ledger entry
	ID string `json:"id" gorm:"primaryKey"`
	// The invoice_id references the invoice the money applies to
	InvoiceID string `json:"invoice_id"`
	// The amount field specifies the received value
	Amount decimal.Decimal `json:"amount"`
	// The payment_date is the value date of the entry, not the insert time
	PaymentDate time.Time `json:"payment_date"`
	// The method tag records how the money was collected (optional)
	Method types.PaymentMethod `json:"method,omitempty"`
	// The reference_number is the external transaction reference, e.g. the
	// gateway payment intent id. Entries are unique per
	// (invoice_id, reference_number) so webhook replays cannot duplicate.
	ReferenceNumber *string `json:"reference_number,omitempty"`
	// Free-text notes
	Notes string `json:"notes,omitempty"`

	types.BaseModel `gorm:"embedded"`
}

func (p *Payment) TableName() string {
	return "payments"
}

// Validate validates the payment
func (p *Payment) Validate() error {
	if p.InvoiceID == "" {
		return ierr.NewError("invoice id is required").
			WithHint("Payment must reference an invoice").
			Mark(ierr.ErrValidation)
	}
	if p.Amount.IsZero() || p.Amount.IsNegative() {
		return ierr.NewError("invalid amount").
			WithHint("Payment amount must be greater than 0").
			Mark(ierr.ErrValidation)
	}
	if p.PaymentDate.IsZero() {
		return ierr.NewError("payment date is required").
			WithHint("Payment date cannot be empty").
			Mark(ierr.ErrValidation)
	}
	if p.Method != "" {
		if err := p.Method.Validate(); err != nil {
			return err
		}
	}
	return nil
}
