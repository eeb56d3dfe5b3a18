package types

import (
	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/samber/lo"
)

// InvoiceStatus is the billing state of an invoice
type InvoiceStatus string

const (
	// InvoiceStatusDraft indicates the invoice is still being prepared and
	// has not been communicated to the customer
	InvoiceStatusDraft InvoiceStatus = "draft"
	// InvoiceStatusSent indicates the invoice has been issued and is
	// awaiting payment. Admin-created invoices start here.
	InvoiceStatusSent InvoiceStatus = "sent"
	// InvoiceStatusPaid indicates the payment ledger fully covers the
	// invoice amount. PaidAt is set if and only if the status is paid.
	InvoiceStatusPaid InvoiceStatus = "paid"
	// InvoiceStatusOverdue is informational; it is applied by an external
	// time-based sweep, never by the lifecycle core itself
	InvoiceStatusOverdue InvoiceStatus = "overdue"
	// InvoiceStatusCancelled indicates the invoice is void and closed to
	// further payments
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

func (s InvoiceStatus) Validate() error {
	allowed := []InvoiceStatus{
		InvoiceStatusDraft,
		InvoiceStatusSent,
		InvoiceStatusPaid,
		InvoiceStatusOverdue,
		InvoiceStatusCancelled,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid invoice status").
			WithHintf("Invoice status must be one of %v", allowed).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// CanTransitionTo reports whether the status change is a legal lifecycle
// transition: draft -> sent -> {paid, overdue, cancelled}, overdue ->
// {paid, cancelled}. Paid and cancelled are terminal. Re-applying the
// current status is a no-op, not an error.
func (s InvoiceStatus) CanTransitionTo(target InvoiceStatus) bool {
	if s == target {
		return true
	}
	switch s {
	case InvoiceStatusDraft:
		return target == InvoiceStatusSent || target == InvoiceStatusCancelled
	case InvoiceStatusSent:
		return target == InvoiceStatusPaid ||
			target == InvoiceStatusOverdue ||
			target == InvoiceStatusCancelled
	case InvoiceStatusOverdue:
		return target == InvoiceStatusPaid || target == InvoiceStatusCancelled
	default:
		return false
	}
}
