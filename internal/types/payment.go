package types

import (
	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/samber/lo"
)

// PaymentMethod tags how a ledger entry was collected
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCard     PaymentMethod = "card"
	// PaymentMethodGateway marks entries appended by the settlement adapter
	// from a verified gateway webhook
	PaymentMethodGateway PaymentMethod = "gateway"
)

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) Validate() error {
	allowed := []PaymentMethod{
		PaymentMethodCash,
		PaymentMethodTransfer,
		PaymentMethodCard,
		PaymentMethodGateway,
	}
	if !lo.Contains(allowed, m) {
		return ierr.NewError("invalid payment method").
			WithHintf("Payment method must be one of %v", allowed).
			Mark(ierr.ErrValidation)
	}
	return nil
}
