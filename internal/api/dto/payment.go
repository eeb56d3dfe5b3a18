package dto

import (
	"context"
	"time"

	"github.com/garagio/garagio/internal/domain/payment"
	"github.com/garagio/garagio/internal/types"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest represents a manual ledger entry for money received
// against an invoice
type RecordPaymentRequest struct {
	InvoiceID       string              `json:"invoice_id" binding:"required"`
	Amount          decimal.Decimal     `json:"amount" binding:"required"`
	PaymentDate     time.Time           `json:"payment_date" binding:"required"`
	Method          types.PaymentMethod `json:"method,omitempty"`
	ReferenceNumber *string             `json:"reference_number,omitempty"`
	Notes           string              `json:"notes,omitempty"`
}

func (r *RecordPaymentRequest) ToPayment(ctx context.Context) *payment.Payment {
	return &payment.Payment{
		ID:              types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PAYMENT),
		InvoiceID:       r.InvoiceID,
		Amount:          r.Amount,
		PaymentDate:     r.PaymentDate,
		Method:          r.Method,
		ReferenceNumber: r.ReferenceNumber,
		Notes:           r.Notes,
		BaseModel:       types.GetDefaultBaseModel(ctx),
	}
}

// PaymentResponse represents a ledger entry in API responses
type PaymentResponse struct {
	*payment.Payment
}

func NewPaymentResponse(p *payment.Payment) *PaymentResponse {
	return &PaymentResponse{Payment: p}
}

// ListPaymentsResponse represents a paginated list of ledger entries
type ListPaymentsResponse struct {
	Items      []*PaymentResponse       `json:"items"`
	Pagination types.PaginationResponse `json:"pagination"`
}
