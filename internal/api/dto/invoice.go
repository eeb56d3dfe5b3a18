package dto

import (
	"context"
	"time"

	"github.com/garagio/garagio/internal/domain/invoice"
	"github.com/garagio/garagio/internal/types"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest represents a request to create an invoice. The
// invoice number is generated when not supplied; a supplied number must be
// unique.
type CreateInvoiceRequest struct {
	CustomerID    string          `json:"customer_id" binding:"required"`
	ContractID    *string         `json:"contract_id,omitempty"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	DueDate       time.Time       `json:"due_date" binding:"required"`
	InvoiceNumber string          `json:"invoice_number,omitempty"`
	Description   string          `json:"description,omitempty"`
}

func (r *CreateInvoiceRequest) ToInvoice(ctx context.Context) *invoice.Invoice {
	number := r.InvoiceNumber
	if number == "" {
		number = types.GenerateInvoiceNumber()
	}

	return &invoice.Invoice{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE),
		InvoiceNumber: number,
		ContractID:    r.ContractID,
		CustomerID:    r.CustomerID,
		Amount:        r.Amount,
		DueDate:       r.DueDate,
		InvoiceStatus: types.InvoiceStatusSent,
		Description:   r.Description,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}
}

// UpdateInvoiceStatusRequest represents an administrative status correction
type UpdateInvoiceStatusRequest struct {
	Status types.InvoiceStatus `json:"status" binding:"required"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	*invoice.Invoice
	// AmountPaid is the cumulative ledger total, included when the caller
	// asked for payment details
	AmountPaid *decimal.Decimal `json:"amount_paid,omitempty"`
}

func NewInvoiceResponse(i *invoice.Invoice) *InvoiceResponse {
	return &InvoiceResponse{Invoice: i}
}

// ListInvoicesResponse represents a paginated list of invoices
type ListInvoicesResponse struct {
	Items      []*InvoiceResponse       `json:"items"`
	Pagination types.PaginationResponse `json:"pagination"`
}

// CreateCheckoutSessionRequest asks the settlement adapter to open a
// gateway-hosted payment flow for an invoice
type CreateCheckoutSessionRequest struct {
	SuccessURL string `json:"success_url,omitempty" validate:"omitempty,url"`
	CancelURL  string `json:"cancel_url,omitempty" validate:"omitempty,url"`
}

// CheckoutSessionResponse carries the redirect URL for the hosted flow
type CheckoutSessionResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}
