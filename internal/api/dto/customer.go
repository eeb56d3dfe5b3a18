package dto

import (
	"context"

	"github.com/garagio/garagio/internal/domain/customer"
	"github.com/garagio/garagio/internal/types"
)

// CreateCustomerRequest represents a request to create a customer
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required" validate:"email"`
	Phone string `json:"phone,omitempty"`
	Notes string `json:"notes,omitempty"`
}

func (r *CreateCustomerRequest) ToCustomer(ctx context.Context) *customer.Customer {
	return &customer.Customer{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CUSTOMER),
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Notes:     r.Notes,
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
}

// UpdateCustomerRequest represents a request to update a customer
type UpdateCustomerRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone *string `json:"phone,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	*customer.Customer
}

func NewCustomerResponse(c *customer.Customer) *CustomerResponse {
	return &CustomerResponse{Customer: c}
}

// ListCustomersResponse represents a paginated list of customers
type ListCustomersResponse struct {
	Items      []*CustomerResponse      `json:"items"`
	Pagination types.PaginationResponse `json:"pagination"`
}
