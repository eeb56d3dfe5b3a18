package dto

import (
	"context"

	"github.com/garagio/garagio/internal/domain/property"
	"github.com/garagio/garagio/internal/types"
)

// CreatePropertyRequest represents a request to create a property
type CreatePropertyRequest struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address" binding:"required"`
	Description string `json:"description,omitempty"`
}

func (r *CreatePropertyRequest) ToProperty(ctx context.Context) *property.Property {
	return &property.Property{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PROPERTY),
		Name:        r.Name,
		Address:     r.Address,
		Description: r.Description,
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
}

// UpdatePropertyRequest represents a request to update a property
type UpdatePropertyRequest struct {
	Name        *string `json:"name,omitempty"`
	Address     *string `json:"address,omitempty"`
	Description *string `json:"description,omitempty"`
}

// PropertyResponse represents a property in API responses
type PropertyResponse struct {
	*property.Property
}

func NewPropertyResponse(p *property.Property) *PropertyResponse {
	return &PropertyResponse{Property: p}
}

// ListPropertiesResponse represents a paginated list of properties
type ListPropertiesResponse struct {
	Items      []*PropertyResponse      `json:"items"`
	Pagination types.PaginationResponse `json:"pagination"`
}
