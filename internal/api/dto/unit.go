package dto

import (
	"context"

	"github.com/garagio/garagio/internal/domain/unit"
	"github.com/garagio/garagio/internal/types"
	"github.com/shopspring/decimal"
)

// CreateUnitRequest represents a request to create a unit
type CreateUnitRequest struct {
	PropertyID  string          `json:"property_id" binding:"required"`
	UnitNumber  string          `json:"unit_number" binding:"required"`
	SizeSqm     decimal.Decimal `json:"size_sqm,omitempty"`
	MonthlyRate decimal.Decimal `json:"monthly_rate,omitempty"`
}

func (r *CreateUnitRequest) ToUnit(ctx context.Context) *unit.Unit {
	return &unit.Unit{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_UNIT),
		PropertyID:  r.PropertyID,
		UnitNumber:  r.UnitNumber,
		SizeSqm:     r.SizeSqm,
		MonthlyRate: r.MonthlyRate,
		Occupied:    false,
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
}

// UpdateUnitRequest represents a request to update a unit. The occupancy
// flag is deliberately absent: it is owned by the contract lifecycle.
type UpdateUnitRequest struct {
	UnitNumber  *string          `json:"unit_number,omitempty"`
	SizeSqm     *decimal.Decimal `json:"size_sqm,omitempty"`
	MonthlyRate *decimal.Decimal `json:"monthly_rate,omitempty"`
}

// UnitResponse represents a unit in API responses
type UnitResponse struct {
	*unit.Unit
}

func NewUnitResponse(u *unit.Unit) *UnitResponse {
	return &UnitResponse{Unit: u}
}

// ListUnitsResponse represents a paginated list of units
type ListUnitsResponse struct {
	Items      []*UnitResponse          `json:"items"`
	Pagination types.PaginationResponse `json:"pagination"`
}
