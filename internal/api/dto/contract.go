package dto

import (
	"context"
	"time"

	"github.com/garagio/garagio/internal/domain/contract"
	"github.com/garagio/garagio/internal/types"
	"github.com/shopspring/decimal"
)

// CreateContractRequest represents a request to create a contract
type CreateContractRequest struct {
	UnitID      string           `json:"unit_id" binding:"required"`
	CustomerID  string           `json:"customer_id" binding:"required"`
	StartDate   time.Time        `json:"start_date" binding:"required"`
	EndDate     *time.Time       `json:"end_date,omitempty"`
	MonthlyRent decimal.Decimal  `json:"monthly_rent" binding:"required"`
	Deposit     *decimal.Decimal `json:"deposit,omitempty"`
	Notes       string           `json:"notes,omitempty"`
}

func (r *CreateContractRequest) ToContract(ctx context.Context) *contract.Contract {
	return &contract.Contract{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CONTRACT),
		UnitID:         r.UnitID,
		CustomerID:     r.CustomerID,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		MonthlyRent:    r.MonthlyRent,
		Deposit:        r.Deposit,
		ContractStatus: types.ContractStatusActive,
		Notes:          r.Notes,
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}
}

// UpdateContractStatusRequest represents a contract status transition
type UpdateContractStatusRequest struct {
	Status types.ContractStatus `json:"status" binding:"required"`
}

// ContractResponse represents a contract in API responses
type ContractResponse struct {
	*contract.Contract
}

func NewContractResponse(c *contract.Contract) *ContractResponse {
	return &ContractResponse{Contract: c}
}

// ListContractsResponse represents a paginated list of contracts
type ListContractsResponse struct {
	Items      []*ContractResponse      `json:"items"`
	Pagination types.PaginationResponse `json:"pagination"`
}
