package dto

import (
	"context"

	"github.com/garagio/garagio/internal/domain/lead"
	"github.com/garagio/garagio/internal/types"
)

// CreateLeadRequest is accepted unauthenticated from the public enquiry form
type CreateLeadRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email,omitempty" binding:"omitempty,email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message,omitempty"`
	Source  string `json:"source,omitempty"`
}

func (r *CreateLeadRequest) ToLead(ctx context.Context) *lead.Lead {
	return &lead.Lead{
		ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_LEAD),
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Message:    r.Message,
		Source:     r.Source,
		LeadStatus: types.LeadStatusNew,
		BaseModel:  types.GetDefaultBaseModel(ctx),
	}
}

type UpdateLeadStatusRequest struct {
	LeadStatus types.LeadStatus `json:"lead_status" binding:"required"`
}

type LeadResponse struct {
	*lead.Lead
}

func NewLeadResponse(l *lead.Lead) *LeadResponse {
	return &LeadResponse{Lead: l}
}

type ListLeadsResponse struct {
	Items      []*LeadResponse          `json:"items"`
	Pagination types.PaginationResponse `json:"pagination"`
}
