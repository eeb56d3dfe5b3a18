package dto

import (
	"context"
	"time"

	"github.com/garagio/garagio/internal/domain/maintenance"
	"github.com/garagio/garagio/internal/types"
)

type CreateMaintenanceRequestRequest struct {
	UnitID      string                    `json:"unit_id" binding:"required"`
	CustomerID  string                    `json:"customer_id" binding:"required"`
	Title       string                    `json:"title" binding:"required"`
	Description string                    `json:"description,omitempty"`
	Priority    types.MaintenancePriority `json:"priority,omitempty"`
}

func (r *CreateMaintenanceRequestRequest) ToMaintenanceRequest(ctx context.Context) *maintenance.Request {
	priority := r.Priority
	if priority == "" {
		priority = types.MaintenancePriorityMedium
	}
	return &maintenance.Request{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_MAINTENANCE_REQUEST),
		UnitID:        r.UnitID,
		CustomerID:    r.CustomerID,
		Title:         r.Title,
		Description:   r.Description,
		Priority:      priority,
		RequestStatus: types.MaintenanceStatusPending,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}
}

type UpdateMaintenanceRequestRequest struct {
	Title         *string                    `json:"title,omitempty"`
	Description   *string                    `json:"description,omitempty"`
	Priority      *types.MaintenancePriority `json:"priority,omitempty"`
	RequestStatus *types.MaintenanceStatus   `json:"request_status,omitempty"`
	AssignedTo    *string                    `json:"assigned_to,omitempty"`
	ResolvedAt    *time.Time                 `json:"resolved_at,omitempty"`
}

type MaintenanceRequestResponse struct {
	*maintenance.Request
}

func NewMaintenanceRequestResponse(r *maintenance.Request) *MaintenanceRequestResponse {
	return &MaintenanceRequestResponse{Request: r}
}

type ListMaintenanceRequestsResponse struct {
	Items      []*MaintenanceRequestResponse `json:"items"`
	Pagination types.PaginationResponse      `json:"pagination"`
}
