package dto

import (
	"context"
	"time"

	"github.com/garagio/garagio/internal/domain/appointment"
	"github.com/garagio/garagio/internal/types"
)

type CreateAppointmentRequest struct {
	CustomerID  string    `json:"customer_id" binding:"required"`
	UnitID      *string   `json:"unit_id,omitempty"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	Purpose     string    `json:"purpose,omitempty"`
	Notes       string    `json:"notes,omitempty"`
}

func (r *CreateAppointmentRequest) ToAppointment(ctx context.Context) *appointment.Appointment {
	return &appointment.Appointment{
		ID:                types.GenerateUUIDWithPrefix(types.UUID_PREFIX_APPOINTMENT),
		CustomerID:        r.CustomerID,
		UnitID:            r.UnitID,
		ScheduledAt:       r.ScheduledAt,
		Purpose:           r.Purpose,
		Notes:             r.Notes,
		AppointmentStatus: types.AppointmentStatusScheduled,
		BaseModel:         types.GetDefaultBaseModel(ctx),
	}
}

type UpdateAppointmentRequest struct {
	ScheduledAt       *time.Time               `json:"scheduled_at,omitempty"`
	Purpose           *string                  `json:"purpose,omitempty"`
	Notes             *string                  `json:"notes,omitempty"`
	AppointmentStatus *types.AppointmentStatus `json:"appointment_status,omitempty"`
}

type AppointmentResponse struct {
	*appointment.Appointment
}

func NewAppointmentResponse(a *appointment.Appointment) *AppointmentResponse {
	return &AppointmentResponse{Appointment: a}
}

type ListAppointmentsResponse struct {
	Items      []*AppointmentResponse   `json:"items"`
	Pagination types.PaginationResponse `json:"pagination"`
}
