package appointment

import (
	"time"

	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/garagio/garagio/internal/types"
)

// Appointment is a scheduled viewing or key handover
type Appointment struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	CustomerID  string     `json:"customer_id"`
	UnitID      *string    `json:"unit_id,omitempty"`
	ScheduledAt time.Time  `json:"scheduled_at"`
	Purpose     string     `json:"purpose,omitempty"`
	Notes       string     `json:"notes,omitempty"`

	AppointmentStatus types.AppointmentStatus `json:"appointment_status"`

	types.BaseModel `gorm:"embedded"`
}

func (a *Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) Validate() error {
	if a.CustomerID == "" {
		return ierr.NewError("customer id is required").
			WithHint("Appointment must reference a customer").
			Mark(ierr.ErrValidation)
	}
	if a.ScheduledAt.IsZero() {
		return ierr.NewError("scheduled time is required").
			WithHint("Appointment time cannot be empty").
			Mark(ierr.ErrValidation)
	}
	if err := a.AppointmentStatus.Validate(); err != nil {
		return err
	}
	return nil
}
