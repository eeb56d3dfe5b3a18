package maintenance

import (
	"time"

	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/garagio/garagio/internal/types"
)

// Request is a maintenance issue reported on a unit
type Request struct {
	ID          string                    `json:"id" gorm:"primaryKey"`
	UnitID      string                    `json:"unit_id"`
	CustomerID  string                    `json:"customer_id"`
	Title       string                    `json:"title"`
	Description string                    `json:"description,omitempty"`
	Priority    types.MaintenancePriority `json:"priority"`
	// The request_status moves pending -> in_progress -> completed
	RequestStatus types.MaintenanceStatus `json:"request_status"`
	// The assigned_to field holds the staff user handling the request (optional)
	AssignedTo *string    `json:"assigned_to,omitempty"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`

	types.BaseModel `gorm:"embedded"`
}

func (r *Request) TableName() string {
	return "maintenance_requests"
}

func (r *Request) Validate() error {
	if r.UnitID == "" {
		return ierr.NewError("unit id is required").
			WithHint("Maintenance request must reference a unit").
			Mark(ierr.ErrValidation)
	}
	if r.Title == "" {
		return ierr.NewError("title is required").
			WithHint("Maintenance request title cannot be empty").
			Mark(ierr.ErrValidation)
	}
	if err := r.Priority.Validate(); err != nil {
		return err
	}
	if err := r.RequestStatus.Validate(); err != nil {
		return err
	}
	return nil
}
