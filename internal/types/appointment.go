package types

import (
	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/samber/lo"
)

// AppointmentStatus is the scheduling state of a viewing or handover
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

func (s AppointmentStatus) String() string {
	return string(s)
}

func (s AppointmentStatus) Validate() error {
	allowed := []AppointmentStatus{
		AppointmentStatusScheduled,
		AppointmentStatusCompleted,
		AppointmentStatusCancelled,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid appointment status").
			WithHintf("Appointment status must be one of %v", allowed).
			Mark(ierr.ErrValidation)
	}
	return nil
}
