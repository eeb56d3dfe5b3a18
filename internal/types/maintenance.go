package types

import (
	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/samber/lo"
)

// MaintenanceStatus is the handling state of a maintenance request
type MaintenanceStatus string

const (
	MaintenanceStatusPending    MaintenanceStatus = "pending"
	MaintenanceStatusInProgress MaintenanceStatus = "in_progress"
	MaintenanceStatusCompleted  MaintenanceStatus = "completed"
)

func (s MaintenanceStatus) String() string {
	return string(s)
}

func (s MaintenanceStatus) Validate() error {
	allowed := []MaintenanceStatus{
		MaintenanceStatusPending,
		MaintenanceStatusInProgress,
		MaintenanceStatusCompleted,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid maintenance status").
			WithHintf("Maintenance status must be one of %v", allowed).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// MaintenancePriority ranks how urgently a request needs attention
type MaintenancePriority string

const (
	MaintenancePriorityLow    MaintenancePriority = "low"
	MaintenancePriorityMedium MaintenancePriority = "medium"
	MaintenancePriorityHigh   MaintenancePriority = "high"
)

func (p MaintenancePriority) Validate() error {
	allowed := []MaintenancePriority{
		MaintenancePriorityLow,
		MaintenancePriorityMedium,
		MaintenancePriorityHigh,
	}
	if !lo.Contains(allowed, p) {
		return ierr.NewError("invalid maintenance priority").
			WithHintf("Maintenance priority must be one of %v", allowed).
			Mark(ierr.ErrValidation)
	}
	return nil
}
