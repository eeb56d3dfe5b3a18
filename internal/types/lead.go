package types

import (
	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/samber/lo"
)

// LeadStatus is the follow-up state of a landing page enquiry
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusConverted LeadStatus = "converted"
	LeadStatusDismissed LeadStatus = "dismissed"
)

func (s LeadStatus) String() string {
	return string(s)
}

func (s LeadStatus) Validate() error {
	allowed := []LeadStatus{
		LeadStatusNew,
		LeadStatusContacted,
		LeadStatusConverted,
		LeadStatusDismissed,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid lead status").
			WithHintf("Lead status must be one of %v", allowed).
			Mark(ierr.ErrValidation)
	}
	return nil
}
