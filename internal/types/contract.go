package types

import (
	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/samber/lo"
)

// ContractStatus is the lease lifecycle state of a contract
type ContractStatus string

const (
	// ContractStatusActive indicates a running lease. The unit it references
	// is occupied for as long as the contract stays active.
	ContractStatusActive ContractStatus = "active"
	// ContractStatusExpired indicates the lease ran to its end date
	ContractStatusExpired ContractStatus = "expired"
	// ContractStatusTerminated indicates the lease was ended early
	ContractStatusTerminated ContractStatus = "terminated"
)

func (s ContractStatus) String() string {
	return string(s)
}

func (s ContractStatus) Validate() error {
	allowed := []ContractStatus{
		ContractStatusActive,
		ContractStatusExpired,
		ContractStatusTerminated,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid contract status").
			WithHintf("Contract status must be one of %v", allowed).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// IsTerminal reports whether a contract in this status can never become
// active again. Expired and terminated are both terminal.
func (s ContractStatus) IsTerminal() bool {
	return s == ContractStatusExpired || s == ContractStatusTerminated
}

// CanTransitionTo reports whether the status change is a legal lifecycle
// transition. Re-applying the current status is allowed so that status
// updates stay idempotent.
func (s ContractStatus) CanTransitionTo(target ContractStatus) bool {
	if s == target {
		return true
	}
	return s == ContractStatusActive && target.IsTerminal()
}
