package unit

import (
	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/garagio/garagio/internal/types"
	"github.com/shopspring/decimal"
)

// Unit is a rentable physical space inside a property
type Unit struct {
	// Unique identifier for this unit
	ID string `json:"id" gorm:"primaryKey"`
	// The property_id references the parent property
	PropertyID string `json:"property_id"`
	// Human-readable unit number within the property, e.g. "G-12"
	UnitNumber string `json:"unit_number"`
	// Floor area in square meters (optional)
	SizeSqm decimal.Decimal `json:"size_sqm"`
	// Advertised monthly rate for new leases
	MonthlyRate decimal.Decimal `json:"monthly_rate"`
	// Occupied is true if and only if a contract on this unit is active.
	// It is written exclusively by the contract lifecycle, in the same
	// transaction as the contract status write it accompanies.
	Occupied bool `json:"occupied"`

	types.BaseModel `gorm:"embedded"`
}

func (u *Unit) TableName() string {
	return "units"
}

func (u *Unit) Validate() error {
	if u.PropertyID == "" {
		return ierr.NewError("property id is required").
			WithHint("Unit must reference a property").
			Mark(ierr.ErrValidation)
	}
	if u.UnitNumber == "" {
		return ierr.NewError("unit number is required").
			WithHint("Unit number cannot be empty").
			Mark(ierr.ErrValidation)
	}
	if u.MonthlyRate.IsNegative() {
		return ierr.NewError("invalid monthly rate").
			WithHint("Monthly rate must not be negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}
