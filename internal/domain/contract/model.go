package contract

import (
	"time"

	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/garagio/garagio/internal/types"
	"github.com/shopspring/decimal"
)

// Contract is a lease binding one customer to one unit for a time span.
// It is the single source of truth that drives unit occupancy: at most one
// contract per unit may be active at any time.
type Contract struct {
	// Unique identifier for this contract
	ID string `json:"id" gorm:"primaryKey"`
	// The unit_id references the leased unit
	UnitID string `json:"unit_id"`
	// The customer_id references the renting customer
	CustomerID string `json:"customer_id"`
	// Lease start date
	StartDate time.Time `json:"start_date"`
	// Lease end date (optional, open-ended when nil)
	EndDate *time.Time `json:"end_date,omitempty"`
	// Agreed monthly rent, must be positive
	MonthlyRent decimal.Decimal `json:"monthly_rent"`
	// Deposit held for the lease (optional)
	Deposit *decimal.Decimal `json:"deposit,omitempty"`
	// The contract_status is the lease lifecycle state. Active contracts
	// keep their unit occupied; expired and terminated are terminal.
	ContractStatus types.ContractStatus `json:"contract_status"`
	// Free-text notes
	Notes string `json:"notes,omitempty"`

	types.BaseModel `gorm:"embedded"`
}

func (c *Contract) TableName() string {
	return "contracts"
}

// Validate validates the contract
func (c *Contract) Validate() error {
	if c.UnitID == "" {
		return ierr.NewError("unit id is required").
			WithHint("Contract must reference a unit").
			Mark(ierr.ErrValidation)
	}
	if c.CustomerID == "" {
		return ierr.NewError("customer id is required").
			WithHint("Contract must reference a customer").
			Mark(ierr.ErrValidation)
	}
	if c.MonthlyRent.IsZero() || c.MonthlyRent.IsNegative() {
		return ierr.NewError("invalid monthly rent").
			WithHint("Monthly rent must be greater than 0").
			Mark(ierr.ErrValidation)
	}
	if c.StartDate.IsZero() {
		return ierr.NewError("start date is required").
			WithHint("Contract start date cannot be empty").
			Mark(ierr.ErrValidation)
	}
	if c.EndDate != nil && c.StartDate.After(*c.EndDate) {
		return ierr.NewError("invalid date range").
			WithHint("Contract start date must not be after the end date").
			Mark(ierr.ErrValidation)
	}
	if c.Deposit != nil && c.Deposit.IsNegative() {
		return ierr.NewError("invalid deposit").
			WithHint("Deposit must not be negative").
			Mark(ierr.ErrValidation)
	}
	if err := c.ContractStatus.Validate(); err != nil {
		return err
	}
	return nil
}
