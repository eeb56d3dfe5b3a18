package customer

import (
	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/garagio/garagio/internal/types"
)

// Customer is a person or company renting units
type Customer struct {
	ID    string `json:"id" gorm:"primaryKey"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Notes string `json:"notes,omitempty"`

	types.BaseModel `gorm:"embedded"`
}

func (c *Customer) TableName() string {
	return "customers"
}

func (c *Customer) Validate() error {
	if c.Name == "" {
		return ierr.NewError("customer name is required").
			WithHint("Customer name cannot be empty").
			Mark(ierr.ErrValidation)
	}
	if c.Email == "" {
		return ierr.NewError("customer email is required").
			WithHint("Customer email cannot be empty").
			Mark(ierr.ErrValidation)
	}
	return nil
}
