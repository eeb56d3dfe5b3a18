package property

import (
	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/garagio/garagio/internal/types"
)

// Property is a building or lot holding rentable units
type Property struct {
	ID          string `json:"id" gorm:"primaryKey"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description,omitempty"`

	types.BaseModel `gorm:"embedded"`
}

func (p *Property) TableName() string {
	return "properties"
}

func (p *Property) Validate() error {
	if p.Name == "" {
		return ierr.NewError("property name is required").
			WithHint("Property name cannot be empty").
			Mark(ierr.ErrValidation)
	}
	if p.Address == "" {
		return ierr.NewError("property address is required").
			WithHint("Property address cannot be empty").
			Mark(ierr.ErrValidation)
	}
	return nil
}
