package lead

import (
	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/garagio/garagio/internal/types"
)

// Lead is an enquiry captured from the public landing page
type Lead struct {
	ID      string `json:"id" gorm:"primaryKey"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message,omitempty"`
	Source  string `json:"source,omitempty"`

	LeadStatus types.LeadStatus `json:"lead_status"`

	types.BaseModel `gorm:"embedded"`
}

func (l *Lead) TableName() string {
	return "leads"
}

func (l *Lead) Validate() error {
	if l.Name == "" {
		return ierr.NewError("lead name is required").
			WithHint("Name cannot be empty").
			Mark(ierr.ErrValidation)
	}
	if l.Email == "" && l.Phone == "" {
		return ierr.NewError("contact detail is required").
			WithHint("Provide an email address or a phone number").
			Mark(ierr.ErrValidation)
	}
	if err := l.LeadStatus.Validate(); err != nil {
		return err
	}
	return nil
}
