package gorm

import (
	"github.com/cockroachdb/errors"
	ierr "github.com/garagio/garagio/internal/errors"
	"gorm.io/gorm"
)

// translateDBError maps driver errors onto the application error taxonomy.
// Call sites that need a more specific hint build their own error instead.
func translateDBError(err error, msg string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ierr.WithError(err).
			WithMessage(msg).
			WithHint("The requested resource was not found").
			Mark(ierr.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ierr.WithError(err).
			WithMessage(msg).
			WithHint("A resource with the same unique value already exists").
			Mark(ierr.ErrAlreadyExists)
	default:
		return ierr.WithError(err).
			WithMessage(msg).
			WithHint("An internal database error occurred").
			Mark(ierr.ErrDatabase)
	}
}
