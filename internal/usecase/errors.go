package usecase

import (
	"context"
	"errors"
	"net/http"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// storeError maps a record store error to the error returned to callers.
// Context errors and app errors raised by checks pass through untouched.
func storeError(err error, notFound string) error {
	if _, ok := apperror.As(err); ok {
		return err
	}
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrNotFound):
		return apperror.New(http.StatusNotFound, notFound, err)
	case errors.Is(err, domain.ErrInvalidPatch):
		return apperror.New(http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return apperror.Internal(err)
	}
}

// validated returns a check that runs the struct validation rules on the
// merged record.
func validated[T any](validate *validator.Validate) domain.Check[T] {
	return func(record *T) error {
		if err := validate.Struct(record); err != nil {
			return validationError(err)
		}
		return nil
	}
}

func validationError(err error) error {
	return apperror.New(http.StatusBadRequest, validation.Message(err), err)
}
