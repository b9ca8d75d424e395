package usecase

import (
	"errors"
	"strings"

	"prolinked-backend/internal/domain"
	"prolinked-backend/pkg/apperror"
	"prolinked-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

func validateInput(v *validator.Validate, in interface{}) error {
	if err := v.Struct(in); err != nil {
		return apperror.Validation("Validation failed", validation.FormatValidationErrors(err))
	}
	return nil
}

// internalErr passes AppErrors through and hides every other cause behind a 500.
func internalErr(err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperror.Internal(err)
}

// notFoundOr maps domain.ErrNotFound to a 404 with msg.
func notFoundOr(err error, msg string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound(msg)
	}
	return internalErr(err)
}

func requireRole(actor domain.Actor, role, msg string) error {
	if actor.UserID <= 0 {
		return apperror.Unauthorized("User not authenticated")
	}
	if actor.Role != role {
		return apperror.Forbidden(msg)
	}
	return nil
}

// trimmed returns nil for nil or blank input.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
