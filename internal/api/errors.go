package api

import (
	"errors"
	"net/http"

	"github.com/vitalage/bioage-api/internal/domain"
	"github.com/vitalage/bioage-api/internal/domain/bioage"
	"github.com/vitalage/bioage-api/internal/service"
	"github.com/vitalage/bioage-api/internal/service/auth"
	"github.com/vitalage/bioage-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, service.ErrNotOnboarded),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, service.ErrAlreadyOnboarded),
		errors.Is(err, service.ErrDuplicateCheckIn),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, service.ErrInvalidWindow),
		errors.Is(err, service.ErrInvalidRange),
		errors.Is(err, bioage.ErrAnswerOutOfRange),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrInvalidPassword),
		errors.Is(err, domain.ErrInvalidTimezone):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message based
// on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid email or password"

	// Onboarding and check-in flow
	case errors.Is(err, service.ErrNotOnboarded):
		return "Complete onboarding first"

	case errors.Is(err, service.ErrAlreadyOnboarded):
		return "Onboarding has already been completed"

	case errors.Is(err, service.ErrDuplicateCheckIn):
		return "A check-in already exists for today"

	case errors.Is(err, service.ErrEmailTaken):
		return "Email address is already registered"

	case errors.Is(err, bioage.ErrAnswerOutOfRange):
		return "Questionnaire answers must be between -2 and 2"

	case errors.Is(err, service.ErrInvalidWindow):
		return "Window must be weekly, monthly or yearly"

	case errors.Is(err, service.ErrInvalidRange):
		return "Range must be weekly, monthly or yearly"

	// Validation errors
	case errors.Is(err, domain.ErrInvalidEmail):
		return "Invalid email address"

	case errors.Is(err, domain.ErrInvalidPassword):
		return "Password must be between 12 and 72 characters"

	case errors.Is(err, domain.ErrInvalidTimezone):
		return "Unknown timezone"

	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	default:
		return "An unexpected error occurred"
	}
}
