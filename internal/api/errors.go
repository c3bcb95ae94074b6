package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mkessel/todo-api/internal/api/shared"
	"github.com/mkessel/todo-api/internal/domain"
	"github.com/mkessel/todo-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, store.ErrTaskNotFound):
		return http.StatusNotFound

	// Business-rule violations on well-typed input
	case errors.Is(err, domain.ErrTaskTitleEmpty):
		return http.StatusBadRequest

	// Malformed values that should have been caught at deserialization
	case errors.Is(err, domain.ErrInvalidTaskStatus),
		errors.Is(err, domain.ErrTaskIDInvalid):
		return http.StatusUnprocessableEntity

	case errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking internal details.
func GetSafeErrorMessage(err error) string {
	// Handle nil error
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"

	case errors.Is(err, domain.ErrTaskTitleEmpty):
		return "title must not be empty"

	case errors.Is(err, domain.ErrInvalidTaskStatus):
		return "status must be one of: pending, completed"

	case errors.Is(err, domain.ErrTaskIDInvalid):
		return "task ID must be a positive integer"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	// Default case for unknown errors
	default:
		return "An unexpected error occurred"
	}
}

// RespondWithDecodeError writes the response for a request body that failed
// to decode. A well-formed body carrying a wrong-typed field is a validation
// failure (422 with field detail); anything else is malformed JSON (400).
func RespondWithDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		shared.RespondWithValidationError(w, r, http.StatusUnprocessableEntity, "Validation error",
			[]shared.FieldError{{Field: typeErr.Field, Message: "invalid type"}})
		return
	}
	shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
}

// ValidationFieldErrors converts a validator error into per-field detail
// suitable for a 422 response body. Returns nil if the error does not carry
// field-level information.
func ValidationFieldErrors(err error) []shared.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make([]shared.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, shared.FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: getValidationTagMessage(fe.Tag()),
		})
	}
	return fields
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "oneof":
		return "invalid value"
	case "min":
		return "too short"
	case "max":
		return "too long"
	default:
		return "validation failed"
	}
}
