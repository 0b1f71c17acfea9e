// Package apierror maps domain errors onto the JSON error body of the HTTP API.
package apierror

import (
	"errors"
	"net/http"

	"github.com/dtroode/jobmarket-server/internal/model"
)

// APIError represents a standardized API error response.
type APIError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Details    any    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

// WithDetails returns a copy of the error with additional details.
func (e *APIError) WithDetails(details any) *APIError {
	return &APIError{
		Code:       e.Code,
		Message:    e.Message,
		StatusCode: e.StatusCode,
		Details:    details,
	}
}

// WithMessage returns a copy of the error with a custom message.
func (e *APIError) WithMessage(message string) *APIError {
	return &APIError{
		Code:       e.Code,
		Message:    message,
		StatusCode: e.StatusCode,
		Details:    e.Details,
	}
}

var (
	ErrBadRequest = &APIError{
		Code:       "bad_request",
		Message:    "Invalid request",
		StatusCode: http.StatusBadRequest,
	}

	ErrUnauthorized = &APIError{
		Code:       "unauthorized",
		Message:    "Authentication required",
		StatusCode: http.StatusUnauthorized,
	}

	ErrInvalidCredentials = &APIError{
		Code:       "invalid_credentials",
		Message:    "Invalid credentials",
		StatusCode: http.StatusUnauthorized,
	}

	// ErrAccessDenied is returned when a refresh token is stale, revoked or forged.
	ErrAccessDenied = &APIError{
		Code:       "access_denied",
		Message:    "Access Denied",
		StatusCode: http.StatusUnauthorized,
	}

	ErrForbidden = &APIError{
		Code:       "forbidden",
		Message:    "You don't have permission to perform this action",
		StatusCode: http.StatusForbidden,
	}

	ErrNotFound = &APIError{
		Code:       "not_found",
		Message:    "Resource not found",
		StatusCode: http.StatusNotFound,
	}

	ErrConflict = &APIError{
		Code:       "conflict",
		Message:    "Email already exists",
		StatusCode: http.StatusConflict,
	}

	// ErrInUse is returned when a record is still referenced by others.
	ErrInUse = &APIError{
		Code:       "in_use",
		Message:    "Resource is still referenced by other records",
		StatusCode: http.StatusConflict,
	}

	ErrPayloadTooLarge = &APIError{
		Code:       "payload_too_large",
		Message:    "Request body is too large",
		StatusCode: http.StatusRequestEntityTooLarge,
	}

	ErrRateLimited = &APIError{
		Code:       "rate_limited",
		Message:    "Too many requests. Please try again later.",
		StatusCode: http.StatusTooManyRequests,
	}

	ErrInternal = &APIError{
		Code:       "internal_error",
		Message:    "An internal error occurred",
		StatusCode: http.StatusInternalServerError,
	}
)

// NewValidationErrors creates a validation error with one message per field.
func NewValidationErrors(fields map[string]string) *APIError {
	return &APIError{
		Code:       "validation_error",
		Message:    "One or more fields failed validation",
		StatusCode: http.StatusBadRequest,
		Details:    fields,
	}
}

// FromError converts any error into an APIError. Unknown errors become
// ErrInternal so internal details never reach the client.
func FromError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var verr *model.ValidationError
	if errors.As(err, &verr) {
		return NewValidationErrors(verr.Fields)
	}

	var notFound *model.NotFoundError
	if errors.As(err, &notFound) {
		return ErrNotFound.WithMessage(notFound.Error())
	}

	switch {
	case errors.Is(err, model.ErrDuplicateIdentity), errors.Is(err, model.ErrConflict):
		return ErrConflict
	case errors.Is(err, model.ErrInvalidCredentials):
		return ErrInvalidCredentials
	case errors.Is(err, model.ErrAccessDenied):
		return ErrAccessDenied
	case errors.Is(err, model.ErrUnauthenticated):
		return ErrUnauthorized
	case errors.Is(err, model.ErrForbidden):
		return ErrForbidden
	case errors.Is(err, model.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, model.ErrInUse):
		return ErrInUse
	case errors.Is(err, model.ErrInvalidReference):
		return ErrBadRequest.WithMessage("Referenced record does not exist")
	default:
		return ErrInternal
	}
}
