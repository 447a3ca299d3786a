package apperror

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Sentinel kinds for every failure the core can surface. Handlers map these to
// HTTP statuses; services only ever return one of them (wrapped in an *AppError).
var (
	ErrInvalidUpload       = errors.New("invalid upload")
	ErrUpstreamUnavailable = errors.New("upstream model unavailable")
	ErrMalformedResponse   = errors.New("malformed model response")
	ErrSchemaValidation    = errors.New("schema validation failed")
	ErrUserNotFound        = errors.New("user not found")
	ErrPortfolioNotFound   = errors.New("portfolio not found")
	ErrNoResumeOnFile      = errors.New("no resume on file")
	ErrForbidden           = errors.New("forbidden")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInternal            = errors.New("internal error")
)

type AppError struct {
	Kind    error
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind.Error(), e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Kind
}

func New(kind error, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

func Wrap(kind error, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidUpload), errors.Is(err, ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrPortfolioNotFound), errors.Is(err, ErrNoResumeOnFile):
		return fiber.StatusNotFound
	case errors.Is(err, ErrMalformedResponse), errors.Is(err, ErrSchemaValidation):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, ErrUpstreamUnavailable):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// Code returns the machine-readable error code used in JSON responses.
// NoResumeOnFile and UserNotFound share a status but must stay distinguishable.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrInvalidUpload):
		return "invalid_upload"
	case errors.Is(err, ErrUpstreamUnavailable):
		return "upstream_unavailable"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed_response"
	case errors.Is(err, ErrSchemaValidation):
		return "schema_validation_failed"
	case errors.Is(err, ErrUserNotFound):
		return "user_not_found"
	case errors.Is(err, ErrPortfolioNotFound):
		return "portfolio_not_found"
	case errors.Is(err, ErrNoResumeOnFile):
		return "no_resume_on_file"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	default:
		return "internal_error"
	}
}

// Message returns the user-facing message for an error, hiding internals for
// anything that is not an *AppError.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "An internal server error occurred"
}
