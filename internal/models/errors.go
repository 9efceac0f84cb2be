package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes used across services and repositories.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeConflict     = "CONFLICT"
	CodeNotFound     = "NOT_FOUND"
	CodeInternal     = "INTERNAL_ERROR"
)

// AppError is the application error carried from services up to handlers.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationError signals missing or malformed input.
func NewValidationError(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

// NewUnauthorizedError signals a missing, invalid or expired session token.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: CodeUnauthorized, Message: message}
}

// NewForbiddenError signals an operation the caller may never perform,
// such as reacting to their own post.
func NewForbiddenError(message string) *AppError {
	return &AppError{Code: CodeForbidden, Message: message}
}

// NewConflictError signals a redundant state transition, such as liking
// the same post twice.
func NewConflictError(message string) *AppError {
	return &AppError{Code: CodeConflict, Message: message}
}

// NewNotFoundError signals a missing profile, post or sub-entry.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: CodeNotFound, Message: message}
}

// NewInternalError wraps an unexpected store or runtime failure.
func NewInternalError(err error) *AppError {
	return &AppError{Code: CodeInternal, Message: "Internal server error", Err: err}
}

// FieldError is one entry of a validation error response body.
type FieldError struct {
	Msg string `json:"msg"`
}

// statusFor maps an error code to its HTTP status. Forbidden, conflict and
// not-found answer 400 to match the API contract clients already parse.
func statusFor(code string) int {
	switch code {
	case CodeUnauthorized:
		return fiber.StatusUnauthorized
	case CodeValidation, CodeForbidden, CodeConflict, CodeNotFound:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// RespondWithError renders err in the API's error shapes: auth and not-found
// failures as {"msg": ...}, input/state failures as {"errors": [{"msg": ...}]},
// anything else as a 500 with a generic message. Internal detail never leaks
// to the client.
func RespondWithError(c *fiber.Ctx, err error) error {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = NewInternalError(err)
	}

	status := statusFor(appErr.Code)
	switch appErr.Code {
	case CodeValidation, CodeForbidden, CodeConflict:
		return c.Status(status).JSON(fiber.Map{
			"errors": []FieldError{{Msg: appErr.Message}},
		})
	default:
		return c.Status(status).JSON(fiber.Map{"msg": appErr.Message})
	}
}

// RespondWithValidationErrors renders a batch of field validation messages
// in the {"errors": [...]} shape.
func RespondWithValidationErrors(c *fiber.Ctx, msgs []string) error {
	fields := make([]FieldError, 0, len(msgs))
	for _, m := range msgs {
		fields = append(fields, FieldError{Msg: m})
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fields})
}
