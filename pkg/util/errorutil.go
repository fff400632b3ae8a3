package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres SQLSTATE codes the service layer cares about.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Stable error codes carried on DomainError and echoed in logs.
const (
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeDuplicateValue     = "DUPLICATE_VALUE"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInternalError      = "INTERNAL_ERROR"
)

// DomainError standardizes application errors across service and HTTP layers.
// Details carries the human-readable, per-field reasons rendered in the
// response body.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    []string
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details []string) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

// NewValidationError reports malformed, missing or out-of-range fields.
func NewValidationError(details ...string) error {
	return NewDomainError(CodeValidationFailed, "Validation errors", http.StatusBadRequest, details)
}

// NewDuplicateValue reports a uniqueness conflict on the named field.
func NewDuplicateValue(message string) error {
	return NewDomainError(CodeDuplicateValue, message, http.StatusBadRequest, []string{message})
}

// NewNotFound reports an absent entity.
func NewNotFound(message string) error {
	return NewDomainError(CodeNotFound, message, http.StatusNotFound, nil)
}

// NewConflict reports a state conflict, e.g. deleting a referenced parent.
func NewConflict(message string) error {
	return NewDomainError(CodeConflict, message, http.StatusConflict, []string{message})
}

// NewInvalidCredentials reports a failed old-password verification.
func NewInvalidCredentials(message string) error {
	return NewDomainError(CodeInvalidCredentials, message, http.StatusBadRequest, []string{message})
}

// NewInternalError wraps an unexpected failure without leaking internals.
func NewInternalError(err error) error {
	return &DomainError{
		Code:       CodeInternalError,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError. Database errors are
// translated: no rows to NOT_FOUND, unique violation to DUPLICATE_VALUE,
// foreign-key violation to CONFLICT.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return &DomainError{
			Code:       CodeNotFound,
			Message:    "resource not found",
			HTTPStatus: http.StatusNotFound,
		}
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return &DomainError{
				Code:       CodeDuplicateValue,
				Message:    "value already in use",
				HTTPStatus: http.StatusBadRequest,
				Details:    []string{"value already in use"},
				Err:        err,
			}
		case pgForeignKeyViolation:
			return &DomainError{
				Code:       CodeConflict,
				Message:    "entity is referenced by other records",
				HTTPStatus: http.StatusConflict,
				Details:    []string{"entity is referenced by other records"},
				Err:        err,
			}
		}
	}
	return &DomainError{
		Code:       CodeInternalError,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// MapError converts generic errors to DomainError.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	return ToDomainError(err)
}
