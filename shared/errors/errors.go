package errors

import (
	"errors"
	"net/http"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// ErrAlreadyExists is returned by storage when a uniqueness constraint rejects an insert.
var ErrAlreadyExists = errors.New("already exists")

func NotFound(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusNotFound}
}

func Forbidden(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusForbidden}
}

type ValidationReason int

const (
	MissingProperty ValidationReason = iota + 1
	TypeMismatch
)

func (r ValidationReason) String() string {
	switch r {
	case MissingProperty:
		return "missing property"
	case TypeMismatch:
		return "type mismatch"
	default:
		return "unknown"
	}
}

// ValidationError reports a malformed client payload. Always a 400.
type ValidationError struct {
	Reason  ValidationReason
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) StatusCode() int {
	return http.StatusBadRequest
}

// StatusCode resolves the transport status for err, 500 if err carries none.
func StatusCode(err error) int {
	var withCode *ErrorWithStatusCode
	if errors.As(err, &withCode) {
		return withCode.StatusCode
	}
	var validation *ValidationError
	if errors.As(err, &validation) {
		return validation.StatusCode()
	}
	return http.StatusInternalServerError
}

func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

func IsForbidden(err error) bool {
	return StatusCode(err) == http.StatusForbidden
}

// IsValidation reports whether err is a ValidationError with the given reason.
func IsValidation(err error, reason ValidationReason) bool {
	var validation *ValidationError
	return errors.As(err, &validation) && validation.Reason == reason
}
