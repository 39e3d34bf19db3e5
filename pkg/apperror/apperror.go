package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies an application error so call sites can branch without
// string matching.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindValidation
	KindInvalidTransition
	KindStore
)

// AppError is the error type returned by every service operation. It
// carries an HTTP status code, a kind for programmatic checks and an
// optional wrapped cause (never exposed to clients).
type AppError struct {
	Code    int
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound marks an absent listing, booking or review.
func NotFound(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Kind: KindNotFound, Message: message}
}

// Validation marks malformed or out-of-range input.
func Validation(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Kind: KindValidation, Message: message}
}

// InvalidTransition marks a lifecycle state machine violation.
func InvalidTransition(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Kind: KindInvalidTransition, Message: message}
}

// Store wraps a record store transport/auth failure.
func Store(message string, err error) *AppError {
	return &AppError{Code: http.StatusBadGateway, Kind: KindStore, Message: message, Err: err}
}

func isKind(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

func IsNotFound(err error) bool          { return isKind(err, KindNotFound) }
func IsValidation(err error) bool        { return isKind(err, KindValidation) }
func IsInvalidTransition(err error) bool { return isKind(err, KindInvalidTransition) }
func IsStore(err error) bool             { return isKind(err, KindStore) }
