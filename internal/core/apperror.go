package core

import (
	"errors"
)

var (
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
	ErrAuth       = errors.New("authentication failed")
	ErrState      = errors.New("invalid state")
)

// AppError carries a message meant for the API client. Kind is one of the
// sentinels above; Err is the optional underlying cause.
type AppError struct {
	Kind    error
	Message string
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func Validation(message string) *AppError {
	return &AppError{Kind: ErrValidation, Message: message}
}

func Conflict(message string, cause error) *AppError {
	return &AppError{Kind: ErrConflict, Message: message, Err: cause}
}

func NotFound(message string, cause error) *AppError {
	return &AppError{Kind: ErrNotFound, Message: message, Err: cause}
}

func AuthFailed(message string, cause error) *AppError {
	return &AppError{Kind: ErrAuth, Message: message, Err: cause}
}

func InvalidState(message string, cause error) *AppError {
	return &AppError{Kind: ErrState, Message: message, Err: cause}
}
