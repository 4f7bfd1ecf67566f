package core

import (
	"errors"
	"net/http"
)

const unexpectedErr = "unexpected error occurred"

type Kind int

const (
	KindNoContent Kind = iota
	KindOK
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindInternalError
)

// ErrorBody is the JSON error shape of the simulator API.
type ErrorBody struct {
	Message    string `json:"error_msg"`
	StatusCode int    `json:"status_code"`
}

// Result is the outcome of a simulator operation. Exactly one of Body and
// Error is set for OK and error kinds; NoContent carries neither.
type Result struct {
	Kind       Kind
	StatusCode int
	Body       any
	Error      *ErrorBody
}

func NoContent() Result {
	return Result{Kind: KindNoContent, StatusCode: http.StatusNoContent}
}

func OK(body any) Result {
	return Result{Kind: KindOK, StatusCode: http.StatusOK, Body: body}
}

func BadRequest(message string) Result {
	return failure(KindBadRequest, http.StatusBadRequest, message)
}

func Unauthorized(message string) Result {
	return failure(KindUnauthorized, http.StatusUnauthorized, message)
}

func Forbidden(message string) Result {
	return failure(KindForbidden, http.StatusForbidden, message)
}

func InternalError() Result {
	return failure(KindInternalError, http.StatusInternalServerError, unexpectedErr)
}

// FromError maps an error to a Result. Errors that are not an *AppError
// become an InternalError without exposing their text.
func FromError(err error) Result {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return InternalError()
	}

	switch {
	case errors.Is(appErr.Kind, ErrAuth):
		return Unauthorized(appErr.Message)
	case errors.Is(appErr.Kind, ErrValidation),
		errors.Is(appErr.Kind, ErrConflict),
		errors.Is(appErr.Kind, ErrNotFound),
		errors.Is(appErr.Kind, ErrState):
		return BadRequest(appErr.Message)
	default:
		return InternalError()
	}
}

func failure(kind Kind, code int, message string) Result {
	return Result{
		Kind:       kind,
		StatusCode: code,
		Error: &ErrorBody{
			Message:    message,
			StatusCode: code,
		},
	}
}
