package failure

import (
	"errors"
	"net/http"
)

// Kind classifies a failure for API clients independently of the HTTP code.
type Kind string

const (
	KindValidation        Kind = "validation_error"
	KindUnauthorized      Kind = "unauthorized"
	KindForbidden         Kind = "forbidden"
	KindNotFound          Kind = "not_found"
	KindConflict          Kind = "conflict"
	KindUnprocessable     Kind = "unprocessable"
	KindInvalidTransition Kind = "invalid_transition"
	KindLimitExceeded     Kind = "limit_exceeded"
	KindTooManyRequests   Kind = "too_many_requests"
	KindUnimplemented     Kind = "unimplemented"
	KindInternal          Kind = "internal"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
// Kind is optional, when empty it is derived from Code.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Kind    Kind   `json:"kind,omitempty"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}
var InvalidOffsetParam = &Failure{Code: http.StatusBadRequest, Message: "invalid offset parameter"}
var LimitExceeded = &Failure{Code: http.StatusRequestedRangeNotSatisfiable, Message: "limit exceeds the maximum page size"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// Unimplemented returns a new Failure with code for unimplemented method.
func Unimplemented(methodName string) error {
	return &Failure{
		Code:    http.StatusNotImplemented,
		Message: methodName,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// UnprocessableEntity returns a new Failure for requests that are well formed but not applicable to the current state.
func UnprocessableEntity(message string) error {
	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Message: message,
	}
}

// InvalidTransition returns a new Failure for a status change the lifecycle does not allow.
func InvalidTransition(message string) error {
	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Message: message,
		Kind:    KindInvalidTransition,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// IsNotFound reports whether err carries a not found code.
func IsNotFound(err error) bool {
	return GetCode(err) == http.StatusNotFound
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the kind of an error interface. Errors that are not failures are internal.
func GetKind(err error) Kind {
	var fail *Failure
	if !errors.As(err, &fail) {
		return KindInternal
	}

	if fail.Kind != "" {
		return fail.Kind
	}

	switch fail.Code {
	case http.StatusBadRequest:
		return KindValidation
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusConflict:
		return KindConflict
	case http.StatusUnprocessableEntity:
		return KindUnprocessable
	case http.StatusRequestedRangeNotSatisfiable:
		return KindLimitExceeded
	case http.StatusTooManyRequests:
		return KindTooManyRequests
	case http.StatusNotImplemented:
		return KindUnimplemented
	default:
		return KindInternal
	}
}
