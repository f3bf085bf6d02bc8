package failure_test

import (
	"errors"
	"fmt"
	"hotel/shared/failure"
	"net/http"
	"testing"
)

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
	}{
		{name: "InvalidPageParam", failure: failure.InvalidPageParam, code: http.StatusBadRequest},
		{name: "InvalidLimitParam", failure: failure.InvalidLimitParam, code: http.StatusBadRequest},
		{name: "InvalidOffsetParam", failure: failure.InvalidOffsetParam, code: http.StatusBadRequest},
		{name: "LimitExceeded", failure: failure.LimitExceeded, code: http.StatusRequestedRangeNotSatisfiable},
		{name: "ForbiddenError", failure: failure.ForbiddenError, code: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Error() != tt.failure.Message {
				t.Errorf("expected Error() to return the message, got %s", tt.failure.Error())
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "bad request", err: failure.BadRequest(errors.New("date_in must be before date_out")), code: http.StatusBadRequest, message: "date_in must be before date_out"},
		{name: "bad request from string", err: failure.BadRequestFromString("invalid id"), code: http.StatusBadRequest, message: "invalid id"},
		{name: "unauthorized", err: failure.Unauthorized("token expired"), code: http.StatusUnauthorized, message: "token expired"},
		{name: "internal", err: failure.InternalError(errors.New("db down")), code: http.StatusInternalServerError, message: "db down"},
		{name: "not found", err: failure.NotFound("booking not found"), code: http.StatusNotFound, message: "booking not found"},
		{name: "conflict", err: failure.Conflict("room is not available"), code: http.StatusConflict, message: "room is not available"},
		{name: "unprocessable", err: failure.UnprocessableEntity("invalid transition"), code: http.StatusUnprocessableEntity, message: "invalid transition"},
		{name: "forbidden", err: failure.Forbidden("no access"), code: http.StatusForbidden, message: "no access"},
		{name: "unimplemented", err: failure.Unimplemented("Export"), code: http.StatusNotImplemented, message: "Export"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f *failure.Failure
			if !errors.As(tt.err, &f) {
				t.Fatalf("expected *failure.Failure, got %T", tt.err)
			}
			if f.Code != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, f.Code)
			}
			if f.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, f.Message)
			}
		})
	}
}

func TestNilErrorConstructors(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected BadRequest(nil) to be nil")
	}
	if failure.InternalError(nil) != nil {
		t.Error("expected InternalError(nil) to be nil")
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "failure", err: failure.NotFound("room not found"), want: http.StatusNotFound},
		{name: "wrapped failure", err: fmt.Errorf("failed to cancel booking: %w", failure.Conflict("x")), want: http.StatusConflict},
		{name: "plain error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestIsNotFound(t *testing.T) {
	if !failure.IsNotFound(fmt.Errorf("wrap: %w", failure.NotFound("client not found"))) {
		t.Error("expected wrapped not found to be detected")
	}
	if failure.IsNotFound(failure.Conflict("dup")) {
		t.Error("expected conflict not to be reported as not found")
	}
}

func TestGetKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want failure.Kind
	}{
		{name: "validation", err: failure.BadRequestFromString("invalid id"), want: failure.KindValidation},
		{name: "unauthorized", err: failure.Unauthorized("token expired"), want: failure.KindUnauthorized},
		{name: "forbidden", err: failure.ForbiddenError, want: failure.KindForbidden},
		{name: "not found", err: failure.NotFound("room not found"), want: failure.KindNotFound},
		{name: "conflict", err: failure.Conflict("room is not available"), want: failure.KindConflict},
		{name: "unprocessable", err: failure.UnprocessableEntity("room is inactive"), want: failure.KindUnprocessable},
		{name: "invalid transition", err: failure.InvalidTransition("cannot go from done to pending"), want: failure.KindInvalidTransition},
		{name: "wrapped transition", err: fmt.Errorf("cancel: %w", failure.InvalidTransition("x")), want: failure.KindInvalidTransition},
		{name: "limit exceeded", err: failure.LimitExceeded, want: failure.KindLimitExceeded},
		{name: "unimplemented", err: failure.Unimplemented("Export"), want: failure.KindUnimplemented},
		{name: "plain error", err: errors.New("boom"), want: failure.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetKind(tt.err); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestInvalidTransitionCode(t *testing.T) {
	if code := failure.GetCode(failure.InvalidTransition("x")); code != http.StatusUnprocessableEntity {
		t.Errorf("expected %d, got %d", http.StatusUnprocessableEntity, code)
	}
}
