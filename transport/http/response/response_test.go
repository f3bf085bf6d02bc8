package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/transport/http/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantKind failure.Kind
		wantMsg  string
	}{
		{
			name:     "not found",
			err:      failure.NotFound("booking not found"),
			wantCode: http.StatusNotFound,
			wantKind: failure.KindNotFound,
			wantMsg:  "booking not found",
		},
		{
			name:     "wrapped conflict",
			err:      fmt.Errorf("failed to create booking: %w", failure.Conflict("room is not available")),
			wantCode: http.StatusConflict,
			wantKind: failure.KindConflict,
			wantMsg:  "failed to create booking: room is not available",
		},
		{
			name:     "invalid transition",
			err:      failure.InvalidTransition("fulfilled is final"),
			wantCode: http.StatusUnprocessableEntity,
			wantKind: failure.KindInvalidTransition,
			wantMsg:  "fulfilled is final",
		},
		{
			name:     "validation",
			err:      failure.BadRequestFromString("date_out is required"),
			wantCode: http.StatusBadRequest,
			wantKind: failure.KindValidation,
			wantMsg:  "date_out is required",
		},
		{
			name:     "internal message is hidden",
			err:      errors.New("pq: connection refused"),
			wantCode: http.StatusInternalServerError,
			wantKind: failure.KindInternal,
			wantMsg:  constant.ResponseErrorInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, constant.ContentTypeJSON, rec.Header().Get(constant.RequestHeaderContentType))

			var body response.Error
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantMsg, *body.Error)
			assert.Equal(t, tt.wantKind, body.Kind)
		})
	}
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]string{"id": "b1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"id":"b1"}}`, rec.Body.String())
}

func TestWithPreparingShutdown(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithPreparingShutdown(rec)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"message":"`+constant.ResponseErrorPrepareShutdown+`"}`, rec.Body.String())
}
