package room_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotel/config"
	otelMocks "hotel/infras/otel/mocks"
	bookingMocks "hotel/internal/domains/booking/service/mocks"
	"hotel/internal/domains/room/model/dto"
	roomMocks "hotel/internal/domains/room/service/mocks"
	roomOrderMocks "hotel/internal/domains/roomorder/service/mocks"
	"hotel/internal/handlers/room"
	"hotel/shared/daterange"
	"hotel/shared/failure"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (http.Handler, *bookingMocks.MockBooking) {
	t.Helper()

	ctrl := gomock.NewController(t)
	bookings := bookingMocks.NewMockBooking(ctrl)

	handler := room.New(
		roomMocks.NewMockRoom(ctrl),
		bookings,
		roomOrderMocks.NewMockRoomOrder(ctrl),
		&config.Config{},
		otelMocks.NewOtel(),
	)

	r := chi.NewRouter()
	handler.Router(r)

	return r, bookings
}

func TestHandler_GetAvailability(t *testing.T) {
	stay := daterange.Range{
		In:  time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		Out: time.Date(2025, 5, 4, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name          string
		available     bool
		serviceErr    error
		wantCode      int
		wantAvailable bool
	}{
		{
			name:          "free room",
			available:     true,
			wantCode:      http.StatusOK,
			wantAvailable: true,
		},
		{
			name:     "booked room",
			wantCode: http.StatusOK,
		},
		{
			name:       "lookup failure reports the room as unavailable",
			serviceErr: errors.New("connection refused"),
			wantCode:   http.StatusOK,
		},
		{
			name:       "unknown room",
			serviceErr: failure.NotFound("room not found"),
			wantCode:   http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, bookings := newRouter(t)

			bookings.EXPECT().IsRoomAvailable(gomock.Any(), "r1", stay).Return(tt.available, tt.serviceErr)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms/r1/availability?date_in=2025-05-01&date_out=2025-05-04", nil))

			require.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode != http.StatusOK {
				return
			}

			var body response.Data[dto.AvailabilityResponse]
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Data)
			assert.Equal(t, tt.wantAvailable, body.Data.Available)
			assert.Equal(t, "2025-05-01", body.Data.DateIn)
			assert.Equal(t, "2025-05-04", body.Data.DateOut)
		})
	}
}

func TestHandler_GetAvailabilityRejectsBadRange(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "missing dates", query: ""},
		{name: "same day", query: "?date_in=2025-05-01&date_out=2025-05-01"},
		{name: "reversed", query: "?date_in=2025-05-04&date_out=2025-05-01"},
		{name: "not a date", query: "?date_in=tomorrow&date_out=2025-05-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newRouter(t)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms/r1/availability"+tt.query, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
