package repository_test

import (
	"testing"
	"time"

	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/repository"
	"hotel/shared/daterange"

	"github.com/stretchr/testify/assert"
)

func TestOverlapping(t *testing.T) {
	stay := daterange.Range{
		In:  time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC),
		Out: time.Date(2025, 3, 12, 11, 0, 0, 0, time.UTC),
	}

	filter := repository.Overlapping("r1", stay)
	where, args := filter.GetWhereClause()

	assert.Equal(t,
		"(bookings.room_id = :room_id AND bookings.status = :status AND bookings.date_in < :stay_out AND bookings.date_out > :stay_in)",
		where)
	assert.Equal(t, map[string]any{
		"room_id":  "r1",
		"status":   "active",
		"stay_in":  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		"stay_out": time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
	}, args)
}

func TestListing(t *testing.T) {
	tests := []struct {
		name      string
		status    model.Status
		roomID    string
		clientID  string
		wantWhere string
	}{
		{
			name:      "status only",
			status:    model.StatusActive,
			wantWhere: "(bookings.status = :status)",
		},
		{
			name:      "canceled bookings of a client",
			status:    model.StatusCanceled,
			clientID:  "c1",
			wantWhere: "(bookings.status = :status AND bookings.client_id = :client_id)",
		},
		{
			name:      "room and client",
			status:    model.StatusActive,
			roomID:    "r1",
			clientID:  "c1",
			wantWhere: "(bookings.status = :status AND bookings.room_id = :room_id AND bookings.client_id = :client_id)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := repository.Listing(tt.status, tt.roomID, tt.clientID)
			where, args := filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, string(tt.status), args["status"])
		})
	}
}
