package repository_test

import (
	"testing"

	"hotel/internal/domains/room/repository"

	"github.com/stretchr/testify/assert"
)

func TestListing(t *testing.T) {
	active := true

	tests := []struct {
		name      string
		typeRoom  string
		active    *bool
		minGuests int
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:     "no filters",
			wantArgs: map[string]any{},
		},
		{
			name:      "type only",
			typeRoom:  "suite",
			wantWhere: "(LOWER(rooms.type_room) LIKE LOWER(:type_room))",
			wantArgs:  map[string]any{"type_room": "%suite%"},
		},
		{
			name:      "all filters",
			typeRoom:  "double",
			active:    &active,
			minGuests: 2,
			wantWhere: "(LOWER(rooms.type_room) LIKE LOWER(:type_room) AND rooms.is_active = :is_active AND rooms.max_guests >= :max_guests)",
			wantArgs:  map[string]any{"type_room": "%double%", "is_active": true, "max_guests": 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := repository.Listing(tt.typeRoom, tt.active, tt.minGuests)
			where, args := filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
