package timezone_test

import (
	"hotel/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name     string
		zone     string
		expected string
	}{
		{name: "empty falls back to utc", zone: "", expected: "UTC"},
		{name: "unknown falls back to utc", zone: "Mars/Olympus_Mons", expected: "UTC"},
		{name: "utc", zone: "UTC", expected: "UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timezone.Init(tt.zone)

			assert.Equal(t, tt.expected, timezone.GetLocation().String())
		})
	}
}

func TestToday(t *testing.T) {
	timezone.Init("UTC")

	today := timezone.Today()

	assert.Zero(t, today.Hour())
	assert.Zero(t, today.Minute())
	assert.Equal(t, time.Now().UTC().Day(), today.Day())
}

func TestStartOfDay(t *testing.T) {
	timezone.Init("UTC")

	got := timezone.StartOfDay(time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDate(t *testing.T) {
	timezone.Init("UTC")

	got, err := timezone.ParseDate("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", timezone.Format(got, time.DateOnly))

	_, err = timezone.ParseDate("01/01/2024")
	assert.Error(t, err)
}
