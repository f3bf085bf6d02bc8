package daterange_test

import (
	"hotel/shared/daterange"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, in, out string) daterange.Range {
	t.Helper()

	r, err := daterange.Parse(in, out)
	require.NoError(t, err)

	return r
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		out     string
		wantErr bool
	}{
		{name: "valid", in: "2024-01-01", out: "2024-01-05"},
		{name: "same day", in: "2024-01-01", out: "2024-01-01", wantErr: true},
		{name: "reversed", in: "2024-01-05", out: "2024-01-01", wantErr: true},
		{name: "malformed in", in: "01/01/2024", out: "2024-01-05", wantErr: true},
		{name: "malformed out", in: "2024-01-01", out: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := daterange.Parse(tt.in, tt.out)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestRange_Overlaps(t *testing.T) {
	existing := mustParse(t, "2024-01-01", "2024-01-05")

	tests := []struct {
		name string
		in   string
		out  string
		want bool
	}{
		{name: "adjacent after", in: "2024-01-05", out: "2024-01-07", want: false},
		{name: "adjacent before", in: "2023-12-28", out: "2024-01-01", want: false},
		{name: "overlapping tail", in: "2024-01-04", out: "2024-01-06", want: true},
		{name: "overlapping head", in: "2023-12-30", out: "2024-01-02", want: true},
		{name: "contained", in: "2024-01-02", out: "2024-01-03", want: true},
		{name: "containing", in: "2023-12-01", out: "2024-02-01", want: true},
		{name: "identical", in: "2024-01-01", out: "2024-01-05", want: true},
		{name: "disjoint", in: "2024-02-01", out: "2024-02-03", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := mustParse(t, tt.in, tt.out)

			assert.Equal(t, tt.want, existing.Overlaps(candidate))
			assert.Equal(t, tt.want, candidate.Overlaps(existing), "overlap must be symmetric")
		})
	}
}

func TestRange_Nights(t *testing.T) {
	assert.Equal(t, 4, mustParse(t, "2024-01-01", "2024-01-05").Nights())
	assert.Equal(t, "[2024-01-01, 2024-01-05)", mustParse(t, "2024-01-01", "2024-01-05").String())
}
