package model_test

import (
	"testing"

	"hotel/internal/domains/booking/model"
	"hotel/shared/transition"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		value   string
		want    model.Status
		wantErr bool
	}{
		{value: "", want: model.StatusActive},
		{value: "active", want: model.StatusActive},
		{value: "canceled", want: model.StatusCanceled},
		{value: "cancelled", wantErr: true},
		{value: "ACTIVE", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := model.ParseStatus(tt.value)

			if tt.wantErr {
				require.ErrorIs(t, err, transition.ErrUnknownStatus)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLifecycle(t *testing.T) {
	from, err := model.Lifecycle.Check(model.StatusCanceled)
	require.NoError(t, err)
	assert.Equal(t, []model.Status{model.StatusActive}, from)

	_, err = model.Lifecycle.Check(model.StatusActive)
	assert.ErrorIs(t, err, transition.ErrInvalidTransition)
}
