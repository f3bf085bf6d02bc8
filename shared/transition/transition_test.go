package transition_test

import (
	"hotel/shared/transition"
	"testing"

	"github.com/stretchr/testify/assert"
)

type orderStatus string

const (
	accepted  orderStatus = "accepted"
	inProcess orderStatus = "in_process"
	fulfilled orderStatus = "fulfilled"
	canceled  orderStatus = "canceled"
)

var machine = transition.New(map[orderStatus][]orderStatus{
	accepted:  {inProcess},
	inProcess: {fulfilled, canceled},
	fulfilled: {},
	canceled:  {},
})

func TestMachine_Can(t *testing.T) {
	tests := []struct {
		from orderStatus
		to   orderStatus
		want bool
	}{
		{from: accepted, to: inProcess, want: true},
		{from: inProcess, to: fulfilled, want: true},
		{from: inProcess, to: canceled, want: true},
		{from: accepted, to: fulfilled, want: false},
		{from: fulfilled, to: canceled, want: false},
		{from: canceled, to: accepted, want: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, machine.Can(tt.from, tt.to))
		})
	}
}

func TestMachine_Terminal(t *testing.T) {
	assert.True(t, machine.IsTerminal(fulfilled))
	assert.True(t, machine.IsTerminal(canceled))
	assert.False(t, machine.IsTerminal(accepted))
}

func TestMachine_Check(t *testing.T) {
	from, err := machine.Check(fulfilled)
	assert.NoError(t, err)
	assert.Equal(t, []orderStatus{inProcess}, from)

	_, err = machine.Check(accepted)
	assert.ErrorIs(t, err, transition.ErrInvalidTransition)

	_, err = machine.Check("archived")
	assert.ErrorIs(t, err, transition.ErrUnknownStatus)
}

func TestMachine_Resolve(t *testing.T) {
	assert.NoError(t, machine.Resolve(canceled, canceled))
	assert.ErrorIs(t, machine.Resolve(fulfilled, canceled), transition.ErrInvalidTransition)
	assert.ErrorIs(t, machine.Resolve(accepted, fulfilled), transition.ErrInvalidTransition)
}
