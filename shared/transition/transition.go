// Package transition holds status machines whose transitions are applied as
// compare-and-swap updates: the write only lands while the row is still in one
// of the target's predecessor states.
package transition

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrUnknownStatus     = errors.New("unknown status")
)

type Machine[S ~string] struct {
	edges map[S][]S
}

func New[S ~string](edges map[S][]S) Machine[S] {
	return Machine[S]{edges: edges}
}

// Known reports whether s is a state of the machine.
func (m Machine[S]) Known(s S) bool {
	if _, ok := m.edges[s]; ok {
		return true
	}

	for _, targets := range m.edges {
		if slices.Contains(targets, s) {
			return true
		}
	}

	return false
}

func (m Machine[S]) Can(from, to S) bool {
	return slices.Contains(m.edges[from], to)
}

func (m Machine[S]) IsTerminal(s S) bool {
	return len(m.edges[s]) == 0
}

// Predecessors lists the states from which to is reachable in one step, sorted.
func (m Machine[S]) Predecessors(to S) []S {
	res := []S{}

	for from, targets := range m.edges {
		if slices.Contains(targets, to) {
			res = append(res, from)
		}
	}

	slices.Sort(res)

	return res
}

// Check validates a requested target before any write is attempted.
func (m Machine[S]) Check(to S) ([]S, error) {
	if !m.Known(to) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStatus, to)
	}

	from := m.Predecessors(to)
	if len(from) == 0 {
		return nil, fmt.Errorf("%w: nothing transitions to %s", ErrInvalidTransition, to)
	}

	return from, nil
}

// Resolve explains a compare-and-swap that matched no row, given the row's current state.
// Reaching a state the row already holds is an idempotent no-op and returns nil.
func (m Machine[S]) Resolve(current, to S) error {
	if current == to {
		return nil
	}

	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, to)
}
