package mastery

import (
	"errors"
	"fmt"
)

type State string

const (
	StateLoading       State = "loading"
	StateActive        State = "active"
	StateLevelComplete State = "levelComplete"
	StateResult        State = "result"
	StateError         State = "error"
)

var ErrIllegalTransition = errors.New("illegal transition")

// transitions lists every edge of the progression machine. result and error are terminal.
var transitions = map[State][]State{
	StateLoading:       {StateActive, StateError},
	StateActive:        {StateActive, StateLevelComplete, StateResult, StateError},
	StateLevelComplete: {StateLoading},
}

func (s State) CanTransition(to State) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s State) Terminal() bool {
	return len(transitions[s]) == 0
}

func transition(from, to State) error {
	if !from.CanTransition(to) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
	}
	return nil
}
