package engine

import "fmt"

// State is a stage of a run.
type State int

const (
	Validating State = iota
	Resolving
	Materializing
	Orchestrating
	Done
	Failed
)

var stateNames = [...]string{
	Validating:    "validating",
	Resolving:     "resolving",
	Materializing: "materializing",
	Orchestrating: "orchestrating",
	Done:          "done",
	Failed:        "failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Terminal reports whether no transition leaves s.
func (s State) Terminal() bool {
	return s == Done || s == Failed
}

// canTransition reports whether from -> to is allowed: one step forward, or
// to Failed from any non-terminal state.
func canTransition(from, to State) bool {
	if from.Terminal() {
		return false
	}
	if to == Failed {
		return true
	}
	return to == from+1
}
