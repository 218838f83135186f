package engine

import "fmt"

// Error reports the state a run was in when it failed.
type Error struct {
	State State
	Err   error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %v", e.State, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
