package ratchet

import "errors"

// ErrInvalidTransition is returned by Step and StepEvent when no table rule
// matches the current state and the presented trigger. The failed step has
// no effect: the machine stays in its current state and may be stepped
// again. This is the only error the engine produces.
var ErrInvalidTransition = errors.New("ratchet: invalid transition")
