package selection

import "errors"

// ErrInvalidGesture is returned by [State.Next] when a gesture carries an
// unrecognized [Kind], or when the resulting stack would violate the
// invariant that every RANGE gesture's immediate predecessor is a TOGGLE.
// Malformed stacks are rejected outright rather than silently repaired.
var ErrInvalidGesture = errors.New("selection: invalid gesture")
