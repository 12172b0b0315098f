package prompt

import "errors"

// ErrTimeout is returned when no line arrives before the deadline, the
// context is cancelled, or the input stream fails.
var ErrTimeout = errors.New("prompt: timed out waiting for input")
