package gfx

import "errors"

// Causes wrapped by InitError.
var (
	ErrInvalidSize = errors.New("surface width and height must be positive")
	ErrNilWindow   = errors.New("window is nil")
)

var ErrNilUpdate = errors.New("gfx: update function is nil")

// InitError is returned when a Session cannot obtain its drawing surface.
// It is the only failure reported as an error; everything after
// initialization reports a Status.
type InitError struct {
	Op  string
	Err error
}

func (e *InitError) Error() string {
	return "gfx: " + e.Op + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error { return e.Err }
