package conversation

import (
	"errors"
	"fmt"
)

// ErrBusy is returned when an operation arrives while another one is still
// in flight for the same conversation. Callers should surface it and let the
// user retry; submissions are rejected at the boundary, never queued.
var ErrBusy = errors.New("conversation is processing another request")

// ErrSessionNotFound is returned for unknown or expired session IDs.
var ErrSessionNotFound = errors.New("conversation session not found")

// InitError marks a fatal initialization failure: the conversation cannot
// start without its city and category reference data.
type InitError struct {
	Stage string
	Err   error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("conversation init failed at %s: %v", e.Stage, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}
