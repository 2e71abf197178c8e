package ports

import "errors"

// ErrNotFound is returned when no session exists for the given id.
// ErrConflict signals a lost optimistic-version race; callers surface it
// rather than retry, since the client re-reads fresh state on its next tick.
var (
	ErrNotFound = errors.New("session not found")
	ErrConflict = errors.New("version conflict")
)
