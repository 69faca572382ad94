package core

import "errors"

// ErrNotFound is a sentinel error for "not found" cases.
// Callers use it as a control-flow signal (e.g. "no exclusion exists"),
// never as a backend failure.
var ErrNotFound = errors.New("not found")

// IsNotFoundError checks if an error is a "not found" error
func IsNotFoundError(err error) bool {
	return err != nil && errors.Is(err, ErrNotFound)
}
