package simulation

import "errors"

var (
	// ErrInvalidSelection is returned for a chain outside {1, 2}. Callers treat
	// it as a clean end of the run, not a failure.
	ErrInvalidSelection = errors.New("invalid chain selection")
)
