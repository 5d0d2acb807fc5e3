package glauber

import "errors"

// Domain errors for Monte Carlo updates.
var (
	// ErrInvalidParameter indicates a parameter outside its physical range.
	ErrInvalidParameter = errors.New("glauber: invalid parameter")
)
