package meanfield

import "errors"

// Domain errors for free-energy evaluation.
var (
	// ErrDomain indicates a density outside the unit interval.
	ErrDomain = errors.New("meanfield: density outside [0,1]")

	// ErrTemperature indicates a non-positive temperature.
	ErrTemperature = errors.New("meanfield: temperature must be positive")

	// ErrGrid indicates an unusable sweep window.
	ErrGrid = errors.New("meanfield: invalid grid")
)
