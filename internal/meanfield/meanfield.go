// Package meanfield evaluates the mean-field free energy of the lattice gas
// and locates its equilibrium densities across parameter space.
//
// In reduced units the functional is
//
//	f(ρ) = (2Jρ² + µρ)/T + S(ρ),  S(ρ) = -[ρ·ln ρ + (1-ρ)·ln(1-ρ)]
//
// where 2J is the full coordination coupling of the four-neighbor square
// lattice. Stationary points of f solve the self-consistency condition
// ρ = 1/(1+exp(-(4Jρ+µ)/T)); the selected equilibrium is the stationary
// point with the largest f. Below the critical temperature T = J the
// functional develops two competing maxima, which coexist along µ = -2J.
package meanfield

import (
	"fmt"
	"math"
)

// FreeEnergy evaluates f(ρ) at one point. The entropy term vanishes at the
// boundaries ρ = 0 and ρ = 1, so f stays continuous there. Densities outside
// [0,1] fail with ErrDomain, non-positive temperatures with ErrTemperature.
func FreeEnergy(rho, temp, mu, j float64) (float64, error) {
	if rho < 0 || rho > 1 {
		return 0, fmt.Errorf("%w: got %g", ErrDomain, rho)
	}
	if temp <= 0 {
		return 0, fmt.Errorf("%w: got %g", ErrTemperature, temp)
	}
	return freeEnergy(rho, temp, mu, j), nil
}

func freeEnergy(rho, temp, mu, j float64) float64 {
	f := (2*j*rho*rho + mu*rho) / temp
	if rho > 0 && rho < 1 {
		f -= rho*math.Log(rho) + (1-rho)*math.Log(1-rho)
	}
	return f
}

// Slope is df/dρ on the open interval (0, 1).
func Slope(rho, temp, mu, j float64) float64 {
	return (4*j*rho+mu)/temp + math.Log((1-rho)/rho)
}
