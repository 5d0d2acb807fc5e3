package glauber

import "math"

// DefaultCoupling is the nearest-neighbor pair coupling J that puts the
// mean-field critical temperature at 0.5 in reduced units.
const DefaultCoupling = 0.5

// MinTemperature floors the temperature inside the Boltzmann factor so the
// exponent stays finite near T = 0.
const MinTemperature = 1e-6

// Params are the external conditions for one update sweep. They are read
// once per site update and never mutated by the engine.
type Params struct {
	Temperature   float64
	ChemPotential float64
	Coupling      float64
}

// DefaultParams returns the interactive-session starting conditions.
func DefaultParams() Params {
	return Params{
		Temperature:   0.7,
		ChemPotential: -1.0,
		Coupling:      DefaultCoupling,
	}
}

// OccupyProbability returns the heat-bath probability that a site with the
// given number of occupied neighbors ends up occupied. Occupying a site
// changes the energy by ΔE = -(J·n + µ) for the attractive gas, and the
// update accepts occupation with 1/(1+exp(ΔE/T)): more occupied neighbors
// or a larger chemical potential push the probability toward 1, and at high
// temperature it flattens toward 1/2.
func OccupyProbability(neighbors int, p Params) float64 {
	dE := -(p.Coupling*float64(neighbors) + p.ChemPotential)
	t := p.Temperature
	if t < MinTemperature {
		t = MinTemperature
	}
	return 1 / (1 + math.Exp(dE/t))
}
