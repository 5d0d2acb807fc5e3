package meanfield

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Curve samples f(ρ) at samples+1 evenly spaced densities covering [0, 1]
// inclusive, returning the density axis and the matching free energies.
func Curve(temp, mu, j float64, samples int) (rhos, f []float64, err error) {
	if temp <= 0 {
		return nil, nil, fmt.Errorf("%w: got %g", ErrTemperature, temp)
	}
	if samples < 1 {
		samples = 200
	}
	rhos = floats.Span(make([]float64, samples+1), 0, 1)
	f = make([]float64, len(rhos))
	for i, r := range rhos {
		f[i] = freeEnergy(r, temp, mu, j)
	}
	return rhos, f, nil
}
