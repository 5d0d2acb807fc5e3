package meanfield

import "math"

// ScanConfig controls stationary-point location and sweep parallelism.
type ScanConfig struct {
	// Samples is the number of interior points the sign-change scan divides
	// (0, 1) into.
	Samples int
	// Tolerance is the bracket width bisection refines down to.
	Tolerance float64
	// TieTolerance is the relative free-energy margin a stationary point
	// must clear to displace the current equilibrium candidate. Bisected
	// roots carry rounding noise of a few ulps, so on the coexistence line,
	// where the two extrema tie in exact arithmetic, any margin inside this
	// band counts as a tie and the lower density is kept.
	TieTolerance float64
	// Workers bounds sweep parallelism; 0 picks one worker per CPU.
	Workers int
}

// DefaultScanConfig returns the scan resolution used when callers pass a
// zero config.
func DefaultScanConfig() ScanConfig {
	return ScanConfig{Samples: 1000, Tolerance: 1e-9, TieTolerance: 1e-12}
}

func (c ScanConfig) normalized() ScanConfig {
	def := DefaultScanConfig()
	if c.Samples < 2 {
		c.Samples = def.Samples
	}
	if c.Tolerance <= 0 {
		c.Tolerance = def.Tolerance
	}
	if c.TieTolerance <= 0 {
		c.TieTolerance = def.TieTolerance
	}
	return c
}

// StationaryDensities locates the roots of df/dρ on (0, 1) by scanning
// cfg.Samples interior points for sign changes and bisecting each bracket.
// Roots come back in ascending order. The slice is empty when no bracket is
// found; no value is ever fabricated.
func StationaryDensities(temp, mu, j float64, cfg ScanConfig) []float64 {
	if temp <= 0 {
		return nil
	}
	cfg = cfg.normalized()

	roots := make([]float64, 0, 3)
	prevR := 1.0 / float64(cfg.Samples)
	prevS := Slope(prevR, temp, mu, j)
	if prevS == 0 {
		roots = append(roots, prevR)
	}
	for k := 2; k < cfg.Samples; k++ {
		r := float64(k) / float64(cfg.Samples)
		s := Slope(r, temp, mu, j)
		switch {
		case s == 0:
			roots = append(roots, r)
		case prevS != 0 && (prevS > 0) != (s > 0):
			roots = append(roots, bisect(prevR, r, temp, mu, j, cfg.Tolerance))
		}
		prevR, prevS = r, s
	}
	return roots
}

func bisect(lo, hi, temp, mu, j, tol float64) float64 {
	slo := Slope(lo, temp, mu, j)
	for i := 0; i < 200 && hi-lo > tol; i++ {
		mid := 0.5 * (lo + hi)
		s := Slope(mid, temp, mu, j)
		if s == 0 {
			return mid
		}
		if (s > 0) == (slo > 0) {
			lo, slo = mid, s
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi)
}

// Equilibrium returns the stationary density with the largest free energy.
// When two stationary points tie within cfg.TieTolerance, the lower density
// wins. Roots arrive in ascending order, so a later root must beat the
// candidate by the tie margin to take over. ok is false when the scan finds
// no stationary point.
func Equilibrium(temp, mu, j float64, cfg ScanConfig) (rho float64, ok bool) {
	roots := StationaryDensities(temp, mu, j, cfg)
	if len(roots) == 0 {
		return 0, false
	}
	cfg = cfg.normalized()

	best := roots[0]
	bestF := freeEnergy(best, temp, mu, j)
	for _, r := range roots[1:] {
		margin := cfg.TieTolerance * math.Max(1, math.Abs(bestF))
		if f := freeEnergy(r, temp, mu, j); f > bestF+margin {
			best, bestF = r, f
		}
	}
	return best, true
}
