package meanfield

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// GridSpec samples a rectangular window of parameter space. Each axis is
// divided half-open: value_i = min + (i/steps)·(max-min) for i in [0, steps),
// so the upper bound itself is excluded.
type GridSpec struct {
	TempMin, TempMax float64
	MuMin, MuMax     float64
	TempSteps        int
	MuSteps          int
}

// DefaultGridSpec covers the window where the gas-liquid transition of the
// default coupling sits.
func DefaultGridSpec() GridSpec {
	return GridSpec{
		TempMin: 0.01, TempMax: 1.0,
		MuMin: -2.0, MuMax: 0.0,
		TempSteps: 100, MuSteps: 100,
	}
}

func (g GridSpec) validate() error {
	if g.TempSteps < 1 || g.MuSteps < 1 {
		return fmt.Errorf("%w: steps must be at least 1", ErrGrid)
	}
	if g.TempMin <= 0 {
		return fmt.Errorf("%w: temperatures must be positive", ErrGrid)
	}
	if g.TempMax < g.TempMin || g.MuMax < g.MuMin {
		return fmt.Errorf("%w: empty range", ErrGrid)
	}
	return nil
}

func (g GridSpec) temps() []float64 {
	return floats.Span(make([]float64, g.TempSteps+1), g.TempMin, g.TempMax)[:g.TempSteps]
}

func (g GridSpec) mus() []float64 {
	return floats.Span(make([]float64, g.MuSteps+1), g.MuMin, g.MuMax)[:g.MuSteps]
}

// PhasePoint is one stationary density at one grid cell.
type PhasePoint struct {
	Temperature   float64
	ChemPotential float64
	Density       float64
}

// Sweep locates stationary densities across the grid. Rows arrive in
// row-major order, temperature outer and chemical potential inner, with
// densities ascending within a cell. Cells whose scan brackets nothing
// contribute no rows. Temperature rows are computed in parallel; the output
// order does not depend on scheduling.
func Sweep(grid GridSpec, j float64, cfg ScanConfig) ([]PhasePoint, error) {
	if err := grid.validate(); err != nil {
		return nil, err
	}
	temps, mus := grid.temps(), grid.mus()

	rows := make([][]PhasePoint, len(temps))
	parallelRows(len(temps), cfg.Workers, func(i int) {
		t := temps[i]
		row := make([]PhasePoint, 0, len(mus))
		for _, mu := range mus {
			for _, r := range StationaryDensities(t, mu, j, cfg) {
				row = append(row, PhasePoint{Temperature: t, ChemPotential: mu, Density: r})
			}
		}
		rows[i] = row
	})

	out := make([]PhasePoint, 0, len(temps)*len(mus))
	for _, row := range rows {
		out = append(out, row...)
	}
	return out, nil
}

// PhaseDiagram holds the selected equilibrium density per grid cell.
type PhaseDiagram struct {
	Temps []float64
	Mus   []float64
	// Density is indexed [temperature][chemical potential]; cells where no
	// stationary point was bracketed hold NaN.
	Density [][]float64
}

// Diagram computes the equilibrium density for every cell of the grid.
func Diagram(grid GridSpec, j float64, cfg ScanConfig) (*PhaseDiagram, error) {
	if err := grid.validate(); err != nil {
		return nil, err
	}
	d := &PhaseDiagram{
		Temps:   grid.temps(),
		Mus:     grid.mus(),
		Density: make([][]float64, grid.TempSteps),
	}

	parallelRows(len(d.Temps), cfg.Workers, func(i int) {
		row := make([]float64, len(d.Mus))
		for k, mu := range d.Mus {
			if rho, ok := Equilibrium(d.Temps[i], mu, j, cfg); ok {
				row[k] = rho
			} else {
				row[k] = math.NaN()
			}
		}
		d.Density[i] = row
	})
	return d, nil
}

// parallelRows runs fn over [0, n) split into contiguous chunks, one
// goroutine per chunk.
func parallelRows(n, workers int, fn func(i int)) {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i)
			}
		}(start, end)
	}
	wg.Wait()
}
