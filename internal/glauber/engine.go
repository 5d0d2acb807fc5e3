// Package glauber advances the lattice gas with single-site heat-bath
// dynamics: each sweep redraws N² randomly chosen sites from their local
// equilibrium distribution.
package glauber

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/san-kum/latgas/internal/lattice"
	"github.com/san-kum/latgas/internal/series"
)

// Engine owns one lattice, one random source, and one recorder. All updates
// go through Step; nothing else writes the lattice while the engine lives.
type Engine struct {
	lat  *lattice.Lattice
	rng  *rand.Rand
	rec  *series.Recorder
	step uint64
}

// Result summarizes one completed sweep.
type Result struct {
	Step    uint64
	Density float64
	Flips   int
}

// New builds an engine over a fresh N×N lattice randomized from seed.
func New(n int, seed int64) *Engine {
	rng := rand.New(rand.NewSource(seed))
	lat := lattice.New(n)
	lat.Randomize(rng)
	return &Engine{lat: lat, rng: rng, rec: series.NewRecorder()}
}

// Lattice exposes the engine's lattice for reading. The engine remains the
// sole writer.
func (e *Engine) Lattice() *lattice.Lattice { return e.lat }

// Recorder exposes the accumulated measurement series.
func (e *Engine) Recorder() *series.Recorder { return e.rec }

// StepCount returns the number of completed sweeps.
func (e *Engine) StepCount() uint64 { return e.step }

// Randomize reseeds the random source and refills the lattice at half
// occupation. The step counter and recorder are left alone.
func (e *Engine) Randomize(seed int64) {
	e.rng = rand.New(rand.NewSource(seed))
	e.lat.Randomize(e.rng)
}

// Step performs one sweep: N² random-site heat-bath updates, then records
// the resulting density under the incremented step counter. A non-positive
// temperature fails with ErrInvalidParameter before any site is touched,
// leaving lattice and recorder unchanged.
func (e *Engine) Step(p Params) (Result, error) {
	if p.Temperature <= 0 {
		return Result{}, fmt.Errorf("%w: temperature %g, must be positive", ErrInvalidParameter, p.Temperature)
	}

	n := e.lat.Size()
	flips := 0
	for i := 0; i < n*n; i++ {
		x := e.rng.Intn(n)
		y := e.rng.Intn(n)

		occ := e.lat.OccupiedNeighbors(x, y)
		next := lattice.Empty
		if e.rng.Float64() < OccupyProbability(occ, p) {
			next = lattice.Occupied
		}
		if next != e.lat.Get(x, y) {
			e.lat.Set(x, y, next)
			flips++
		}
	}

	e.step++
	d := e.lat.Density()
	e.rec.Record(e.step, p.Temperature, p.ChemPotential, d)
	return Result{Step: e.step, Density: d, Flips: flips}, nil
}

// Run performs steps sweeps under fixed params, stopping early if the
// context is canceled or a sweep fails.
func (e *Engine) Run(ctx context.Context, steps int, p Params) error {
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if _, err := e.Step(p); err != nil {
			return err
		}
	}
	return nil
}
