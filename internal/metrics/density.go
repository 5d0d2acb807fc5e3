// Package metrics reduces measurement series to summary observables.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/latgas/internal/series"
)

// Metric consumes measurement records and reduces them to one number.
type Metric interface {
	Name() string
	Observe(rec series.Record)
	Value() float64
	Reset()
}

// MeanDensity averages the recorded density.
type MeanDensity struct {
	name    string
	samples []float64
}

func NewMeanDensity() *MeanDensity {
	return &MeanDensity{name: "mean_density"}
}

func (m *MeanDensity) Name() string { return m.name }

func (m *MeanDensity) Observe(rec series.Record) {
	m.samples = append(m.samples, rec.Density)
}

func (m *MeanDensity) Value() float64 {
	if len(m.samples) == 0 {
		return 0
	}
	return stat.Mean(m.samples, nil)
}

func (m *MeanDensity) Reset() { m.samples = m.samples[:0] }

// Susceptibility measures density fluctuations as N²·Var(ρ)/T, the
// grand-canonical response of occupation to the chemical potential. The
// temperature entering the ratio is averaged over the observed records.
type Susceptibility struct {
	name      string
	sites     float64
	densities []float64
	temps     []float64
}

// NewSusceptibility builds the metric for a lattice with the given number
// of sites.
func NewSusceptibility(sites int) *Susceptibility {
	return &Susceptibility{name: "susceptibility", sites: float64(sites)}
}

func (s *Susceptibility) Name() string { return s.name }

func (s *Susceptibility) Observe(rec series.Record) {
	s.densities = append(s.densities, rec.Density)
	s.temps = append(s.temps, rec.Temperature)
}

func (s *Susceptibility) Value() float64 {
	if len(s.densities) < 2 {
		return 0
	}
	t := stat.Mean(s.temps, nil)
	if t <= 0 {
		return 0
	}
	return s.sites * stat.Variance(s.densities, nil) / t
}

func (s *Susceptibility) Reset() {
	s.densities = s.densities[:0]
	s.temps = s.temps[:0]
}

// FlipRate tracks the net site turnover per sweep: the mean absolute change
// in occupied-site count between consecutive records. A frozen lattice
// scores zero.
type FlipRate struct {
	name   string
	sites  float64
	have   bool
	prev   float64
	deltas []float64
}

// NewFlipRate builds the metric for a lattice with the given number of
// sites.
func NewFlipRate(sites int) *FlipRate {
	return &FlipRate{name: "flip_rate", sites: float64(sites)}
}

func (f *FlipRate) Name() string { return f.name }

func (f *FlipRate) Observe(rec series.Record) {
	if f.have {
		f.deltas = append(f.deltas, math.Abs(rec.Density-f.prev)*f.sites)
	}
	f.prev = rec.Density
	f.have = true
}

func (f *FlipRate) Value() float64 {
	if len(f.deltas) == 0 {
		return 0
	}
	return stat.Mean(f.deltas, nil)
}

func (f *FlipRate) Reset() {
	f.deltas = f.deltas[:0]
	f.have = false
}
