// Package analysis extracts fluctuation diagnostics from density series.
package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// PowerSpectrum returns the magnitude of each frequency bin below Nyquist.
// Bin 0 carries the series mean.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	spectrum := fft.FFTReal(data)
	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// FluctuationSpectrum removes the mean before transforming, so bin 0
// reflects drift rather than the average density itself.
func FluctuationSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	mean := stat.Mean(data, nil)
	centered := make([]float64, len(data))
	for i, v := range data {
		centered[i] = v - mean
	}
	return PowerSpectrum(centered)
}

// DominantMode returns the strongest non-DC bin of a spectrum and its
// magnitude.
func DominantMode(ps []float64) (bin int, power float64) {
	for i := 1; i < len(ps); i++ {
		if ps[i] > power {
			bin, power = i, ps[i]
		}
	}
	return bin, power
}

// Autocorrelation returns the normalized autocorrelation c(k) for lags
// 0..maxLag, with c(0) = 1. A constant series has no fluctuations to
// correlate and yields all zeros.
func Autocorrelation(data []float64, maxLag int) []float64 {
	n := len(data)
	if n == 0 || maxLag < 0 {
		return nil
	}
	if maxLag >= n {
		maxLag = n - 1
	}

	mean := stat.Mean(data, nil)
	centered := make([]float64, n)
	for i, v := range data {
		centered[i] = v - mean
	}

	out := make([]float64, maxLag+1)
	denom := floats.Dot(centered, centered)
	if denom == 0 {
		return out
	}
	for k := 0; k <= maxLag; k++ {
		out[k] = floats.Dot(centered[:n-k], centered[k:]) / denom
	}
	return out
}

// CorrelationTime integrates the autocorrelation up to its first
// non-positive lag: 1 + 2·Σ c(k). Uncorrelated series give 1.
func CorrelationTime(data []float64) float64 {
	c := Autocorrelation(data, len(data)-1)
	if len(c) == 0 || c[0] == 0 {
		return 0
	}
	tau := 1.0
	for _, v := range c[1:] {
		if v <= 0 {
			break
		}
		tau += 2 * v
	}
	return tau
}
