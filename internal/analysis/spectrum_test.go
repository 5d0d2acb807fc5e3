package analysis

import (
	"math"
	"testing"
)

func TestPowerSpectrumConstant(t *testing.T) {
	data := make([]float64, 64)
	for i := range data {
		data[i] = 0.5
	}

	ps := PowerSpectrum(data)
	if len(ps) != 32 {
		t.Fatalf("expected 32 bins, got %d", len(ps))
	}
	if math.Abs(ps[0]-32) > 1e-9 {
		t.Errorf("expected DC magnitude 32, got %g", ps[0])
	}
	for i := 1; i < len(ps); i++ {
		if ps[i] > 1e-9 {
			t.Errorf("expected empty bin %d, got %g", i, ps[i])
		}
	}
}

func TestPowerSpectrumSine(t *testing.T) {
	n := 64
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * 8 * float64(i) / float64(n))
	}

	ps := PowerSpectrum(data)
	bin, power := DominantMode(ps)
	if bin != 8 {
		t.Errorf("expected dominant bin 8, got %d", bin)
	}
	if math.Abs(power-32) > 1e-6 {
		t.Errorf("expected magnitude 32 at bin 8, got %g", power)
	}
}

func TestFluctuationSpectrumRemovesMean(t *testing.T) {
	data := make([]float64, 64)
	for i := range data {
		data[i] = 0.9
	}

	for i, v := range FluctuationSpectrum(data) {
		if v > 1e-9 {
			t.Errorf("expected empty bin %d for constant series, got %g", i, v)
		}
	}
}

func TestAutocorrelationAlternating(t *testing.T) {
	n := 64
	data := make([]float64, n)
	for i := range data {
		if i%2 == 0 {
			data[i] = 1
		} else {
			data[i] = -1
		}
	}

	c := Autocorrelation(data, 2)
	if math.Abs(c[0]-1) > 1e-12 {
		t.Errorf("expected c(0)=1, got %g", c[0])
	}
	want := -float64(n-1) / float64(n)
	if math.Abs(c[1]-want) > 1e-12 {
		t.Errorf("expected c(1)=%g, got %g", want, c[1])
	}
}

func TestAutocorrelationConstant(t *testing.T) {
	data := []float64{0.5, 0.5, 0.5, 0.5}
	for k, v := range Autocorrelation(data, 3) {
		if v != 0 {
			t.Errorf("expected zero autocorrelation at lag %d for constant series, got %g", k, v)
		}
	}
}

func TestAutocorrelationClampsLag(t *testing.T) {
	c := Autocorrelation([]float64{1, 2, 3}, 10)
	if len(c) != 3 {
		t.Errorf("expected lags clamped to series length, got %d values", len(c))
	}
}

func TestCorrelationTime(t *testing.T) {
	alternating := make([]float64, 64)
	for i := range alternating {
		if i%2 == 0 {
			alternating[i] = 1
		} else {
			alternating[i] = -1
		}
	}
	if tau := CorrelationTime(alternating); tau != 1 {
		t.Errorf("expected correlation time 1 for anticorrelated series, got %g", tau)
	}

	ramp := make([]float64, 60)
	for i := range ramp {
		ramp[i] = float64(i)
	}
	if tau := CorrelationTime(ramp); tau < 5 {
		t.Errorf("expected long correlation time for a ramp, got %g", tau)
	}
}
