package export

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/latgas/internal/lattice"
	"github.com/san-kum/latgas/internal/meanfield"
)

func TestLatticeSVG(t *testing.T) {
	l := lattice.New(4)
	l.Set(0, 0, lattice.Occupied)
	l.Set(2, 3, lattice.Occupied)

	svg := LatticeSVG(l, 4)
	if !strings.HasPrefix(svg, `<?xml`) {
		t.Error("expected XML prolog")
	}
	if !strings.Contains(svg, `width="16"`) {
		t.Error("expected 16px canvas for a 4-site lattice at scale 4")
	}
	if got := strings.Count(svg, "<circle"); got != 2 {
		t.Errorf("expected 2 dots, got %d", got)
	}
}

func TestHeatmapSVGSkipsUndefinedCells(t *testing.T) {
	d := &meanfield.PhaseDiagram{
		Temps:   []float64{0.3, 0.4},
		Mus:     []float64{-1.0},
		Density: [][]float64{{0.2}, {math.NaN()}},
	}

	svg := HeatmapSVG(d, 8)
	if got := strings.Count(svg, "<rect"); got != 2 {
		t.Errorf("expected background plus 1 cell, got %d rects", got)
	}
	if !strings.Contains(svg, `width="8"`) {
		t.Error("expected 8px wide canvas for a single-column diagram")
	}
}

func TestCurveSVG(t *testing.T) {
	xs := []float64{0, 0.5, 1}
	ys := []float64{0, 1, 0}

	svg := CurveSVG(xs, ys, 400, 200, "#00ff00")
	if !strings.Contains(svg, "<path") {
		t.Error("expected a path element")
	}
	if got := strings.Count(svg, " L"); got != 2 {
		t.Errorf("expected 2 line segments, got %d", got)
	}
}

func TestCurveSVGDegenerateInput(t *testing.T) {
	if svg := CurveSVG([]float64{1}, []float64{1}, 100, 100, "#fff"); svg != "" {
		t.Error("expected empty output for a single point")
	}
	if svg := CurveSVG([]float64{1, 2}, []float64{1}, 100, 100, "#fff"); svg != "" {
		t.Error("expected empty output for mismatched lengths")
	}
}
