// Package export renders lattice states, phase diagrams and free-energy
// curves as standalone SVG documents.
package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/latgas/internal/lattice"
	"github.com/san-kum/latgas/internal/meanfield"
)

const background = "#0a0a0a"

// LatticeSVG draws occupied sites as dots, scale pixels per site.
func LatticeSVG(l *lattice.Lattice, scale float64) string {
	if l == nil {
		return ""
	}

	n := l.Size()
	size := float64(n) * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="#00ff00">
`, size, size, size, size, background))

	r := scale * 0.4
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if l.Get(x, y) != lattice.Occupied {
				continue
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, r))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// HeatmapSVG shades each phase-diagram cell by its equilibrium density,
// chemical potential left to right and temperature bottom to top. Cells
// without an equilibrium stay at the background color.
func HeatmapSVG(d *meanfield.PhaseDiagram, cellSize int) string {
	if d == nil || len(d.Temps) == 0 || len(d.Mus) == 0 {
		return ""
	}

	width := len(d.Mus) * cellSize
	height := len(d.Temps) * cellSize

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background))

	for i, row := range d.Density {
		y := (len(d.Temps) - 1 - i) * cellSize
		for k, rho := range row {
			if math.IsNaN(rho) {
				continue
			}
			sb.WriteString(fmt.Sprintf("<rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\" fill=\"%s\"/>\n",
				k*cellSize, y, cellSize, cellSize, densityColor(rho)))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func densityColor(rho float64) string {
	if rho < 0 {
		rho = 0
	}
	if rho > 1 {
		rho = 1
	}
	return fmt.Sprintf("#0a%02x0a", 10+int(rho*245))
}

// CurveSVG plots a sampled curve as a polyline, padding the value range by
// 10% on each side.
func CurveSVG(xs, ys []float64, width, height int, strokeColor string) string {
	if len(xs) < 2 || len(xs) != len(ys) {
		return ""
	}

	minX, maxX := xs[0], xs[0]
	minY, maxY := ys[0], ys[0]
	for i := range xs {
		minX = math.Min(minX, xs[i])
		maxX = math.Max(maxX, xs[i])
		minY = math.Min(minY, ys[i])
		maxY = math.Max(maxY, ys[i])
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, background, strokeColor))

	for i := range xs {
		x := (xs[i] - minX) / rangeX * float64(width)
		y := float64(height) - (ys[i]-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
