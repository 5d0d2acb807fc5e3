package viz

import (
	"strings"

	"github.com/san-kum/latgas/internal/lattice"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a Braille pixel buffer. Each character cell packs 2x4 dots, so a
// Width x Height canvas addresses (Width*2) x (Height*4) pixels.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // Empty braille char
		}
	}
	return c
}

// Set turns on the pixel at sub-pixel coordinates (x, y). Out-of-range
// coordinates are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawLattice maps the lattice onto the full canvas, one pixel per occupied
// site, scaling site coordinates down to the pixel grid. Lattices larger
// than the pixel grid are subsampled; a pixel lights up when its nearest
// site is occupied.
func (c *Canvas) DrawLattice(l *lattice.Lattice) {
	n := l.Size()
	pw, ph := c.Width*2, c.Height*4
	for py := 0; py < ph; py++ {
		sy := py * n / ph
		for px := 0; px < pw; px++ {
			sx := px * n / pw
			if l.Get(sx, sy) == lattice.Occupied {
				c.Set(px, py)
			}
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}
