// Package lattice provides the binary occupation grid for the lattice-gas
// model: an N×N square lattice with periodic boundaries.
package lattice

import "math/rand"

// Site occupation values.
const (
	Empty    uint8 = 0
	Occupied uint8 = 1
)

// Lattice stores site occupations in row-major order. Both coordinates wrap
// modulo N, so every (x, y) addresses a valid site.
type Lattice struct {
	n     int
	sites []uint8
}

// New allocates an empty N×N lattice. Sizes below 1 are clamped to 1.
func New(n int) *Lattice {
	if n < 1 {
		n = 1
	}
	return &Lattice{n: n, sites: make([]uint8, n*n)}
}

// Size returns the edge length N.
func (l *Lattice) Size() int { return l.n }

func (l *Lattice) index(x, y int) int {
	x = (x%l.n + l.n) % l.n
	y = (y%l.n + l.n) % l.n
	return y*l.n + x
}

// Get returns the occupation at (x, y) after toroidal wrapping.
func (l *Lattice) Get(x, y int) uint8 {
	return l.sites[l.index(x, y)]
}

// Set writes the occupation at (x, y) after toroidal wrapping. Any non-zero
// value stores as Occupied.
func (l *Lattice) Set(x, y int, v uint8) {
	if v != Empty {
		v = Occupied
	}
	l.sites[l.index(x, y)] = v
}

// Randomize fills every site independently with probability 1/2 of being
// occupied, drawing from the caller's generator.
func (l *Lattice) Randomize(rng *rand.Rand) {
	for i := range l.sites {
		if rng.Float64() < 0.5 {
			l.sites[i] = Occupied
		} else {
			l.sites[i] = Empty
		}
	}
}

// OccupiedNeighbors counts occupied sites among the four nearest neighbors
// of (x, y), in [0, 4].
func (l *Lattice) OccupiedNeighbors(x, y int) int {
	n := int(l.Get(x+1, y)) + int(l.Get(x-1, y))
	n += int(l.Get(x, y+1)) + int(l.Get(x, y-1))
	return n
}

// Count returns the number of occupied sites.
func (l *Lattice) Count() int {
	c := 0
	for _, v := range l.sites {
		if v == Occupied {
			c++
		}
	}
	return c
}

// Density returns the occupied fraction Count/N².
func (l *Lattice) Density() float64 {
	return float64(l.Count()) / float64(l.n*l.n)
}

// Clone returns an independent copy.
func (l *Lattice) Clone() *Lattice {
	c := &Lattice{n: l.n, sites: make([]uint8, len(l.sites))}
	copy(c.sites, l.sites)
	return c
}

// Equal reports whether both lattices have the same size and occupations.
func (l *Lattice) Equal(o *Lattice) bool {
	if l.n != o.n {
		return false
	}
	for i, v := range l.sites {
		if v != o.sites[i] {
			return false
		}
	}
	return true
}
