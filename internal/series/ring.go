package series

// Ring is a fixed-capacity buffer of recent values. Once full, each push
// evicts the oldest value. It also tracks the minimum and maximum ever
// pushed, so chart axes stay stable while old values scroll away.
type Ring struct {
	values []float64
	head   int
	count  int
	min    float64
	max    float64
}

// NewRing allocates a ring holding at most capacity values. Capacities
// below 1 are clamped to 1.
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{values: make([]float64, capacity)}
}

// Push appends v, evicting the oldest value when full.
func (r *Ring) Push(v float64) {
	r.values[r.head] = v
	r.head = (r.head + 1) % len(r.values)
	if r.count < len(r.values) {
		r.count++
	}
	if r.count == 1 || v < r.min {
		r.min = v
	}
	if r.count == 1 || v > r.max {
		r.max = v
	}
}

// Values returns the held values oldest first.
func (r *Ring) Values() []float64 {
	out := make([]float64, r.count)
	start := (r.head + len(r.values) - r.count) % len(r.values)
	for i := 0; i < r.count; i++ {
		out[i] = r.values[(start+i)%len(r.values)]
	}
	return out
}

// Len returns the number of values held.
func (r *Ring) Len() int { return r.count }

// Cap returns the ring capacity.
func (r *Ring) Cap() int { return len(r.values) }

// Bounds returns the minimum and maximum pushed since creation, including
// values already evicted. Both are zero while the ring is empty.
func (r *Ring) Bounds() (min, max float64) {
	return r.min, r.max
}
