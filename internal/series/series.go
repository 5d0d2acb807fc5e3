// Package series collects per-step simulation measurements.
package series

// Record is one measurement row: the step counter and the parameters and
// density observed at that step.
type Record struct {
	Step          uint64  `json:"step"`
	Temperature   float64 `json:"temperature"`
	ChemPotential float64 `json:"chem_potential"`
	Density       float64 `json:"density"`
}

// Recorder accumulates records in insertion order. Appending never fails
// and never mutates earlier records.
type Recorder struct {
	records []Record
}

func NewRecorder() *Recorder {
	return &Recorder{records: make([]Record, 0, 1024)}
}

// Record appends one measurement.
func (r *Recorder) Record(step uint64, temp, mu, density float64) {
	r.records = append(r.records, Record{
		Step:          step,
		Temperature:   temp,
		ChemPotential: mu,
		Density:       density,
	})
}

// Export returns a copy of all records in insertion order.
func (r *Recorder) Export() []Record {
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// Len returns the number of records held.
func (r *Recorder) Len() int { return len(r.records) }

// Last returns the most recent record, if any.
func (r *Recorder) Last() (Record, bool) {
	if len(r.records) == 0 {
		return Record{}, false
	}
	return r.records[len(r.records)-1], true
}

// Clear discards all records.
func (r *Recorder) Clear() {
	r.records = r.records[:0]
}
