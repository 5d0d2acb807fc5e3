// Package storage persists simulation runs as directories of plain files:
// metadata.json, series.csv and lattice.txt. Nothing outside this package
// touches the filesystem for run data.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/latgas/internal/glauber"
	"github.com/san-kum/latgas/internal/lattice"
	"github.com/san-kum/latgas/internal/series"
)

// ErrFormat indicates a series file that does not match the expected CSV
// layout.
var ErrFormat = errors.New("storage: malformed series file")

var csvHeader = []string{"step", "temperature", "chem_potential", "density"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID            string             `json:"id"`
	Size          int                `json:"size"`
	Timestamp     time.Time          `json:"timestamp"`
	Seed          int64              `json:"seed"`
	Steps         uint64             `json:"steps"`
	Temperature   float64            `json:"temperature"`
	ChemPotential float64            `json:"chem_potential"`
	Coupling      float64            `json:"coupling"`
	Metrics       map[string]float64 `json:"metrics"`
}

// Save writes one run directory and returns its ID.
func (s *Store) Save(size int, seed int64, p glauber.Params, metrics map[string]float64, records []series.Record, lat *lattice.Lattice) (string, error) {
	runID := fmt.Sprintf("lat%d_%d", size, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	var steps uint64
	if len(records) > 0 {
		steps = records[len(records)-1].Step
	}

	meta := RunMetadata{
		ID:            runID,
		Size:          size,
		Timestamp:     time.Now(),
		Seed:          seed,
		Steps:         steps,
		Temperature:   p.Temperature,
		ChemPotential: p.ChemPotential,
		Coupling:      p.Coupling,
		Metrics:       metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := WriteSeriesFile(filepath.Join(runDir, "series.csv"), records); err != nil {
		return "", err
	}

	if lat != nil {
		latFile, err := os.Create(filepath.Join(runDir, "lattice.txt"))
		if err != nil {
			return "", err
		}
		defer latFile.Close()
		if err := lat.WriteSnapshot(latFile); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadSeries(runID string) ([]series.Record, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "series.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadSeriesCSV(file)
}

func (s *Store) LoadLattice(runID string) (*lattice.Lattice, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "lattice.txt"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return lattice.ReadSnapshot(file)
}

// WriteSeriesCSV emits the measurement series with the header
// step,temperature,chem_potential,density.
func WriteSeriesCSV(w io.Writer, records []series.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{
			strconv.FormatUint(rec.Step, 10),
			strconv.FormatFloat(rec.Temperature, 'f', 6, 64),
			strconv.FormatFloat(rec.ChemPotential, 'f', 6, 64),
			strconv.FormatFloat(rec.Density, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteSeriesFile writes the series CSV to a standalone file.
func WriteSeriesFile(path string, records []series.Record) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteSeriesCSV(file, records)
}

// ReadSeriesCSV parses series text produced by WriteSeriesCSV.
func ReadSeriesCSV(r io.Reader) ([]series.Record, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrFormat)
	}

	header := rows[0]
	if len(header) != len(csvHeader) {
		return nil, fmt.Errorf("%w: unexpected header %v", ErrFormat, header)
	}
	for i, name := range csvHeader {
		if header[i] != name {
			return nil, fmt.Errorf("%w: unexpected header %v", ErrFormat, header)
		}
	}

	records := make([]series.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		step, err := strconv.ParseUint(row[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: step %q", ErrFormat, row[0])
		}
		temp, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: temperature %q", ErrFormat, row[1])
		}
		mu, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: chem_potential %q", ErrFormat, row[2])
		}
		density, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: density %q", ErrFormat, row[3])
		}
		records = append(records, series.Record{
			Step:          step,
			Temperature:   temp,
			ChemPotential: mu,
			Density:       density,
		})
	}
	return records, nil
}
