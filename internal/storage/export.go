package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/latgas/internal/meanfield"
	"github.com/san-kum/latgas/internal/series"
)

// ExportData is the JSON shape of a full run export.
type ExportData struct {
	Meta    RunMetadata     `json:"meta"`
	Records []series.Record `json:"records"`
}

// ExportJSON writes the run metadata and series as indented JSON.
func ExportJSON(w io.Writer, meta RunMetadata, records []series.Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{Meta: meta, Records: records})
}

// WritePhaseCSV emits phase-diagram points with the header
// temperature,chem_potential,density, in the sweep's grid order.
func WritePhaseCSV(w io.Writer, points []meanfield.PhasePoint) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"temperature", "chem_potential", "density"}); err != nil {
		return err
	}
	for _, pt := range points {
		row := []string{
			strconv.FormatFloat(pt.Temperature, 'f', 6, 64),
			strconv.FormatFloat(pt.ChemPotential, 'f', 6, 64),
			strconv.FormatFloat(pt.Density, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
