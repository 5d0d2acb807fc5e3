// Package config holds simulation settings and their YAML representation.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSize          = 200
	DefaultSteps         = 1000
	DefaultTemperature   = 0.7
	DefaultChemPotential = -1.0
	DefaultCoupling      = 0.5
	DefaultScanSamples   = 1000
)

type Config struct {
	Size          int         `yaml:"size"`
	Steps         int         `yaml:"steps"`
	Seed          int64       `yaml:"seed"`
	Temperature   float64     `yaml:"temperature"`
	ChemPotential float64     `yaml:"chem_potential"`
	Coupling      float64     `yaml:"coupling"`
	Sweep         SweepConfig `yaml:"sweep"`
}

// SweepConfig frames the phase-diagram window and its resolution. Both axes
// sample half-open ranges, so the maxima are excluded.
type SweepConfig struct {
	TempMin   float64 `yaml:"temp_min"`
	TempMax   float64 `yaml:"temp_max"`
	MuMin     float64 `yaml:"mu_min"`
	MuMax     float64 `yaml:"mu_max"`
	TempSteps int     `yaml:"temp_steps"`
	MuSteps   int     `yaml:"mu_steps"`
	Samples   int     `yaml:"samples"`
	Workers   int     `yaml:"workers"`
}

func DefaultConfig() *Config {
	return &Config{
		Size:          DefaultSize,
		Steps:         DefaultSteps,
		Temperature:   DefaultTemperature,
		ChemPotential: DefaultChemPotential,
		Coupling:      DefaultCoupling,
		Sweep: SweepConfig{
			TempMin:   0.01,
			TempMax:   1.0,
			MuMin:     -2.0,
			MuMax:     0.0,
			TempSteps: 100,
			MuSteps:   100,
			Samples:   DefaultScanSamples,
		},
	}
}

// Load reads a YAML file over the defaults, so omitted keys keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
