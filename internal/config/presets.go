package config

import "sort"

// Presets are ready-made parameter sets around the landmarks of the default
// coupling: critical point at T = J, coexistence along µ = -2J.
var Presets = map[string]*Config{
	"critical": {
		Size: 200, Steps: 2000, Temperature: 0.5, ChemPotential: -1.0, Coupling: 0.5,
	},
	"coexistence": {
		Size: 200, Steps: 5000, Temperature: 0.3, ChemPotential: -1.0, Coupling: 0.5,
	},
	"liquid": {
		Size: 200, Steps: 1000, Temperature: 0.3, ChemPotential: -0.5, Coupling: 0.5,
	},
	"gas": {
		Size: 200, Steps: 1000, Temperature: 0.3, ChemPotential: -1.5, Coupling: 0.5,
	},
	"hot": {
		Size: 200, Steps: 500, Temperature: 2.0, ChemPotential: -1.0, Coupling: 0.5,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
