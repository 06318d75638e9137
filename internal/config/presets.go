package config

import "sort"

var Presets = map[string]map[string]*Config{
	"growth": {
		"demo": {
			Model: "growth", X0: []float64{0.001}, Horizon: 10, StepSize: 0.0001,
		},
		"coarse": {
			Model: "growth", X0: []float64{1}, Horizon: 5, StepSize: 0.1,
		},
	},
	"decay": {
		"halflife": {
			Model: "decay", X0: []float64{1}, Horizon: 10, StepSize: 0.01,
			Params: map[string]float64{"k": 0.6931471805599453},
		},
	},
	"logistic": {
		"saturate": {
			Model: "logistic", X0: []float64{0.01}, Horizon: 20, StepSize: 0.01,
			Params: map[string]float64{"r": 1, "K": 1},
		},
	},
	"forced": {
		"resonant": {
			Model: "forced", X0: []float64{0}, Horizon: 30, StepSize: 0.01,
			Params: map[string]float64{"tau": 2, "omega": 0.5},
		},
	},
	"identity": {
		"demo": {
			Model: "identity", X0: []float64{0.001, 0.002, 0.003}, Horizon: 10, StepSize: 0.0001,
		},
	},
	"lorenz": {
		"classic": {
			Model: "lorenz", X0: []float64{1, 1, 1}, Horizon: 40, StepSize: 0.001,
		},
		"tight": {
			Model: "lorenz", X0: []float64{0.1, 0, 0}, Horizon: 20, StepSize: 0.0005,
		},
	},
	"rossler": {
		"classic": {
			Model: "rossler", X0: []float64{1, 1, 1}, Horizon: 100, StepSize: 0.005,
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
