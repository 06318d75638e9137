package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultModel    = "growth"
	DefaultX0       = 0.001
	DefaultHorizon  = 10.0
	DefaultStepSize = 0.0001
	DefaultDataDir  = ".odestep"
)

type Config struct {
	Model    string             `yaml:"model"`
	X0       []float64          `yaml:"x0,flow"`
	Horizon  float64            `yaml:"horizon"`
	StepSize float64            `yaml:"stepsize"`
	Params   map[string]float64 `yaml:"params,omitempty"`
	DataDir  string             `yaml:"data_dir,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:    DefaultModel,
		X0:       []float64{DefaultX0},
		Horizon:  DefaultHorizon,
		StepSize: DefaultStepSize,
		DataDir:  DefaultDataDir,
	}
}

func Load(path string) (*Config, error) {
	return LoadInto(path, DefaultConfig())
}

// LoadInto reads path over a copy of base. Fields absent from the file keep
// the value from base, and base itself is left untouched.
func LoadInto(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
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

// Scalar returns the 1-D initial state.
func (c *Config) Scalar() (float64, error) {
	if len(c.X0) != 1 {
		return 0, fmt.Errorf("config: model %s needs 1 initial value, got %d", c.Model, len(c.X0))
	}
	return c.X0[0], nil
}

// Vector returns the 3-D initial state.
func (c *Config) Vector() ([3]float64, error) {
	var x0 [3]float64
	if len(c.X0) != 3 {
		return x0, fmt.Errorf("config: model %s needs 3 initial values, got %d", c.Model, len(c.X0))
	}
	copy(x0[:], c.X0)
	return x0, nil
}

// Clone returns a deep copy so presets are never mutated by callers.
func (c *Config) Clone() *Config {
	cp := *c
	cp.X0 = append([]float64(nil), c.X0...)
	if c.Params != nil {
		cp.Params = make(map[string]float64, len(c.Params))
		for k, v := range c.Params {
			cp.Params[k] = v
		}
	}
	return &cp
}
