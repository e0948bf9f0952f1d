// Package config loads propagation scenarios from YAML files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/ivpsol/internal/ivp"
)

const (
	DefaultSystem = "uniform"
	DefaultT0     = 0.0
	DefaultTf     = 10.0
)

// Scenario describes one propagation run: which system to integrate, over
// what span, from what initial conditions, and with what solver tolerances.
// Empty Y0/Q0 fall back to the system's defaults.
type Scenario struct {
	System     string    `yaml:"system"`
	TSpan      []float64 `yaml:"tspan"`
	Y0         []float64 `yaml:"y0"`
	Q0         []float64 `yaml:"q0"`
	Params     []float64 `yaml:"params"`
	AbsTol     float64   `yaml:"abstol"`
	RelTol     float64   `yaml:"reltol"`
	MaxStep    float64   `yaml:"maxstep"`
	Quadrature bool      `yaml:"quadrature"`
}

func Default() *Scenario {
	return &Scenario{
		System:     DefaultSystem,
		TSpan:      []float64{DefaultT0, DefaultTf},
		AbsTol:     ivp.DefaultAbsTol,
		RelTol:     ivp.DefaultRelTol,
		MaxStep:    ivp.DefaultMaxStep,
		Quadrature: true,
	}
}

// Load reads a scenario file over the defaults, so absent keys keep their
// default values.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Scenario) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Scenario) Validate() error {
	if c.System == "" {
		return fmt.Errorf("config: system must be set")
	}
	if len(c.TSpan) != 2 {
		return fmt.Errorf("config: tspan must have exactly two entries, got %d", len(c.TSpan))
	}
	if c.TSpan[1] < c.TSpan[0] {
		return fmt.Errorf("config: tspan end %v precedes start %v", c.TSpan[1], c.TSpan[0])
	}
	if c.AbsTol <= 0 || c.RelTol <= 0 || c.MaxStep <= 0 {
		return fmt.Errorf("config: tolerances and maxstep must be positive")
	}
	return nil
}

// Span returns the time span as the propagator expects it.
func (c *Scenario) Span() [2]float64 {
	return [2]float64{c.TSpan[0], c.TSpan[1]}
}

// Options returns the solver options for this scenario.
func (c *Scenario) Options() ivp.Options {
	return ivp.Options{
		AbsTol:  c.AbsTol,
		RelTol:  c.RelTol,
		MaxStep: c.MaxStep,
	}
}
