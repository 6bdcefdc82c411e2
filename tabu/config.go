// SPDX-License-Identifier: MIT
// Package tabu implements the tabu search attempt that drives a
// solution.State toward obj=0 for a fixed k, using Move and Exchange
// neighborhoods, dynamic tenure, aspiration, and stagnation-triggered
// perturbation.
package tabu

import (
	"errors"
	"fmt"
)

// ErrConfigInvalid is returned by Config.Validate for any out-of-domain
// parameter. The original reference implementation never checks these
// domains; this is a deliberate strengthening rather than a behavior
// change, since the original never exercises out-of-domain values.
var ErrConfigInvalid = errors.New("tabu: invalid configuration")

// Config holds every tunable of a single tabu attempt. Use NewConfig with
// functional Options to build one. The zero value passes Validate but is
// not useful: MaxIter 0 ends every attempt before its first iteration.
type Config struct {
	MaxIter               int
	Alpha                 float64
	Beta                  int
	Aspiration            bool
	PerturbationLimit     int
	PerturbationStrength  float64
}

// Option mutates a Config under construction. Mirrors the
// builder.BuilderOption convention: WithX naming, applied in order by
// NewConfig.
type Option func(*Config)

// WithMaxIter sets the per-attempt iteration cap.
func WithMaxIter(n int) Option { return func(c *Config) { c.MaxIter = n } }

// WithAlpha sets the dynamic tenure coefficient on |conflictingVertices|.
func WithAlpha(a float64) Option { return func(c *Config) { c.Alpha = a } }

// WithBeta sets the inclusive upper bound of the uniform additive tenure term.
func WithBeta(b int) Option { return func(c *Config) { c.Beta = b } }

// WithAspiration toggles the aspiration criterion.
func WithAspiration(enabled bool) Option { return func(c *Config) { c.Aspiration = enabled } }

// WithPerturbationLimit sets the no-improvement iteration count that
// triggers a perturbation.
func WithPerturbationLimit(n int) Option { return func(c *Config) { c.PerturbationLimit = n } }

// WithPerturbationStrength sets the fraction of n used as the perturbation
// exchange count.
func WithPerturbationStrength(frac float64) Option {
	return func(c *Config) { c.PerturbationStrength = frac }
}

// defaultConfig matches the CLI defaults named in SPEC_FULL.md §6.
func defaultConfig() Config {
	return Config{
		MaxIter:              10_000_000,
		Alpha:                0.6,
		Beta:                 10,
		Aspiration:           true,
		PerturbationLimit:    1000,
		PerturbationStrength: 0.16,
	}
}

// NewConfig builds a Config starting from defaultConfig and applying opts
// in order.
func NewConfig(opts ...Option) Config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Validate rejects out-of-domain parameter combinations. A negative
// MaxIter, an Alpha outside [0,1], a negative Beta, a negative
// PerturbationLimit, or a PerturbationStrength outside [0,1] is rejected.
func (c Config) Validate() error {
	if c.MaxIter < 0 {
		return fmt.Errorf("tabu: Config.Validate: MaxIter=%d < 0: %w", c.MaxIter, ErrConfigInvalid)
	}
	if c.Alpha < 0 || c.Alpha > 1 {
		return fmt.Errorf("tabu: Config.Validate: Alpha=%v outside [0,1]: %w", c.Alpha, ErrConfigInvalid)
	}
	if c.Beta < 0 {
		return fmt.Errorf("tabu: Config.Validate: Beta=%d < 0: %w", c.Beta, ErrConfigInvalid)
	}
	if c.PerturbationLimit < 0 {
		return fmt.Errorf("tabu: Config.Validate: PerturbationLimit=%d < 0: %w", c.PerturbationLimit, ErrConfigInvalid)
	}
	if c.PerturbationStrength < 0 || c.PerturbationStrength > 1 {
		return fmt.Errorf("tabu: Config.Validate: PerturbationStrength=%v outside [0,1]: %w", c.PerturbationStrength, ErrConfigInvalid)
	}
	return nil
}
