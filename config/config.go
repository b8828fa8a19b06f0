// SPDX-License-Identifier: MIT
// Package config: pipeline parameters with deterministic defaults.

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingEdgePath is returned when spectral features are requested
	// without an edge-list path.
	ErrMissingEdgePath = errors.New("config: edge path required for spectral features")

	// ErrMissingFeaturesPath is returned when file-loaded features are
	// requested without a features path.
	ErrMissingFeaturesPath = errors.New("config: features path required when spectral features are off")

	// ErrBadReduction is returned for non-positive reduction parameters.
	ErrBadReduction = errors.New("config: reduction parameters must be > 0")

	// ErrBadTestSize is returned when the hold-out fraction leaves no
	// training or no test data.
	ErrBadTestSize = errors.New("config: test size must be in (0,1)")
)

// Deterministic defaults, mirroring the documented pipeline setup.
const (
	DefaultReductionDimensions = 64
	DefaultReductionIterations = 30
	DefaultSeed                = 42
	DefaultTestSize            = 0.2
	DefaultSpectralFeatures    = true
	DefaultLogPath             = "log"
)

// Params aggregates every knob of the embedding pipeline utilities.
type Params struct {
	EdgePath            string  `yaml:"edge_path"`            // signed edge-list file
	FeaturesPath        string  `yaml:"features_path"`        // dense feature CSV (non-spectral runs)
	LogPath             string  `yaml:"log_path"`             // monitor output location
	SpectralFeatures    bool    `yaml:"spectral_features"`    // spectral vs file-loaded features
	ReductionDimensions int     `yaml:"reduction_dimensions"` // embedding width k
	ReductionIterations int     `yaml:"reduction_iterations"` // SVD power iterations
	Seed                int64   `yaml:"seed"`                 // sketch RNG seed
	TestSize            float64 `yaml:"test_size"`            // hold-out edge fraction
}

// Default returns the documented defaults.
func Default() Params {
	return Params{
		LogPath:             DefaultLogPath,
		SpectralFeatures:    DefaultSpectralFeatures,
		ReductionDimensions: DefaultReductionDimensions,
		ReductionIterations: DefaultReductionIterations,
		Seed:                DefaultSeed,
		TestSize:            DefaultTestSize,
	}
}

// Load reads YAML overrides on top of Default and validates the result.
func Load(path string) (Params, error) {
	p := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("config.Load: %w", err)
	}
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return Params{}, fmt.Errorf("config.Load %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return Params{}, fmt.Errorf("config.Load %s: %w", path, err)
	}

	return p, nil
}

// Validate checks the parameter set; it never mutates.
func (p Params) Validate() error {
	if p.SpectralFeatures && p.EdgePath == "" {
		return ErrMissingEdgePath
	}
	if !p.SpectralFeatures && p.FeaturesPath == "" {
		return ErrMissingFeaturesPath
	}
	if p.ReductionDimensions <= 0 || p.ReductionIterations <= 0 {
		return fmt.Errorf("dimensions=%d iterations=%d: %w",
			p.ReductionDimensions, p.ReductionIterations, ErrBadReduction)
	}
	if p.TestSize <= 0 || p.TestSize >= 1 {
		return fmt.Errorf("test_size=%v: %w", p.TestSize, ErrBadTestSize)
	}

	return nil
}

// Pairs lists the parameters as ordered name/value rows for tabular
// display, alphabetical by label.
func (p Params) Pairs() [][2]string {
	return [][2]string{
		{"Edge path", p.EdgePath},
		{"Features path", p.FeaturesPath},
		{"Log path", p.LogPath},
		{"Reduction dimensions", strconv.Itoa(p.ReductionDimensions)},
		{"Reduction iterations", strconv.Itoa(p.ReductionIterations)},
		{"Seed", strconv.FormatInt(p.Seed, 10)},
		{"Spectral features", strconv.FormatBool(p.SpectralFeatures)},
		{"Test size", strconv.FormatFloat(p.TestSize, 'g', -1, 64)},
	}
}
