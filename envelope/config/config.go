// Package config holds the analysis parameters of the envelope pipeline.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/RyanBlaney/sonido-envelope/algorithms/windowing"
)

// ErrInvalidConfig is returned by Validate for unusable parameters.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full set of pipeline parameters. One Config applies to a
// whole batch run.
type Config struct {
	// Spectral analysis
	FrameLength int     `json:"frame_length"`
	HopLength   int     `json:"hop_length"`
	BandLowHz   float64 `json:"band_low_hz"`
	BandHighHz  float64 `json:"band_high_hz"`

	// Window is the taper applied to each frame before the FFT.
	Window windowing.Type `json:"window"`

	// Post-processing
	InterpolationFactor int `json:"interpolation_factor"`
	ResamplePoints      int `json:"resample_points"`
	SmoothingWindow     int `json:"smoothing_window"`

	// Workers bounds concurrent sound analyses; 0 means runtime.NumCPU().
	Workers int `json:"workers,omitempty"`
}

// Default returns the parameters the envelope consumers are tuned to.
func Default() *Config {
	return &Config{
		FrameLength:         1024,
		HopLength:           512,
		BandLowHz:           20,
		BandHighHz:          4000,
		Window:              windowing.TypeHann,
		InterpolationFactor: 2,
		ResamplePoints:      128,
		SmoothingWindow:     7,
		Workers:             0,
	}
}

// Validate checks parameter ranges that do not depend on a sample rate.
func (c *Config) Validate() error {
	switch {
	case c.FrameLength <= 0 || c.FrameLength%2 != 0:
		return fmt.Errorf("%w: frame_length must be positive and even, got %d", ErrInvalidConfig, c.FrameLength)
	case c.HopLength <= 0 || c.HopLength > c.FrameLength:
		return fmt.Errorf("%w: hop_length must be in (0, frame_length], got %d", ErrInvalidConfig, c.HopLength)
	case c.BandLowHz < 0:
		return fmt.Errorf("%w: band_low_hz must be non-negative, got %v", ErrInvalidConfig, c.BandLowHz)
	case c.BandLowHz >= c.BandHighHz:
		return fmt.Errorf("%w: band_low_hz (%v) must be below band_high_hz (%v)", ErrInvalidConfig, c.BandLowHz, c.BandHighHz)
	case !validWindow(c.Window):
		return fmt.Errorf("%w: unknown window %q", ErrInvalidConfig, c.Window)
	case c.InterpolationFactor < 1:
		return fmt.Errorf("%w: interpolation_factor must be >= 1, got %d", ErrInvalidConfig, c.InterpolationFactor)
	case c.ResamplePoints < 1:
		return fmt.Errorf("%w: resample_points must be >= 1, got %d", ErrInvalidConfig, c.ResamplePoints)
	case c.SmoothingWindow < 1:
		return fmt.Errorf("%w: smoothing_window must be >= 1, got %d", ErrInvalidConfig, c.SmoothingWindow)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}

func validWindow(t windowing.Type) bool {
	_, err := windowing.ParseType(string(t))
	return err == nil
}

// Parse overlays the JSON document data onto the defaults and validates the
// result. Keys missing from data keep their default value.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads a JSON config file. See Parse.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data)
}
