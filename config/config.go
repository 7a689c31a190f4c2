// SPDX-License-Identifier: MIT

// Package config holds the run configuration of the routematrix command:
// defaults, an optional YAML file, ROUTEMATRIX_* environment overrides and
// struct-tag validation. Command-line values are applied by the caller on top
// of the loaded Config before Validate.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Provider kinds.
const (
	ProviderGreatCircle = "greatcircle"
	ProviderOSRM        = "osrm"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full configuration of one run.
type Config struct {
	Workers       int            `yaml:"workers" validate:"min=1,max=1024"`
	Symmetric     bool           `yaml:"symmetric"`
	FailurePolicy string         `yaml:"failure_policy" validate:"oneof=stop skip"`
	Closure       ClosureConfig  `yaml:"closure"`
	Provider      ProviderConfig `yaml:"provider"`
	Metrics       MetricsConfig  `yaml:"metrics"`
	Log           LogConfig      `yaml:"log"`
}

// ClosureConfig configures the triangle-inequality repair.
type ClosureConfig struct {
	Mode      string  `yaml:"mode" validate:"oneof=relax floyd-warshall fw"`
	MaxPasses int     `yaml:"max_passes" validate:"min=0"`
	Epsilon   float64 `yaml:"epsilon" validate:"min=0"`
}

// ProviderConfig selects and configures the routing provider.
type ProviderConfig struct {
	Kind        string            `yaml:"kind" validate:"oneof=greatcircle osrm"`
	GreatCircle GreatCircleConfig `yaml:"greatcircle"`
	OSRM        OSRMConfig        `yaml:"osrm"`
	// CacheSize bounds the provider memo; 0 disables it.
	CacheSize int `yaml:"cache_size" validate:"min=0"`
}

// GreatCircleConfig configures the offline provider.
type GreatCircleConfig struct {
	SpeedKmh     float64 `yaml:"speed_kmh" validate:"gt=0"`
	DetourFactor float64 `yaml:"detour_factor" validate:"gte=1"`
}

// OSRMConfig configures the OSRM client.
type OSRMConfig struct {
	BaseURL       string        `yaml:"base_url" validate:"omitempty,url"`
	Profile       string        `yaml:"profile" validate:"required"`
	Timeout       time.Duration `yaml:"timeout" validate:"gt=0"`
	RatePerSecond float64       `yaml:"rate_per_second" validate:"min=0"`
	Burst         int           `yaml:"burst" validate:"min=1"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	// Addr is the listen address of /metrics; empty disables the endpoint.
	Addr string `yaml:"addr" validate:"omitempty,hostname_port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn error"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Workers:       1,
		FailurePolicy: "stop",
		Closure: ClosureConfig{
			Mode: "relax",
		},
		Provider: ProviderConfig{
			Kind: ProviderGreatCircle,
			GreatCircle: GreatCircleConfig{
				SpeedKmh:     50,
				DetourFactor: 1,
			},
			OSRM: OSRMConfig{
				Profile: "driving",
				Timeout: 30 * time.Second,
				Burst:   1,
			},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load returns Default overlaid with the YAML file at path (skipped when
// path is empty) and the environment. The result is not validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// applyEnv overrides fields from ROUTEMATRIX_* variables. Unparsable values
// are errors rather than silently ignored.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	var err error
	num := func(key string, dst *int) {
		if v, ok := lookup(key); ok && v != "" && err == nil {
			var n int
			if n, err = strconv.Atoi(v); err != nil {
				err = fmt.Errorf("%s=%q: %w", key, v, ErrInvalid)
				return
			}
			*dst = n
		}
	}
	flt := func(key string, dst *float64) {
		if v, ok := lookup(key); ok && v != "" && err == nil {
			var f float64
			if f, err = strconv.ParseFloat(v, 64); err != nil {
				err = fmt.Errorf("%s=%q: %w", key, v, ErrInvalid)
				return
			}
			*dst = f
		}
	}

	num("ROUTEMATRIX_WORKERS", &cfg.Workers)
	str("ROUTEMATRIX_PROVIDER", &cfg.Provider.Kind)
	str("ROUTEMATRIX_OSRM_URL", &cfg.Provider.OSRM.BaseURL)
	str("ROUTEMATRIX_OSRM_PROFILE", &cfg.Provider.OSRM.Profile)
	flt("ROUTEMATRIX_OSRM_RATE", &cfg.Provider.OSRM.RatePerSecond)
	num("ROUTEMATRIX_CACHE_SIZE", &cfg.Provider.CacheSize)
	str("ROUTEMATRIX_METRICS_ADDR", &cfg.Metrics.Addr)
	str("ROUTEMATRIX_LOG_LEVEL", &cfg.Log.Level)
	str("ROUTEMATRIX_LOG_FORMAT", &cfg.Log.Format)

	return err
}

var validate = validator.New()

// Validate checks the struct tags and the cross-field rules.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s fails %q (value %v)", ErrInvalid, fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Provider.Kind == ProviderOSRM && c.Provider.OSRM.BaseURL == "" {
		return fmt.Errorf("%w: provider.osrm.base_url is required for the osrm provider", ErrInvalid)
	}

	return nil
}
