// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/routematrix/config"
)

// cliFlags mirrors every flag; a value only overrides the configuration when
// the flag was set explicitly.
type cliFlags struct {
	configPath  string
	provider    string
	osrmURL     string
	osrmProfile string
	rate        float64
	speed       float64
	detour      float64
	cacheSize   int
	closure     string
	maxPasses   int
	keepGoing   bool
	metricsAddr string
	logLevel    string
	logFormat   string
}

func (f *cliFlags) registerPersistent(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&f.closure, "closure", "relax", "closure schedule: relax or floyd-warshall")
	pf.IntVar(&f.maxPasses, "max-passes", 0, "maximum closure passes (0 = until stable)")
	pf.StringVar(&f.logLevel, "log-level", "info", "log level: trace, debug, info, warn, error")
	pf.StringVar(&f.logFormat, "log-format", "console", "log format: console or json")
}

func (f *cliFlags) registerRun(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.provider, "provider", config.ProviderGreatCircle, "routing provider: greatcircle or osrm")
	fl.StringVar(&f.osrmURL, "osrm-url", "", "OSRM server base URL")
	fl.StringVar(&f.osrmProfile, "osrm-profile", "driving", "OSRM routing profile")
	fl.Float64Var(&f.rate, "rate", 0, "maximum OSRM requests per second (0 = unlimited)")
	fl.Float64Var(&f.speed, "speed", 50, "great-circle average speed in km/h")
	fl.Float64Var(&f.detour, "detour", 1, "great-circle detour factor")
	fl.IntVar(&f.cacheSize, "cache-size", 0, "provider answers kept in memory (0 = no cache)")
	fl.BoolVar(&f.keepGoing, "keep-going", false, "skip failing pairs instead of stopping")
	fl.StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
}

// apply overlays explicitly set flags on cfg.
func (f *cliFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	set := cmd.Flags().Changed
	if set("provider") {
		cfg.Provider.Kind = f.provider
	}
	if set("osrm-url") {
		cfg.Provider.OSRM.BaseURL = f.osrmURL
	}
	if set("osrm-profile") {
		cfg.Provider.OSRM.Profile = f.osrmProfile
	}
	if set("rate") {
		cfg.Provider.OSRM.RatePerSecond = f.rate
	}
	if set("speed") {
		cfg.Provider.GreatCircle.SpeedKmh = f.speed
	}
	if set("detour") {
		cfg.Provider.GreatCircle.DetourFactor = f.detour
	}
	if set("cache-size") {
		cfg.Provider.CacheSize = f.cacheSize
	}
	if set("closure") {
		cfg.Closure.Mode = f.closure
	}
	if set("max-passes") {
		cfg.Closure.MaxPasses = f.maxPasses
	}
	if set("keep-going") {
		cfg.FailurePolicy = "stop"
		if f.keepGoing {
			cfg.FailurePolicy = "skip"
		}
	}
	if set("metrics-addr") {
		cfg.Metrics.Addr = f.metricsAddr
	}
	if set("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if set("log-format") {
		cfg.Log.Format = f.logFormat
	}
}

// applyArgs overlays the positional symmetricFlag and workerCount.
func applyArgs(args []string, cfg *config.Config) error {
	sym, err := strconv.ParseBool(args[2])
	if err != nil {
		return fmt.Errorf("symmetricFlag %q: not a boolean", args[2])
	}
	cfg.Symmetric = sym
	if len(args) == 4 {
		n, err := strconv.Atoi(args[3])
		if err != nil {
			return fmt.Errorf("workerCount %q: not an integer", args[3])
		}
		cfg.Workers = n
	}

	return nil
}
