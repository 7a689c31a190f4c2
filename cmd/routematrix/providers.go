// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/routematrix/config"
	"github.com/katalvlaran/routematrix/metrics"
	"github.com/katalvlaran/routematrix/provider"
)

// buildProvider assembles cache(instrumented(base)): cache hits are counted
// as such and never reach the latency histogram.
func buildProvider(cfg config.Config, m *metrics.Collectors) (provider.Provider, error) {
	var base provider.Provider
	switch cfg.Provider.Kind {
	case config.ProviderGreatCircle:
		base = provider.GreatCircle{
			SpeedKmh:     cfg.Provider.GreatCircle.SpeedKmh,
			DetourFactor: cfg.Provider.GreatCircle.DetourFactor,
		}
	case config.ProviderOSRM:
		o := cfg.Provider.OSRM
		client, err := provider.NewOSRM(provider.OSRMConfig{
			BaseURL:       o.BaseURL,
			Profile:       o.Profile,
			Timeout:       o.Timeout,
			RatePerSecond: o.RatePerSecond,
			Burst:         o.Burst,
		})
		if err != nil {
			return nil, err
		}
		base = client
	default:
		return nil, fmt.Errorf("provider %q: %w", cfg.Provider.Kind, config.ErrInvalid)
	}

	p := provider.Provider(provider.NewInstrumented(base, m))
	if cfg.Provider.CacheSize > 0 {
		cached, err := provider.NewCached(p, cfg.Provider.CacheSize)
		if err != nil {
			return nil, err
		}
		p = cached.OnHit(func() { m.ObserveCall(metrics.ResultCache, 0) })
	}

	return p, nil
}
