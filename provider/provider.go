// SPDX-License-Identifier: MIT

// Package provider defines the distance/time provider capability consumed by
// the evaluator, plus concrete providers and decorators:
//
//   - GreatCircle: offline spherical distance with a constant speed.
//   - OSRM: HTTP client for an OSRM-compatible routing server.
//   - Cached: bounded LRU memo keyed by quantized coordinates.
//   - Instrumented: call counts and latency into metrics.Collectors.
//
// A provider may fail; failures are returned to the caller and never retried
// here.
package provider

import (
	"context"
	"errors"

	"github.com/katalvlaran/routematrix/geo"
)

// Sentinel errors shared by the concrete providers.
var (
	// ErrNoRoute indicates the provider answered but found no route.
	ErrNoRoute = errors.New("provider: no route")

	// ErrUpstream indicates a transport or protocol failure talking to a
	// remote provider.
	ErrUpstream = errors.New("provider: upstream failure")

	// ErrInvalidResult indicates a negative, NaN or infinite distance/time.
	ErrInvalidResult = errors.New("provider: invalid route result")
)

// Route is one routing answer.
type Route struct {
	DistanceKm  float64
	TimeMinutes float64
}

// Provider converts two coordinates into a travel distance and time.
// Implementations must be safe for concurrent use by several workers.
type Provider interface {
	Route(ctx context.Context, from, to geo.Coordinate) (Route, error)
}

// Func adapts a plain function to Provider.
type Func func(ctx context.Context, from, to geo.Coordinate) (Route, error)

// Route implements Provider.
func (f Func) Route(ctx context.Context, from, to geo.Coordinate) (Route, error) {
	return f(ctx, from, to)
}

// valid reports whether r can be stored in a distance/time matrix.
func (r Route) valid() bool {
	return r.DistanceKm >= 0 && r.TimeMinutes >= 0 &&
		!isNonFinite(r.DistanceKm) && !isNonFinite(r.TimeMinutes)
}
