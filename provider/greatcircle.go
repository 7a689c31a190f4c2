// SPDX-License-Identifier: MIT

package provider

import (
	"context"
	"math"

	"github.com/golang/geo/s2"

	"github.com/katalvlaran/routematrix/geo"
)

// EarthRadiusKm is the average great-circle radius of the earth.
const EarthRadiusKm = 6372.797

// Defaults for GreatCircle.
const (
	DefaultSpeedKmh     = 50.0
	DefaultDetourFactor = 1.0
)

// GreatCircle is an offline provider: distance is the great-circle distance
// times DetourFactor, time is that distance driven at SpeedKmh.
// The zero value uses the defaults. Symmetric by construction.
type GreatCircle struct {
	SpeedKmh     float64
	DetourFactor float64
}

var _ Provider = GreatCircle{}

// Route implements Provider. It only fails when the context is done.
func (g GreatCircle) Route(ctx context.Context, from, to geo.Coordinate) (Route, error) {
	if err := ctx.Err(); err != nil {
		return Route{}, err
	}

	speed, detour := g.SpeedKmh, g.DetourFactor
	if speed <= 0 {
		speed = DefaultSpeedKmh
	}
	if detour <= 0 {
		detour = DefaultDetourFactor
	}

	a := s2.LatLngFromDegrees(from.Lat, from.Lon)
	b := s2.LatLngFromDegrees(to.Lat, to.Lon)
	km := a.Distance(b).Radians() * EarthRadiusKm * detour

	return Route{DistanceKm: km, TimeMinutes: km / speed * 60}, nil
}

func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
