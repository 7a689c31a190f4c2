// SPDX-License-Identifier: MIT

package evaluator_test

import (
	"context"
	"math"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routematrix/geo"
	"github.com/katalvlaran/routematrix/provider"
)

// MustTable builds a coordinate table from (lat, lon) pairs.
func MustTable(t *testing.T, latlon ...[2]float64) *geo.Table {
	t.Helper()
	coords := make([]geo.Coordinate, len(latlon))
	for i, c := range latlon {
		coords[i] = geo.Coordinate{Lat: c[0], Lon: c[1]}
	}
	tbl, err := geo.NewTable(coords)
	require.NoError(t, err)

	return tbl
}

// Euclidean treats coordinates as plane points; time is distance/10.
func Euclidean(calls *atomic.Int64) provider.Provider {
	return provider.Func(func(ctx context.Context, from, to geo.Coordinate) (provider.Route, error) {
		if calls != nil {
			calls.Add(1)
		}
		d := math.Hypot(to.Lat-from.Lat, to.Lon-from.Lon)

		return provider.Route{DistanceKm: d, TimeMinutes: d / 10}, nil
	})
}

// FailOn wraps inner and fails every call between the two coordinates.
func FailOn(inner provider.Provider, from, to geo.Coordinate, err error) provider.Provider {
	return provider.Func(func(ctx context.Context, a, b geo.Coordinate) (provider.Route, error) {
		if (a == from && b == to) || (a == to && b == from) {
			return provider.Route{}, err
		}

		return inner.Route(ctx, a, b)
	})
}
