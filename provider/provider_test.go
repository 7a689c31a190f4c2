// SPDX-License-Identifier: MIT

package provider_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routematrix/geo"
	"github.com/katalvlaran/routematrix/metrics"
	"github.com/katalvlaran/routematrix/provider"
)

func TestGreatCircle_OneDegreeAtEquator(t *testing.T) {
	t.Parallel()

	r, err := provider.GreatCircle{}.Route(context.Background(),
		geo.Coordinate{Lat: 0, Lon: 0}, geo.Coordinate{Lat: 0, Lon: 1})
	require.NoError(t, err)

	want := math.Pi / 180 * provider.EarthRadiusKm
	require.InDelta(t, want, r.DistanceKm, 1e-9)
	require.InDelta(t, want/provider.DefaultSpeedKmh*60, r.TimeMinutes, 1e-9)
}

func TestGreatCircle_SymmetricAndDetour(t *testing.T) {
	t.Parallel()

	a := geo.Coordinate{Lat: 52.5200, Lon: 13.4050}
	b := geo.Coordinate{Lat: 48.1351, Lon: 11.5820}
	g := provider.GreatCircle{SpeedKmh: 100, DetourFactor: 1.3}

	ab, err := g.Route(context.Background(), a, b)
	require.NoError(t, err)
	ba, err := g.Route(context.Background(), b, a)
	require.NoError(t, err)
	require.InDelta(t, ab.DistanceKm, ba.DistanceKm, 1e-9)

	plain, err := provider.GreatCircle{}.Route(context.Background(), a, b)
	require.NoError(t, err)
	require.InDelta(t, plain.DistanceKm*1.3, ab.DistanceKm, 1e-9)
	require.InDelta(t, ab.DistanceKm/100*60, ab.TimeMinutes, 1e-9)

	same, err := g.Route(context.Background(), a, a)
	require.NoError(t, err)
	require.Zero(t, same.DistanceKm)
}

func TestGreatCircle_ContextDone(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := provider.GreatCircle{}.Route(ctx, geo.Coordinate{}, geo.Coordinate{Lat: 1})
	require.ErrorIs(t, err, context.Canceled)
}

func TestFunc(t *testing.T) {
	t.Parallel()

	f := provider.Func(func(_ context.Context, from, to geo.Coordinate) (provider.Route, error) {
		return provider.Route{DistanceKm: to.Lat - from.Lat, TimeMinutes: 1}, nil
	})
	r, err := f.Route(context.Background(), geo.Coordinate{Lat: 1}, geo.Coordinate{Lat: 4})
	require.NoError(t, err)
	require.Equal(t, provider.Route{DistanceKm: 3, TimeMinutes: 1}, r)
}

func osrmServer(t *testing.T, status int, body string, seen *atomic.Value) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			seen.Store(r.URL.String())
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestOSRM_Route(t *testing.T) {
	t.Parallel()

	var seen atomic.Value
	srv := osrmServer(t, http.StatusOK,
		`{"code":"Ok","routes":[{"distance":12500,"duration":900}]}`, &seen)

	o, err := provider.NewOSRM(provider.OSRMConfig{BaseURL: srv.URL + "/", Profile: "car"})
	require.NoError(t, err)

	r, err := o.Route(context.Background(),
		geo.Coordinate{Lat: 52.5, Lon: 13.25}, geo.Coordinate{Lat: 48.125, Lon: 11.5})
	require.NoError(t, err)
	require.InDelta(t, 12.5, r.DistanceKm, 1e-12)
	require.InDelta(t, 15.0, r.TimeMinutes, 1e-12)
	require.Equal(t,
		"/route/v1/car/13.25,52.5;11.5,48.125?overview=false&alternatives=false&steps=false",
		seen.Load())
}

func TestOSRM_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"no route code", http.StatusOK, `{"code":"NoRoute","message":"Impossible route"}`, provider.ErrNoRoute},
		{"empty routes", http.StatusOK, `{"code":"Ok","routes":[]}`, provider.ErrNoRoute},
		{"invalid query", http.StatusBadRequest, `{"code":"InvalidQuery","message":"bad"}`, provider.ErrUpstream},
		{"server error html", http.StatusBadGateway, `<html>bad gateway</html>`, provider.ErrUpstream},
		{"garbage ok", http.StatusOK, `not json`, provider.ErrUpstream},
		{"negative distance", http.StatusOK, `{"code":"Ok","routes":[{"distance":-1,"duration":5}]}`, provider.ErrInvalidResult},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			srv := osrmServer(t, tc.status, tc.body, nil)
			o, err := provider.NewOSRM(provider.OSRMConfig{BaseURL: srv.URL})
			require.NoError(t, err)

			_, err = o.Route(context.Background(), geo.Coordinate{}, geo.Coordinate{Lat: 1})
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestOSRM_ConfigAndTransport(t *testing.T) {
	t.Parallel()

	_, err := provider.NewOSRM(provider.OSRMConfig{})
	require.ErrorIs(t, err, provider.ErrUpstream)

	srv := osrmServer(t, http.StatusOK, `{}`, nil)
	url := srv.URL
	srv.Close()

	o, err := provider.NewOSRM(provider.OSRMConfig{BaseURL: url})
	require.NoError(t, err)
	_, err = o.Route(context.Background(), geo.Coordinate{}, geo.Coordinate{Lat: 1})
	require.ErrorIs(t, err, provider.ErrUpstream)
}

func TestOSRM_RateLimiterHonoursContext(t *testing.T) {
	t.Parallel()

	srv := osrmServer(t, http.StatusOK, `{"code":"Ok","routes":[{"distance":1,"duration":1}]}`, nil)
	o, err := provider.NewOSRM(provider.OSRMConfig{BaseURL: srv.URL, RatePerSecond: 0.001, Burst: 1})
	require.NoError(t, err)

	// The first call consumes the only token.
	_, err = o.Route(context.Background(), geo.Coordinate{}, geo.Coordinate{Lat: 1})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = o.Route(ctx, geo.Coordinate{}, geo.Coordinate{Lat: 1})
	require.Error(t, err)
}

func countingProvider(calls *atomic.Int64, fail bool) provider.Provider {
	return provider.Func(func(_ context.Context, from, to geo.Coordinate) (provider.Route, error) {
		calls.Add(1)
		if fail {
			return provider.Route{}, provider.ErrNoRoute
		}
		return provider.Route{DistanceKm: to.Lat - from.Lat + 10, TimeMinutes: 1}, nil
	})
}

func TestCached(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	var hits int
	c, err := provider.NewCached(countingProvider(&calls, false), 8)
	require.NoError(t, err)
	c.OnHit(func() { hits++ })

	a := geo.Coordinate{Lat: 1, Lon: 1}
	b := geo.Coordinate{Lat: 2, Lon: 2}
	nearA := geo.Coordinate{Lat: 1 + geo.LocationEpsilon/10, Lon: 1}

	r1, err := c.Route(context.Background(), a, b)
	require.NoError(t, err)
	r2, err := c.Route(context.Background(), nearA, b)
	require.NoError(t, err)
	require.Equal(t, r1, r2)
	require.EqualValues(t, 1, calls.Load())
	require.Equal(t, 1, hits)

	// Directional keys.
	r3, err := c.Route(context.Background(), b, a)
	require.NoError(t, err)
	require.NotEqual(t, r1, r3)
	require.EqualValues(t, 2, calls.Load())
	require.Equal(t, 2, c.Len())
}

func TestCached_ErrorsNotCached(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	c, err := provider.NewCached(countingProvider(&calls, true), 4)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = c.Route(context.Background(), geo.Coordinate{}, geo.Coordinate{Lat: 1})
		require.ErrorIs(t, err, provider.ErrNoRoute)
	}
	require.EqualValues(t, 3, calls.Load())
	require.Zero(t, c.Len())

	_, err = provider.NewCached(countingProvider(&calls, false), 0)
	require.Error(t, err)
}

func TestInstrumented(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	var calls atomic.Int64
	ok := provider.NewInstrumented(countingProvider(&calls, false), m)
	bad := provider.NewInstrumented(countingProvider(&calls, true), m)

	_, err := ok.Route(context.Background(), geo.Coordinate{}, geo.Coordinate{Lat: 1})
	require.NoError(t, err)
	_, err = ok.Route(context.Background(), geo.Coordinate{}, geo.Coordinate{Lat: 2})
	require.NoError(t, err)
	_, err = bad.Route(context.Background(), geo.Coordinate{}, geo.Coordinate{Lat: 1})
	require.True(t, errors.Is(err, provider.ErrNoRoute))

	require.Equal(t, 2.0, testutil.ToFloat64(m.ProviderCalls.WithLabelValues(metrics.ResultOK)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.ProviderCalls.WithLabelValues(metrics.ResultError)))

	// nil collectors pass through.
	plain := provider.NewInstrumented(countingProvider(&calls, false), nil)
	_, err = plain.Route(context.Background(), geo.Coordinate{}, geo.Coordinate{Lat: 1})
	require.NoError(t, err)
}
