// SPDX-License-Identifier: MIT

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/katalvlaran/routematrix/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCollectors_Record(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	c := metrics.New(reg)

	c.ObserveCall(metrics.ResultOK, 0.2)
	c.ObserveCall(metrics.ResultOK, 0.1)
	c.ObserveCall(metrics.ResultError, 0.3)
	c.ObserveCall(metrics.ResultCache, 0)
	c.PairDone(0.5)
	c.ObserveClosure(metrics.MatrixDistance, 3, 7)
	c.SetUnresolved(4)

	require.Equal(t, 2.0, testutil.ToFloat64(c.ProviderCalls.WithLabelValues(metrics.ResultOK)))
	require.Equal(t, 1.0, testutil.ToFloat64(c.ProviderCalls.WithLabelValues(metrics.ResultError)))
	require.Equal(t, 1.0, testutil.ToFloat64(c.ProviderCalls.WithLabelValues(metrics.ResultCache)))
	require.Equal(t, 1.0, testutil.ToFloat64(c.PairsCompleted))
	require.Equal(t, 0.5, testutil.ToFloat64(c.Progress))
	require.Equal(t, 3.0, testutil.ToFloat64(c.ClosurePasses.WithLabelValues(metrics.MatrixDistance)))
	require.Equal(t, 7.0, testutil.ToFloat64(c.ClosureRelaxed.WithLabelValues(metrics.MatrixDistance)))
	require.Equal(t, 4.0, testutil.ToFloat64(c.Unresolved))
	require.Equal(t, 1, testutil.CollectAndCount(c.ProviderLatency))
}

func TestCollectors_NilIsNoop(t *testing.T) {
	t.Parallel()

	var c *metrics.Collectors
	require.NotPanics(t, func() {
		c.ObserveCall(metrics.ResultOK, 1)
		c.PairDone(1)
		c.ObserveClosure(metrics.MatrixTime, 1, 1)
		c.SetUnresolved(1)
	})
}

func TestHandler_ExposesCollectors(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	c := metrics.New(reg)
	c.PairDone(0.25)

	rec := httptest.NewRecorder()
	metrics.Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), "routematrix_progress_ratio 0.25"))
}
