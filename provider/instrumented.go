// SPDX-License-Identifier: MIT

package provider

import (
	"context"
	"time"

	"github.com/katalvlaran/routematrix/geo"
	"github.com/katalvlaran/routematrix/metrics"
)

// Instrumented records every call of an inner provider into metrics.
type Instrumented struct {
	inner   Provider
	metrics *metrics.Collectors
	now     func() time.Time
}

var _ Provider = (*Instrumented)(nil)

// NewInstrumented wraps inner. A nil collectors value yields a pass-through.
func NewInstrumented(inner Provider, m *metrics.Collectors) *Instrumented {
	return &Instrumented{inner: inner, metrics: m, now: time.Now}
}

// Route implements Provider.
func (p *Instrumented) Route(ctx context.Context, from, to geo.Coordinate) (Route, error) {
	start := p.now()
	r, err := p.inner.Route(ctx, from, to)
	result := metrics.ResultOK
	if err != nil {
		result = metrics.ResultError
	}
	p.metrics.ObserveCall(result, p.now().Sub(start).Seconds())

	return r, err
}
