// SPDX-License-Identifier: MIT

package provider

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/routematrix/geo"
)

// routeKey identifies a directed coordinate pair on the LocationEpsilon grid.
type routeKey struct {
	fromLat, fromLon int64
	toLat, toLon     int64
}

func keyOf(from, to geo.Coordinate) routeKey {
	var k routeKey
	k.fromLat, k.fromLon = from.Quantize()
	k.toLat, k.toLon = to.Quantize()

	return k
}

// Cached memoizes successful answers of an inner provider in a bounded LRU.
// Keys are directional (A→B and B→A are distinct). Errors are not cached.
// Two workers missing on the same key concurrently both query the inner
// provider; the last answer wins.
type Cached struct {
	inner Provider
	cache *lru.Cache[routeKey, Route]
	onHit func()
}

var _ Provider = (*Cached)(nil)

// NewCached wraps inner with an LRU of the given size (> 0).
func NewCached(inner Provider, size int) (*Cached, error) {
	c, err := lru.New[routeKey, Route](size)
	if err != nil {
		return nil, fmt.Errorf("NewCached(%d): %w", size, err)
	}

	return &Cached{inner: inner, cache: c}, nil
}

// OnHit registers a callback invoked on every cache hit (metrics).
func (c *Cached) OnHit(f func()) *Cached {
	c.onHit = f

	return c
}

// Route implements Provider.
func (c *Cached) Route(ctx context.Context, from, to geo.Coordinate) (Route, error) {
	k := keyOf(from, to)
	if r, ok := c.cache.Get(k); ok {
		if c.onHit != nil {
			c.onHit()
		}
		return r, nil
	}

	r, err := c.inner.Route(ctx, from, to)
	if err != nil {
		return Route{}, err
	}
	c.cache.Add(k, r)

	return r, nil
}

// Len returns the number of cached answers.
func (c *Cached) Len() int { return c.cache.Len() }
