// SPDX-License-Identifier: MIT

package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/katalvlaran/routematrix/geo"
)

// Defaults for OSRM.
const (
	DefaultOSRMProfile = "driving"
	DefaultOSRMTimeout = 30 * time.Second

	osrmCodeOK      = "Ok"
	maxResponseSize = 1 << 20
)

// OSRMConfig configures an OSRM client.
type OSRMConfig struct {
	// BaseURL of the server, e.g. "http://localhost:5000".
	BaseURL string
	// Profile path segment; DefaultOSRMProfile when empty.
	Profile string
	// Timeout per request; DefaultOSRMTimeout when zero.
	Timeout time.Duration
	// RatePerSecond limits requests across all workers; 0 disables limiting.
	RatePerSecond float64
	// Burst of the limiter; 1 when zero.
	Burst int
	// Client overrides the HTTP client (tests).
	Client *http.Client
}

// OSRM queries the /route/v1 service of an OSRM-compatible server.
type OSRM struct {
	base    string
	profile string
	client  *http.Client
	limiter *rate.Limiter
}

var _ Provider = (*OSRM)(nil)

// NewOSRM builds a client from cfg.
func NewOSRM(cfg OSRMConfig) (*OSRM, error) {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		return nil, fmt.Errorf("NewOSRM: empty base URL: %w", ErrUpstream)
	}
	o := &OSRM{
		base:    base,
		profile: cfg.Profile,
		client:  cfg.Client,
	}
	if o.profile == "" {
		o.profile = DefaultOSRMProfile
	}
	if o.client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultOSRMTimeout
		}
		o.client = &http.Client{Timeout: timeout}
	}
	if cfg.RatePerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		o.limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), burst)
	}

	return o, nil
}

// osrmResponse is the subset of the /route/v1 answer we read.
type osrmResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Distance float64 `json:"distance"` // metres
		Duration float64 `json:"duration"` // seconds
	} `json:"routes"`
}

// Route implements Provider: metres become km, seconds become minutes.
func (o *OSRM) Route(ctx context.Context, from, to geo.Coordinate) (Route, error) {
	if o.limiter != nil {
		if err := o.limiter.Wait(ctx); err != nil {
			return Route{}, fmt.Errorf("OSRM.Route: rate limiter: %w", err)
		}
	}

	url := o.routeURL(from, to)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Route{}, fmt.Errorf("OSRM.Route: %v: %w", err, ErrUpstream)
	}
	resp, err := o.client.Do(req)
	if err != nil {
		return Route{}, fmt.Errorf("OSRM.Route %s: %v: %w", url, err, ErrUpstream)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return Route{}, fmt.Errorf("OSRM.Route %s: read body: %v: %w", url, err, ErrUpstream)
	}

	var out osrmResponse
	if err = json.Unmarshal(body, &out); err != nil {
		if resp.StatusCode/100 != 2 {
			return Route{}, fmt.Errorf("OSRM.Route %s: status %d: %w", url, resp.StatusCode, ErrUpstream)
		}
		return Route{}, fmt.Errorf("OSRM.Route %s: decode: %v: %w", url, err, ErrUpstream)
	}
	switch {
	case out.Code == "NoRoute" || (out.Code == osrmCodeOK && len(out.Routes) == 0):
		return Route{}, fmt.Errorf("OSRM.Route %s -> %s: %w", from, to, ErrNoRoute)
	case out.Code != osrmCodeOK:
		return Route{}, fmt.Errorf("OSRM.Route %s: status %d code %q %s: %w",
			url, resp.StatusCode, out.Code, out.Message, ErrUpstream)
	}

	r := Route{
		DistanceKm:  out.Routes[0].Distance / 1000,
		TimeMinutes: out.Routes[0].Duration / 60,
	}
	if !r.valid() {
		return Route{}, fmt.Errorf("OSRM.Route %s: %+v: %w", url, r, ErrInvalidResult)
	}

	return r, nil
}

// routeURL builds {base}/route/v1/{profile}/{lon},{lat};{lon},{lat}?overview=false.
func (o *OSRM) routeURL(from, to geo.Coordinate) string {
	var b strings.Builder
	b.WriteString(o.base)
	b.WriteString("/route/v1/")
	b.WriteString(o.profile)
	b.WriteByte('/')
	writeLonLat(&b, from)
	b.WriteByte(';')
	writeLonLat(&b, to)
	b.WriteString("?overview=false&alternatives=false&steps=false")

	return b.String()
}

func writeLonLat(b *strings.Builder, c geo.Coordinate) {
	b.WriteString(strconv.FormatFloat(c.Lon, 'f', -1, 64))
	b.WriteByte(',')
	b.WriteString(strconv.FormatFloat(c.Lat, 'f', -1, 64))
}
