// SPDX-License-Identifier: MIT

// Package geo holds the coordinate table: every node's latitude/longitude and
// its canonical "same location" id.
package geo

import (
	"fmt"
	"math"
)

// LocationEpsilon is the per-axis tolerance (degrees) under which two
// coordinates are treated as the same location.
const LocationEpsilon = 1e-6

// Coordinate is a WGS84 latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// SameLocation reports whether a and b differ by less than LocationEpsilon
// on both axes.
func SameLocation(a, b Coordinate) bool {
	return math.Abs(a.Lat-b.Lat) < LocationEpsilon && math.Abs(a.Lon-b.Lon) < LocationEpsilon
}

// Quantize snaps c onto the LocationEpsilon grid. Used to build cache keys;
// two coordinates within the tolerance usually, not always, share a cell.
func (c Coordinate) Quantize() (lat, lon int64) {
	return int64(math.Round(c.Lat / LocationEpsilon)), int64(math.Round(c.Lon / LocationEpsilon))
}

// String renders "lat,lon" with full precision.
func (c Coordinate) String() string {
	return fmt.Sprintf("%g,%g", c.Lat, c.Lon)
}
