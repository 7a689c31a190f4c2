// SPDX-License-Identifier: MIT

package geo

import "fmt"

// Table is the immutable coordinate table. Node i has coordinate At(i) and
// canonical id Canonical(i): the smallest index whose coordinate is the same
// location. Invariant: Canonical(i) <= i and IsSameLocation(i, Canonical(i)).
//
// A Table is safe for concurrent reads; it is never mutated after NewTable.
type Table struct {
	coords    []Coordinate
	canonical []int
	distinct  int
}

// NewTable copies coords and computes canonical ids.
//
// Complexity: O(n·d) time where d is the number of distinct locations,
// O(n) space.
func NewTable(coords []Coordinate) (*Table, error) {
	if len(coords) == 0 {
		return nil, ErrEmpty
	}

	t := &Table{
		coords:    make([]Coordinate, len(coords)),
		canonical: make([]int, len(coords)),
	}
	copy(t.coords, coords)

	// Representatives are kept in ascending index order, so the first match
	// is the smallest representative sharing the location. A node is only
	// compared against representatives: in a chain where 1 matches 0 and 2
	// but 2 does not match 0, node 2 becomes its own representative.
	reps := make([]int, 0, len(coords))
	for i, c := range t.coords {
		t.canonical[i] = i
		for _, r := range reps {
			if SameLocation(c, t.coords[r]) {
				t.canonical[i] = r
				break
			}
		}
		if t.canonical[i] == i {
			reps = append(reps, i)
		}
	}
	t.distinct = len(reps)

	return t, nil
}

// Size returns the number of nodes.
func (t *Table) Size() int { return len(t.coords) }

// DistinctLocations returns the number of canonical nodes.
func (t *Table) DistinctLocations() int { return t.distinct }

// At returns node i's coordinate. Panics when i is out of range, like a slice
// index: callers iterate over [0, Size()).
func (t *Table) At(i int) Coordinate { return t.coords[i] }

// Canonical returns the smallest node index sharing i's location.
func (t *Table) Canonical(i int) int { return t.canonical[i] }

// IsSameLocation reports whether nodes i and j share a location.
func (t *Table) IsSameLocation(i, j int) bool {
	return SameLocation(t.coords[i], t.coords[j])
}

// Duplicates returns every node (ascending, including i) whose canonical id
// equals Canonical(i).
func (t *Table) Duplicates(i int) []int {
	c := t.canonical[i]
	var out []int
	for k := c; k < len(t.canonical); k++ {
		if t.canonical[k] == c {
			out = append(out, k)
		}
	}

	return out
}

// Coordinates returns a copy of all coordinates in index order.
func (t *Table) Coordinates() []Coordinate {
	out := make([]Coordinate, len(t.coords))
	copy(out, t.coords)

	return out
}

// String summarises the table for logs.
func (t *Table) String() string {
	return fmt.Sprintf("geo.Table{size=%d, distinct=%d}", t.Size(), t.distinct)
}
