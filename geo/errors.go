// SPDX-License-Identifier: MIT

package geo

import "errors"

// Sentinel errors returned by the coordinate reader and NewTable.
// Reader errors are wrapped with the 1-based line number; match with errors.Is.
var (
	// ErrEmpty indicates a coordinate file without any node line.
	ErrEmpty = errors.New("geo: no coordinates")

	// ErrMalformedLine indicates a line that is not "index;lat;lon" with
	// numeric fields.
	ErrMalformedLine = errors.New("geo: malformed coordinate line")

	// ErrIndexOutOfRange indicates an index outside [0, size).
	ErrIndexOutOfRange = errors.New("geo: node index out of range")

	// ErrDuplicateIndex indicates the same index listed twice.
	ErrDuplicateIndex = errors.New("geo: duplicate node index")
)
