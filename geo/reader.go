// SPDX-License-Identifier: MIT

package geo

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// FieldSeparator separates the columns of a coordinate file.
const FieldSeparator = ";"

type rawLine struct {
	no     int // 1-based line number in the file
	fields []string
}

// ReadTable parses a coordinate file: one header line (ignored) followed by
// one "index;lat;lon" line per node with '.' as decimal point. The table
// size is the number of data lines; indices must cover [0, size) exactly
// once. Blank lines are skipped.
func ReadTable(r io.Reader) (*Table, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		lines  []rawLine
		no     int
		header = true
	)
	for sc.Scan() {
		no++
		text := strings.TrimSpace(sc.Text())
		if header {
			header = false
			continue
		}
		if text == "" {
			continue
		}
		lines = append(lines, rawLine{no: no, fields: strings.Split(text, FieldSeparator)})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadTable: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("ReadTable: %w", ErrEmpty)
	}

	size := len(lines)
	coords := make([]Coordinate, size)
	seen := make([]bool, size)
	for _, l := range lines {
		idx, c, err := parseLine(l.fields)
		if err != nil {
			return nil, fmt.Errorf("ReadTable: line %d: %w", l.no, err)
		}
		if idx < 0 || idx >= size {
			return nil, fmt.Errorf("ReadTable: line %d: index %d not in [0,%d): %w", l.no, idx, size, ErrIndexOutOfRange)
		}
		if seen[idx] {
			return nil, fmt.Errorf("ReadTable: line %d: index %d: %w", l.no, idx, ErrDuplicateIndex)
		}
		seen[idx] = true
		coords[idx] = c
	}

	return NewTable(coords)
}

// LoadTable opens path and parses it with ReadTable.
func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadTable: %w", err)
	}
	defer f.Close()

	t, err := ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("LoadTable(%s): %w", path, err)
	}

	return t, nil
}

// parseLine converts "index;lat;lon" fields. Extra trailing fields are ignored.
func parseLine(fields []string) (int, Coordinate, error) {
	if len(fields) < 3 {
		return 0, Coordinate{}, fmt.Errorf("want index;lat;lon, got %d fields: %w", len(fields), ErrMalformedLine)
	}
	idx, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return 0, Coordinate{}, fmt.Errorf("index %q: %w", fields[0], ErrMalformedLine)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return 0, Coordinate{}, fmt.Errorf("lat %q: %w", fields[1], ErrMalformedLine)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil {
		return 0, Coordinate{}, fmt.Errorf("lon %q: %w", fields[2], ErrMalformedLine)
	}

	return idx, Coordinate{Lat: lat, Lon: lon}, nil
}
