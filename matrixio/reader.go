// SPDX-License-Identifier: MIT

package matrixio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/routematrix/matrix"
)

// lineReader yields trimmed lines with their 1-based numbers.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func (lr *lineReader) next() (string, bool) {
	if !lr.sc.Scan() {
		return "", false
	}
	lr.line++

	return strings.TrimSpace(lr.sc.Text()), true
}

// Read parses a matrix file. In symmetric files the lower triangle is filled
// from the upper one; the diagonal stays 0.
func Read(r io.Reader) (*Document, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	lr := &lineReader{sc: sc}

	doc, err := readHeader(lr)
	if err != nil {
		return nil, err
	}
	if doc.Distances, err = readSection(lr, doc, SectionDistances); err != nil {
		return nil, err
	}
	if doc.Times, err = readSection(lr, doc, SectionTimes); err != nil {
		return nil, err
	}
	for {
		s, ok := lr.next()
		if !ok {
			break
		}
		if s != "" {
			return nil, fmt.Errorf("Read: line %d: trailing content: %w", lr.line, ErrBadSection)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}

	return doc, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer f.Close()

	doc, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("ReadFile %s: %w", path, err)
	}

	return doc, nil
}

func readHeader(lr *lineReader) (*Document, error) {
	s, ok := lr.next()
	if !ok {
		return nil, fmt.Errorf("Read: empty input: %w", ErrBadHeader)
	}
	sizeStr, symStr, found := strings.Cut(s, string(separator))
	if !found {
		return nil, fmt.Errorf("Read: line %d: %q: %w", lr.line, s, ErrBadHeader)
	}
	size, err := strconv.Atoi(sizeStr)
	if err != nil || size < 1 {
		return nil, fmt.Errorf("Read: line %d: size %q: %w", lr.line, sizeStr, ErrBadHeader)
	}
	sym, err := strconv.ParseBool(symStr)
	if err != nil {
		return nil, fmt.Errorf("Read: line %d: symmetric flag %q: %w", lr.line, symStr, ErrBadHeader)
	}

	return &Document{Size: size, Symmetric: sym}, nil
}

func readSection(lr *lineReader, doc *Document, title string) (*matrix.Dense, error) {
	s, ok := lr.next()
	if !ok || s != title {
		return nil, fmt.Errorf("Read: line %d: want %q, got %q: %w", lr.line, title, s, ErrBadSection)
	}

	m, err := matrix.NewSquare(doc.Size)
	if err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	for i := 0; i < doc.Size; i++ {
		s, ok = lr.next()
		if !ok {
			return nil, fmt.Errorf("Read: %s: missing row %d: %w", title, i, ErrBadRow)
		}
		fields := strings.Split(s, string(separator))
		want := doc.Size - doc.firstCol(i) + 1
		if len(fields) != want {
			return nil, fmt.Errorf("Read: line %d: %d fields, want %d: %w", lr.line, len(fields), want, ErrBadRow)
		}
		if idx, err := strconv.Atoi(fields[0]); err != nil || idx != i {
			return nil, fmt.Errorf("Read: line %d: row index %q, want %d: %w", lr.line, fields[0], i, ErrBadRow)
		}
		for k, f := range fields[1:] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil || v < 0 {
				return nil, fmt.Errorf("Read: line %d: value %q: %w", lr.line, f, ErrBadRow)
			}
			j := doc.firstCol(i) + k
			if err = m.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("Read: line %d: %v: %w", lr.line, err, ErrBadRow)
			}
			if doc.Symmetric {
				_ = m.Set(j, i, v)
			}
		}
	}

	return m, nil
}
