// SPDX-License-Identifier: MIT

package matrixio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// Write serializes doc to w.
func Write(w io.Writer, doc Document) error {
	if err := doc.validate(); err != nil {
		return fmt.Errorf("Write: %w", err)
	}

	bw := bufio.NewWriter(w)
	bw.WriteString(strconv.Itoa(doc.Size))
	bw.WriteByte(separator)
	bw.WriteString(strconv.FormatBool(doc.Symmetric))
	bw.WriteByte('\n')

	writeSection(bw, doc, SectionDistances, doc.Distances.Row)
	writeSection(bw, doc, SectionTimes, doc.Times.Row)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Write: %w", err)
	}

	return nil
}

// writeSection writes the title and one line per row. Values use the shortest
// decimal that parses back to the same float64, never an exponent. bufio.Writer keeps the
// first error and reports it on Flush.
func writeSection(bw *bufio.Writer, doc Document, title string, row func(int) ([]float64, error)) {
	bw.WriteString(title)
	bw.WriteByte('\n')
	var buf []byte
	for i := 0; i < doc.Size; i++ {
		vals, _ := row(i) // shape checked by validate
		buf = strconv.AppendInt(buf[:0], int64(i), 10)
		for j := doc.firstCol(i); j < doc.Size; j++ {
			buf = append(buf, separator)
			buf = strconv.AppendFloat(buf, vals[j], 'f', -1, 64)
		}
		buf = append(buf, '\n')
		bw.Write(buf)
	}
}

// WriteFile writes doc to path through a temporary file in the same
// directory, renamed into place once complete.
func WriteFile(path string, doc Document) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = Write(tmp, doc); err != nil {
		return fmt.Errorf("WriteFile %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("WriteFile %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("WriteFile %s: %w", path, err)
	}

	return nil
}
