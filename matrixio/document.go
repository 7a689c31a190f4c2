// SPDX-License-Identifier: MIT

package matrixio

import (
	"fmt"

	"github.com/katalvlaran/routematrix/matrix"
)

// Section titles.
const (
	SectionDistances = "DISTANCES"
	SectionTimes     = "TRAVEL TIMES"

	separator = ';'
)

// Document is the content of one matrix file.
type Document struct {
	Size      int
	Symmetric bool
	Distances *matrix.Dense
	Times     *matrix.Dense
}

func (d Document) validate() error {
	for _, m := range []*matrix.Dense{d.Distances, d.Times} {
		if m == nil {
			return fmt.Errorf("%w: nil matrix", ErrShape)
		}
		if m.Rows() != d.Size || m.Cols() != d.Size {
			return fmt.Errorf("%w: %dx%d for size %d", ErrShape, m.Rows(), m.Cols(), d.Size)
		}
	}

	return nil
}

// firstCol returns the first column listed on row i.
func (d Document) firstCol(i int) int {
	if d.Symmetric {
		return i + 1
	}

	return 0
}
