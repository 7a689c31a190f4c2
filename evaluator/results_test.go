// SPDX-License-Identifier: MIT

package evaluator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routematrix/evaluator"
	"github.com/katalvlaran/routematrix/matrix"
)

// Nodes 0,1 share a location and so do 2,4. Canonical ids: [0 0 2 3 2].
func dupTable(t *testing.T) [][2]float64 {
	t.Helper()

	return [][2]float64{{0, 0}, {0, 0}, {1, 0}, {1, 1}, {1, 0}}
}

func at(t *testing.T, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

func TestResults_SavePropagatesToDuplicates(t *testing.T) {
	t.Parallel()

	tbl := MustTable(t, dupTable(t)...)
	r, err := evaluator.NewResults(tbl, false, nil)
	require.NoError(t, err)

	require.NoError(t, r.Save(0, 2, 5, 1.5))
	for _, c := range [][2]int{{0, 2}, {0, 4}, {1, 2}, {1, 4}} {
		require.Equal(t, 5.0, at(t, r.Distances(), c[0], c[1]), "cell %v", c)
		require.Equal(t, 1.5, at(t, r.Times(), c[0], c[1]), "cell %v", c)
		require.True(t, r.IsComputed(c[0], c[1]))
	}
	// Asymmetric: no transpose.
	require.Zero(t, at(t, r.Distances(), 2, 0))
	require.False(t, r.IsComputed(2, 0))
	require.False(t, r.IsComputed(0, 3))
}

func TestResults_SymmetricWritesTransposes(t *testing.T) {
	t.Parallel()

	tbl := MustTable(t, dupTable(t)...)
	r, err := evaluator.NewResults(tbl, true, nil)
	require.NoError(t, err)

	require.NoError(t, r.Save(2, 3, 7, 2))
	for _, c := range [][2]int{{2, 3}, {3, 2}, {4, 3}, {3, 4}} {
		require.Equal(t, 7.0, at(t, r.Distances(), c[0], c[1]), "cell %v", c)
		require.True(t, r.IsComputed(c[0], c[1]))
	}
	require.NoError(t, matrix.ValidateSymmetric(r.Distances(), 0))
	require.NoError(t, matrix.ValidateSymmetric(r.Times(), 0))
}

func TestResults_NonCanonicalSaveWritesOnlyItsCell(t *testing.T) {
	t.Parallel()

	tbl := MustTable(t, dupTable(t)...)
	r, err := evaluator.NewResults(tbl, false, nil)
	require.NoError(t, err)

	require.NoError(t, r.Save(1, 3, 4, 4))
	require.Equal(t, 4.0, at(t, r.Distances(), 1, 3))
	require.Zero(t, at(t, r.Distances(), 0, 3))
}

func TestResults_Uncomputed(t *testing.T) {
	t.Parallel()

	tbl := MustTable(t, dupTable(t)...)
	r, err := evaluator.NewResults(tbl, true, nil)
	require.NoError(t, err)

	// 10 pairs minus the two same-location pairs (0,1) and (2,4).
	require.Equal(t, 8, r.Uncomputed())
	require.NoError(t, r.Save(0, 2, 1, 1))
	require.Equal(t, 4, r.Uncomputed())
	require.NoError(t, r.Save(0, 3, 1, 1))
	require.NoError(t, r.Save(2, 3, 1, 1))
	require.Zero(t, r.Uncomputed())
}

func TestResults_SaveRejects(t *testing.T) {
	t.Parallel()

	tbl := MustTable(t, dupTable(t)...)
	r, err := evaluator.NewResults(tbl, true, nil)
	require.NoError(t, err)

	require.ErrorIs(t, r.Save(-1, 0, 1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, r.Save(0, 5, 1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, r.Save(0, 2, -1, 1), matrix.ErrNegativeEntry)
	require.ErrorIs(t, r.Save(0, 2, 1, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, r.Save(0, 2, math.Inf(1), 1), matrix.ErrNaNInf)
	require.Equal(t, 8, r.Uncomputed())

	_, err = evaluator.NewResults(nil, true, nil)
	require.ErrorIs(t, err, evaluator.ErrNilTable)
}
