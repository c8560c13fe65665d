// SPDX-License-Identifier: MIT

package matrix_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/katalvlaran/edgelist/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewIncidence_Shape(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewIncidence(3, 5)
	require.NoError(t, err)
	require.Equal(t, 3, m.Edges())
	require.Equal(t, 5, m.Vertices())
	require.Equal(t, 15, m.Len())
	require.Equal(t, int64(15*matrix.ElemSize), m.SizeBytes())

	for e := 0; e < 3; e++ {
		require.Equal(t, 0, matrix.CountMarks(m, e))
	}
}

func TestNewIncidence_BadShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		edges, vertices int
		want            error
	}{
		{"ZeroEdges", 0, 4, matrix.ErrBadShape},
		{"ZeroVertices", 4, 0, matrix.ErrBadShape},
		{"Negative", -1, -1, matrix.ErrBadShape},
		{"Overflow", math.MaxInt, 2, matrix.ErrTooLarge},
		{"OverCellLimit", matrix.MaxCells, 2, matrix.ErrTooLarge},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := matrix.NewIncidence(tc.edges, tc.vertices)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, m)
		})
	}
}

func TestIncidence_SetAt(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewIncidence(2, 4)
	require.NoError(t, err)

	require.NoError(t, m.Mark(1, 3))
	v, err := m.At(1, 3)
	require.NoError(t, err)
	require.Equal(t, matrix.Marked, v)

	require.NoError(t, m.Set(1, 3, matrix.Unmarked))
	v, err = m.At(1, 3)
	require.NoError(t, err)
	require.Equal(t, matrix.Unmarked, v)

	require.ErrorIs(t, m.Set(0, 0, 2), matrix.ErrNonBinary)
	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Mark(0, 4), matrix.ErrOutOfRange)
	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestFromRows(t *testing.T) {
	t.Parallel()

	m, err := matrix.FromRows([][]int32{
		{0, 1, 0, 1},
		{1, 0, 1, 0},
	})
	require.NoError(t, err)
	require.Equal(t, 2, m.Edges())
	require.Equal(t, 4, m.Vertices())
	require.Equal(t, []int32{0, 1, 0, 1}, m.Row(0))
	require.Equal(t, []int32{1, 0, 1, 0}, m.Row(1))

	_, err = matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.FromRows([][]int32{{1, 1}, {1}})
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.FromRows([][]int32{{1, 5}})
	require.ErrorIs(t, err, matrix.ErrNonBinary)
}

func TestIncidence_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	m, err := matrix.FromRows([][]int32{{1, 1, 0}})
	require.NoError(t, err)
	cp := m.Clone()
	require.NoError(t, cp.Set(0, 0, matrix.Unmarked))

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, matrix.Marked, v)
}

func TestIncidence_Dump(t *testing.T) {
	t.Parallel()

	m, err := matrix.FromRows([][]int32{
		{0, 1, 0, 1},
		{1, 0, 1, 0},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, m.Dump(&buf))
	want := "===========================\nMatrix:\n" +
		"0, 1, 0, 1, \n" +
		"1, 0, 1, 0, \n" +
		"\n===========================\n"
	require.Equal(t, want, buf.String())

	require.Equal(t, "[0, 1, 0, 1]\n[1, 0, 1, 0]\n", m.String())
}
