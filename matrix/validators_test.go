// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/edgelist/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateGeneration_Valid(t *testing.T) {
	t.Parallel()

	m, err := matrix.FromRows([][]int32{
		{0, 1, 0, 1},
		{1, 0, 1, 0},
		{0, 0, 1, 1},
	})
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateGeneration(m))
}

func TestValidateGeneration_Nil(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateGeneration(nil), matrix.ErrNilMatrix)
}

// Columns with 0, 1 or 3 marks must be rejected with the first failing edge.
func TestValidateGeneration_FirstFailingEdge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		rows      [][]int32
		wantEdge  int
		wantMarks int
	}{
		{
			name:      "ZeroMarks",
			rows:      [][]int32{{1, 1, 0}, {0, 0, 0}, {1, 0, 1}},
			wantEdge:  1,
			wantMarks: 0,
		},
		{
			name:      "OneMark",
			rows:      [][]int32{{0, 1, 0}, {1, 1, 0}},
			wantEdge:  0,
			wantMarks: 1,
		},
		{
			name:      "ThreeMarks",
			rows:      [][]int32{{1, 1, 0}, {0, 1, 1}, {1, 1, 1}},
			wantEdge:  2,
			wantMarks: 3,
		},
		{
			name:      "FirstOfSeveral",
			rows:      [][]int32{{1, 1, 0}, {1, 1, 1}, {0, 0, 0}},
			wantEdge:  1,
			wantMarks: 3,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := matrix.FromRows(tc.rows)
			require.NoError(t, err)

			err = matrix.ValidateGeneration(m)
			require.ErrorIs(t, err, matrix.ErrStructure)

			var se *matrix.StructuralError
			require.True(t, errors.As(err, &se))
			require.Equal(t, tc.wantEdge, se.Edge)
			require.Equal(t, tc.wantMarks, se.Marks)
		})
	}
}
