// SPDX-License-Identifier: MIT

package edgelist_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/edgelist/edgelist"
	"github.com/stretchr/testify/require"
)

func TestNew_AllUnset(t *testing.T) {
	t.Parallel()

	l := edgelist.New(3)
	require.Equal(t, 3, l.Len())
	for _, v := range l.Flat() {
		require.Equal(t, edgelist.Unset, v)
	}
	require.Equal(t, 0, edgelist.New(-2).Len())
}

func TestPair_Equivalent(t *testing.T) {
	t.Parallel()

	p := edgelist.Pair{A: 1, B: 3}
	require.True(t, p.Equivalent(edgelist.Pair{A: 1, B: 3}))
	require.True(t, p.Equivalent(edgelist.Pair{A: 3, B: 1}))
	require.False(t, p.Equivalent(edgelist.Pair{A: 1, B: 2}))
	require.False(t, p.Equivalent(edgelist.Pair{A: 3, B: 3}))
	require.Equal(t, "[1, 3]", p.String())
}

func TestEdgeList_Equal(t *testing.T) {
	t.Parallel()

	a := pairs(1, 3, 0, 2)
	require.True(t, a.Equal(pairs(1, 3, 0, 2)))
	require.False(t, a.Equal(pairs(3, 1, 0, 2)))
	require.False(t, a.Equal(pairs(1, 3)))
}

func TestEdgeList_Dump(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, pairs(1, 3, 0, 2).Dump(&buf))
	want := "===========================\nEdges:\n" +
		"[ 1, 3 ] \n" +
		"[ 0, 2 ] \n" +
		"===========================\n"
	require.Equal(t, want, buf.String())
}
