// SPDX-License-Identifier: MIT

package generator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func draws(parent int64, chunk int) []int64 {
	r := chunkRNG(parent, chunk)
	out := make([]int64, 8)
	for i := range out {
		out[i] = r.Int63()
	}
	return out
}

func TestChunkRNG_Deterministic(t *testing.T) {
	require.Equal(t, draws(7, 3), draws(7, 3))
}

func TestChunkRNG_DistinctStreams(t *testing.T) {
	require.NotEqual(t, draws(7, 0), draws(7, 1))
	require.NotEqual(t, draws(7, 0), draws(8, 0))
}

func TestParentSeed(t *testing.T) {
	require.Equal(t, zeroSeedParent, newConfig().parentSeed())
	require.Equal(t, zeroSeedParent, newConfig(WithSeed(0)).parentSeed())
	require.Equal(t, int64(42), newConfig(WithSeed(42)).parentSeed())
}
