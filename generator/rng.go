// SPDX-License-Identifier: MIT

package generator

import "math/rand"

// zeroSeedParent replaces a zero parent seed so WithSeed(0) stays reproducible.
const zeroSeedParent int64 = 1

// golden is the 64-bit golden-ratio increment of the SplitMix64 sequence.
const golden uint64 = 0x9e3779b97f4a7c15

// chunkRNG returns the private stream of one generation chunk.
// The stream depends only on (parent, chunk), so chunks may be filled in
// any order by any number of workers. math/rand.Rand is not goroutine-safe;
// each chunk must own its stream.
func chunkRNG(parent int64, chunk int) *rand.Rand {
	// SplitMix64 step keyed by the chunk number.
	z := uint64(parent) + golden*uint64(chunk+1)
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31

	return rand.New(rand.NewSource(int64(z)))
}
