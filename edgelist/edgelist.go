// SPDX-License-Identifier: MIT
// Package edgelist: compact edge-list buffer.
//
// Layout:
//   - Flat []int32 of length 2*edges; slots 2i and 2i+1 hold the endpoints of edge i.
//   - Every slot starts at Unset, so an edge whose row had fewer than two
//     marks is visible as Unset instead of stale memory.

package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Unset marks an endpoint slot that no converter has written.
const Unset int32 = -1

// Pair holds the two endpoints of one edge in discovery order.
type Pair struct {
	A, B int32
}

// Equivalent reports whether p and q describe the same undirected edge:
// equal in order, or swapped.
func (p Pair) Equivalent(q Pair) bool {
	return (p.A == q.A && p.B == q.B) || (p.A == q.B && p.B == q.A)
}

// String renders the pair as "[A, B]".
func (p Pair) String() string {
	return fmt.Sprintf("[%d, %d]", p.A, p.B)
}

// EdgeList is an ordered sequence of vertex pairs, one per edge index.
type EdgeList struct {
	data []int32
}

// New allocates an edge list for the given number of edges with every slot Unset.
// Negative counts are treated as zero.
func New(edges int) EdgeList {
	if edges < 0 {
		edges = 0
	}
	data := make([]int32, 2*edges)
	for i := range data {
		data[i] = Unset
	}

	return EdgeList{data: data}
}

// FromPairs builds an edge list from literal pairs.
func FromPairs(pairs ...Pair) EdgeList {
	l := New(len(pairs))
	for i, p := range pairs {
		l.SetPair(i, p)
	}

	return l
}

// Len returns the number of edges.
func (l EdgeList) Len() int { return len(l.data) / 2 }

// Pair returns the endpoints of edge i. Panics when i is out of range.
func (l EdgeList) Pair(i int) Pair {
	return Pair{A: l.data[2*i], B: l.data[2*i+1]}
}

// SetPair overwrites the endpoints of edge i. Panics when i is out of range.
func (l EdgeList) SetPair(i int, p Pair) {
	l.data[2*i], l.data[2*i+1] = p.A, p.B
}

// Pairs returns a copy of all pairs in edge order.
func (l EdgeList) Pairs() []Pair {
	out := make([]Pair, l.Len())
	for i := range out {
		out[i] = l.Pair(i)
	}

	return out
}

// Flat returns the underlying 2*edges buffer. The slice aliases the list.
func (l EdgeList) Flat() []int32 { return l.data }

// slot returns the two-slot window for edge i, used by converter kernels.
func (l EdgeList) slot(i int) []int32 {
	return l.data[2*i : 2*i+2 : 2*i+2]
}

// Equal reports whether l and o hold identical pairs in identical order.
// Unlike CrossValidate it does not tolerate swapped endpoints.
func (l EdgeList) Equal(o EdgeList) bool {
	if len(l.data) != len(o.data) {
		return false
	}
	for i, v := range l.data {
		if o.data[i] != v {
			return false
		}
	}

	return true
}

// Dump writes one "[ a, b ] " line per edge between rule lines.
func (l EdgeList) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(dumpRule + "\nEdges:\n")
	for i := 0; i < l.Len(); i++ {
		p := l.Pair(i)
		bw.WriteString("[ ")
		bw.WriteString(strconv.Itoa(int(p.A)))
		bw.WriteString(", ")
		bw.WriteString(strconv.Itoa(int(p.B)))
		bw.WriteString(" ] \n")
	}
	bw.WriteString(dumpRule + "\n")

	return bw.Flush()
}

const dumpRule = "==========================="
