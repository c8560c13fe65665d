// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"io"
	"strconv"
)

// dumpRule frames matrix and edge-list dumps.
const dumpRule = "==========================="

// Dump writes the matrix one edge row per line, cells separated by ", ".
// Intended for debugging small matrices; output grows as O(edges*vertices).
func (m *Incidence) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(dumpRule + "\nMatrix:\n")
	for e := 0; e < m.edges; e++ {
		for _, mark := range m.Row(e) {
			bw.WriteString(strconv.Itoa(int(mark)))
			bw.WriteString(", ")
		}
		bw.WriteByte('\n')
	}
	bw.WriteString("\n" + dumpRule + "\n")

	return bw.Flush()
}

// String implements fmt.Stringer with one bracketed row per edge.
func (m *Incidence) String() string {
	var b []byte
	for e := 0; e < m.edges; e++ {
		b = append(b, '[')
		for v, mark := range m.Row(e) {
			if v > 0 {
				b = append(b, ", "...)
			}
			b = strconv.AppendInt(b, int64(mark), 10)
		}
		b = append(b, "]\n"...)
	}

	return string(b)
}
