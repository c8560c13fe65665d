// SPDX-License-Identifier: MIT

// Package throughput times edge-list converters and reports memory throughput.
//
// Throughput = bytes scanned / elapsed seconds / 1024³, where bytes scanned is
// edges*vertices*matrix.ElemSize. Every variant is measured the same way so the
// sequential and parallel figures compare directly.
//
// Trials repeats a run, checks that every repetition returns an identical edge
// list, and summarises the timings with gonum/stat. Report renders a run as
// text or YAML; Log emits one zerolog event per variant.
package throughput
