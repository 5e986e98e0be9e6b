// Package timsort provides an in-place, stable, adaptive merge sort over a
// slice of elements ordered by a user-supplied comparator.
//
// It is a close translation of the classical TimSort design: adaptive run
// detection, binary-insertion extension of short runs, a pending-run merge
// stack with size invariants, and exponential ("galloping") search for
// locality-friendly merging. It was derived from Java's TimSort (Josh
// Bloch), which in turn was based on Tim Peters' original implementation:
//
//	http://svn.python.org/projects/python/trunk/Objects/listsort.txt
//
// Sort takes an explicit comparator; SortOrdered specializes it to types
// with a natural order. Both run to completion on the calling goroutine: the
// sort owns the pending-run stack, the scratch buffer and the gallop
// threshold for the duration of a single call, and requires exclusive
// access to the slice being sorted for that duration.
//
// Callers who cannot use generics, or who want a monomorphized, codegen-time
// concrete-type API, can run `go generate` over codegen/template with
// cheekybits/genny; see codegen/doc.go and generated/intsort for a worked
// example.
package timsort
