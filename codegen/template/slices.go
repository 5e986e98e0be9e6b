// Package template is a genny input: it is not imported directly, only
// processed by `go generate` (see codegen/doc.go) to produce a
// concrete-type sort function per ValueType substitution.
package template

import (
	"github.com/cheekybits/genny/generic"

	"github.com/go-timsort/timsort"
)

// ValueType is substituted by genny with a concrete type name.
type ValueType generic.Type

// ValueTypeLess is the comparator signature the generated ValueTypeSort
// expects, matching timsort.Sort's less func(a, b T) bool.
type ValueTypeLess func(a, b ValueType) bool

// ValueTypeSort sorts a in place with less, using the TimSort engine in
// package timsort. It is a thin, monomorphized adapter generated for
// callers who want a concrete-type signature rather than timsort.Sort[T]'s
// type parameter.
func ValueTypeSort(a []ValueType, less ValueTypeLess) error {
	return timsort.Sort(a, 0, len(a), less)
}
