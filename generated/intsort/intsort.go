//go:generate genny -in=../../codegen/template/slices.go -out=intsort.go gen "ValueType=int"

// Package intsort is a committed genny instantiation of codegen/template
// for int, demonstrating the concrete-type adapter over package timsort.
package intsort

import "github.com/go-timsort/timsort"

// IntLess is the comparator signature IntSort expects.
type IntLess func(a, b int) bool

// IntSort sorts a in place with less, using the TimSort engine in package
// timsort.
func IntSort(a []int, less IntLess) error {
	return timsort.Sort(a, 0, len(a), less)
}
