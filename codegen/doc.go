// Package codegen holds the genny template used to generate monomorphized,
// concrete-type sort functions for callers who want a reflection-free,
// pre-Go-generics-style API rather than timsort.Sort[T]'s type parameter.
//
// Generate a concrete instantiation with:
//
//	genny -in=codegen/template/slices.go -out=generated/mystructsort/mystructsort.go gen "ValueType=MyStruct"
//
// This emits:
//
//	MyStructLess func(a, b MyStruct) bool
//	MyStructSort(a []MyStruct, less MyStructLess) error
//
// which delegates to timsort.Sort. See generated/intsort for a worked,
// committed example with its own go:generate directive.
package codegen
