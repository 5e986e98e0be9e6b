package timsort

import "cmp"

// SortOrdered sorts the entire slice seq in place using T's natural order.
// It is the "comparable self-ordering" counterpart to Sort: the comparator
// is implicit, supplied as the operator < rather than a callback.
func SortOrdered[T cmp.Ordered](seq []T, opts ...Option[T]) error {
	return Sort(seq, 0, len(seq), lessOrdered[T], opts...)
}

// SortOrderedRange sorts seq[lo:hi] in place using T's natural order.
func SortOrderedRange[T cmp.Ordered](seq []T, lo, hi int, opts ...Option[T]) error {
	return Sort(seq, lo, hi, lessOrdered[T], opts...)
}

func lessOrdered[T cmp.Ordered](a, b T) bool {
	return a < b
}
