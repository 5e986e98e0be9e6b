package timsort

// countRunAndMakeAscending identifies the maximal run starting at lo that is
// already sorted, either ascending or strictly descending. In the latter
// case the run is reversed in place so it becomes ascending; descent must be
// strict for the reversal to preserve stability (a non-strict descending run
// would reorder equal elements). It returns the run's length, which is
// always at least 1.
func countRunAndMakeAscending[T any](a []T, lo, hi int, less func(a, b T) bool) int {
	runHi := lo + 1
	if runHi == hi {
		return 1
	}
	if less(a[runHi], a[lo]) {
		runHi++
		for runHi < hi && less(a[runHi], a[runHi-1]) {
			runHi++
		}
		reverseRange(a, lo, runHi)
	} else {
		for runHi < hi && !less(a[runHi], a[runHi-1]) {
			runHi++
		}
	}
	return runHi - lo
}

// reverseRange reverses a[lo:hi] in place.
func reverseRange[T any](a []T, lo, hi int) {
	hi--
	for lo < hi {
		a[lo], a[hi] = a[hi], a[lo]
		lo++
		hi--
	}
}
