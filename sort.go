package timsort

import "fmt"

// Sort sorts seq[lo:hi] in place using less as the order relation, which
// must be a total pre-order: asymmetric and transitive. Elements that
// compare equal keep their original relative order. Sort returns
// ErrInvalidRange if 0 <= lo <= hi <= len(seq) does not hold, and
// ErrComparatorViolation if less is detectably not a valid total pre-order;
// it never panics on a legal range regardless of what less does.
//
// WithScratch supplies caller-owned merge scratch space; if it is missing or
// too small, Sort allocates its own.
func Sort[T any](seq []T, lo, hi int, less func(a, b T) bool, opts ...Option[T]) error {
	if lo < 0 || hi < lo || hi > len(seq) {
		return fmt.Errorf("timsort: lo=%d hi=%d len=%d: %w", lo, hi, len(seq), ErrInvalidRange)
	}

	n := hi - lo
	if n < 2 {
		return nil
	}

	if n < minMerge {
		runLen := countRunAndMakeAscending(seq, lo, hi, less)
		binaryInsertSort(seq, lo, hi, lo+runLen, less)
		return nil
	}

	cfg := buildConfig(opts)
	s := newSorter(seq, less, cfg)

	minRun := computeMinRun(n)
	remaining := n
	base := lo
	for {
		runLen := countRunAndMakeAscending(seq, base, hi, less)
		if runLen < minRun {
			force := minRun
			if remaining <= minRun {
				force = remaining
			}
			binaryInsertSort(seq, base, base+force, base+runLen, less)
			runLen = force
		}

		s.pushRun(base, runLen)
		if err := s.mergeCollapse(); err != nil {
			return err
		}

		base += runLen
		remaining -= runLen
		if remaining == 0 {
			break
		}
	}

	return s.mergeForceCollapse()
}

// SortSlice sorts the entire slice seq using less. It is equivalent to
// Sort(seq, 0, len(seq), less).
func SortSlice[T any](seq []T, less func(a, b T) bool, opts ...Option[T]) error {
	return Sort(seq, 0, len(seq), less, opts...)
}
