package timsort

import "errors"

// NOTE ON NAMING & WRAPPING
// -------------------------
// Every sentinel below is a package-level var so callers can match it with
// errors.Is. Do not return a sentinel with extra %w wrapping removed: wrap
// with fmt.Errorf("timsort: ...: %w", Err...) at the point of detection so
// the message carries the offending indices while errors.Is still matches.

var (
	// ErrInvalidRange is returned when lo/hi/len(seq) violate
	// 0 <= lo <= hi <= len(seq).
	ErrInvalidRange = errors.New("timsort: invalid range")

	// ErrComparatorViolation is returned when the merger detects that the
	// supplied comparator is not a valid total pre-order: specifically,
	// when a trimmed merge's left run is exhausted in mergeLo, or its
	// right run is exhausted in mergeHi, a state that is unreachable under
	// a well-behaved comparator. The sequence is left in an intermediate,
	// unsorted state; there is no rollback.
	ErrComparatorViolation = errors.New("timsort: comparison method violates its general contract")
)
