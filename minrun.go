package timsort

// minMerge is the minimum sized sequence that will be merged by the
// run-stack machinery; shorter sequences are lengthened by binaryInsertSort.
// If the entire input is shorter than this, no merges happen at all. This
// constant must stay a power of two: computeMinRun and stackCapacity below
// are both derived from it, and changing it requires re-deriving both.
const minMerge = 32

// minGallopStart is the initial value of a sort's minGallop counter.
const minGallopStart = 7

// minGallopThreshold is MIN_GALLOP: the merger enters/stays in galloping
// mode while either side has won minGallopThreshold times in a row.
const minGallopThreshold = 7

// initialScratchLen bounds the initial size of the scratch buffer; it grows
// on demand up to len(seq)/2.
const initialScratchLen = 256

// computeMinRun returns minRun in [minMerge/2, minMerge] such that n /
// minRun is close to, but no more than, a power of two. It folds off the
// low bits of n one at a time into r until n < minMerge, so the returned
// value is exactly n when n < minMerge.
func computeMinRun(n int) int {
	r := 0 // becomes 1 if any 1-bits are shifted off
	for n >= minMerge {
		r |= n & 1
		n >>= 1
	}
	return n + r
}

// stackCapacity bounds the number of pending runs the merge stack can ever
// hold for an input of length n, under the invariants maintained by
// mergeCollapse. These numbers are not ornamental — they are the worst-case
// depths for minMerge=32 under the stricter invariant mergeCollapse enforces
// (see the 2015 analysis cited there) and must be re-derived if minMerge
// changes.
func stackCapacity(n int) int {
	switch {
	case n < 120:
		return 5
	case n < 1542:
		return 10
	case n < 119151:
		return 24
	default:
		return 49
	}
}
