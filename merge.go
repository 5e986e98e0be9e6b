package timsort

import "fmt"

// sorter holds the state of a single top-level sort call: the slice being
// sorted, the comparator, the pending-run stack, the scratch buffer and the
// gallop threshold. It is created at entry and discarded on return; nothing
// about it is shared across calls.
type sorter[T any] struct {
	a    []T
	less func(a, b T) bool

	minGallop int
	tmp       []T

	stackSize int
	runBase   []int
	runLen    []int
}

func newSorter[T any](a []T, less func(a, b T) bool, cfg config[T]) *sorter[T] {
	s := &sorter[T]{
		a:         a,
		less:      less,
		minGallop: minGallopStart,
	}

	n := len(a)
	if cfg.usable(n) {
		s.tmp = cfg.buf[cfg.bufBase : cfg.bufBase+cfg.bufLen]
	} else {
		tmpSize := initialScratchLen
		if n < 2*tmpSize {
			tmpSize = n / 2
		}
		s.tmp = make([]T, tmpSize)
	}

	capacity := stackCapacity(n)
	s.runBase = make([]int, capacity)
	s.runLen = make([]int, capacity)
	return s
}

// ensureCapacity guarantees the scratch buffer has at least minCapacity
// slots, growing it to the next power of two (capped at len(a)/2, the
// longest run that could ever need to be copied) if necessary.
func (s *sorter[T]) ensureCapacity(minCapacity int) []T {
	if len(s.tmp) >= minCapacity {
		return s.tmp
	}

	newSize := minCapacity
	newSize |= newSize >> 1
	newSize |= newSize >> 2
	newSize |= newSize >> 4
	newSize |= newSize >> 8
	newSize |= newSize >> 16
	newSize |= newSize >> 32
	newSize++

	if newSize < 0 { // overflow
		newSize = minCapacity
	} else if ns := len(s.a) / 2; ns < newSize {
		newSize = ns
	}

	s.tmp = make([]T, newSize)
	return s.tmp
}

// mergeLo merges two adjacent runs where len1 <= len2, by copying run 1 (the
// shorter or equal-length run) into scratch and merging forward into a
// starting at base1.
func (s *sorter[T]) mergeLo(base1, len1, base2, len2 int) error {
	a := s.a
	tmp := s.ensureCapacity(len1)[:len1]
	copy(tmp, a[base1:base1+len1])

	cursor1 := 0
	cursor2 := base2
	dest := base1

	a[dest] = a[cursor2]
	dest++
	cursor2++
	len2--
	if len2 == 0 {
		copy(a[dest:dest+len1], tmp)
		return nil
	}
	if len1 == 1 {
		copy(a[dest:dest+len2], a[cursor2:cursor2+len2])
		a[dest+len2] = tmp[cursor1]
		return nil
	}

	less := s.less
	minGallop := s.minGallop

outer:
	for {
		count1, count2 := 0, 0

		for {
			if less(a[cursor2], tmp[cursor1]) {
				a[dest] = a[cursor2]
				dest++
				cursor2++
				count2++
				count1 = 0
				len2--
				if len2 == 0 {
					break outer
				}
			} else {
				a[dest] = tmp[cursor1]
				dest++
				cursor1++
				count1++
				count2 = 0
				len1--
				if len1 == 1 {
					break outer
				}
			}
			if (count1 | count2) >= minGallop {
				break
			}
		}

		for {
			count1 = gallopRight(a[cursor2], tmp, cursor1, len1, 0, less)
			if count1 != 0 {
				copy(a[dest:dest+count1], tmp[cursor1:cursor1+count1])
				dest += count1
				cursor1 += count1
				len1 -= count1
				if len1 <= 1 {
					break outer
				}
			}
			a[dest] = a[cursor2]
			dest++
			cursor2++
			len2--
			if len2 == 0 {
				break outer
			}

			count2 = gallopLeft(tmp[cursor1], a, cursor2, len2, 0, less)
			if count2 != 0 {
				copy(a[dest:dest+count2], a[cursor2:cursor2+count2])
				dest += count2
				cursor2 += count2
				len2 -= count2
				if len2 == 0 {
					break outer
				}
			}
			a[dest] = tmp[cursor1]
			dest++
			cursor1++
			len1--
			if len1 == 1 {
				break outer
			}
			minGallop--
			if count1 < minGallopThreshold && count2 < minGallopThreshold {
				break
			}
		}
		if minGallop < 0 {
			minGallop = 0
		}
		minGallop += 2 // penalize leaving galloping mode
	}

	if minGallop < 1 {
		minGallop = 1
	}
	s.minGallop = minGallop

	switch {
	case len1 == 1:
		copy(a[dest:dest+len2], a[cursor2:cursor2+len2])
		a[dest+len2] = tmp[cursor1]
	case len1 == 0:
		return fmt.Errorf("mergeLo: base1=%d len2 remaining=%d: %w", base1, len2, ErrComparatorViolation)
	default:
		copy(a[dest:dest+len1], tmp[cursor1:cursor1+len1])
	}
	return nil
}

// mergeHi is mergeLo's mirror image: used when len1 > len2, it copies run 2
// into scratch and merges backward into a ending at base2+len2-1.
func (s *sorter[T]) mergeHi(base1, len1, base2, len2 int) error {
	a := s.a
	tmp := s.ensureCapacity(len2)[:len2]
	copy(tmp, a[base2:base2+len2])

	cursor1 := base1 + len1 - 1
	cursor2 := len2 - 1
	dest := base2 + len2 - 1

	a[dest] = a[cursor1]
	dest--
	cursor1--
	len1--
	if len1 == 0 {
		dest -= len2 - 1
		copy(a[dest:dest+len2], tmp)
		return nil
	}
	if len2 == 1 {
		dest -= len1 - 1
		cursor1 -= len1 - 1
		copy(a[dest:dest+len1], a[cursor1:cursor1+len1])
		a[dest-1] = tmp[cursor2]
		return nil
	}

	less := s.less
	minGallop := s.minGallop

outer:
	for {
		count1, count2 := 0, 0

		for {
			if less(tmp[cursor2], a[cursor1]) {
				a[dest] = a[cursor1]
				dest--
				cursor1--
				count1++
				count2 = 0
				len1--
				if len1 == 0 {
					break outer
				}
			} else {
				a[dest] = tmp[cursor2]
				dest--
				cursor2--
				count2++
				count1 = 0
				len2--
				if len2 == 1 {
					break outer
				}
			}
			if (count1 | count2) >= minGallop {
				break
			}
		}

		for {
			gr := gallopRight(tmp[cursor2], a, base1, len1, len1-1, less)
			count1 = len1 - gr
			if count1 != 0 {
				dest -= count1
				cursor1 -= count1
				len1 -= count1
				copy(a[dest+1:dest+1+count1], a[cursor1+1:cursor1+1+count1])
				if len1 == 0 {
					break outer
				}
			}
			a[dest] = tmp[cursor2]
			dest--
			cursor2--
			len2--
			if len2 == 1 {
				break outer
			}

			gl := gallopLeft(a[cursor1], tmp, 0, len2, len2-1, less)
			count2 = len2 - gl
			if count2 != 0 {
				dest -= count2
				cursor2 -= count2
				len2 -= count2
				copy(a[dest+1:dest+1+count2], tmp[cursor2+1:cursor2+1+count2])
				if len2 <= 1 {
					break outer
				}
			}
			a[dest] = a[cursor1]
			dest--
			cursor1--
			len1--
			if len1 == 0 {
				break outer
			}
			minGallop--
			if count1 < minGallopThreshold && count2 < minGallopThreshold {
				break
			}
		}
		if minGallop < 0 {
			minGallop = 0
		}
		minGallop += 2
	}

	if minGallop < 1 {
		minGallop = 1
	}
	s.minGallop = minGallop

	switch {
	case len2 == 1:
		dest -= len1
		cursor1 -= len1
		copy(a[dest+1:dest+1+len1], a[cursor1+1:cursor1+1+len1])
		a[dest] = tmp[cursor2]
	case len2 == 0:
		return fmt.Errorf("mergeHi: base2=%d len1 remaining=%d: %w", base2, len1, ErrComparatorViolation)
	default:
		copy(a[dest-(len2-1):dest+1], tmp)
	}
	return nil
}
