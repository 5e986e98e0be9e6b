package timsort

// pushRun appends a pending run onto the merge stack.
func (s *sorter[T]) pushRun(base, length int) {
	s.runBase[s.stackSize] = base
	s.runLen[s.stackSize] = length
	s.stackSize++
}

// mergeCollapse restores the stack invariants after a push:
//
//	run[i-2].len > run[i-1].len + run[i].len
//	run[i-1].len > run[i].len
//
// for every interior index i. It keeps merging the top of the stack until
// both hold. The left-hand check uses the stricter len[k-1] <= len[k] +
// len[k+1] inequality (rather than just comparing adjacent pairs): a 2015
// analysis of the original algorithm showed the looser check insufficient to
// bound stack depth for very large inputs. Do not simplify this condition.
func (s *sorter[T]) mergeCollapse() error {
	for s.stackSize > 1 {
		n := s.stackSize - 2
		if (n > 0 && s.runLen[n-1] <= s.runLen[n]+s.runLen[n+1]) ||
			(n > 1 && s.runLen[n-2] <= s.runLen[n-1]+s.runLen[n]) {
			if s.runLen[n-1] < s.runLen[n+1] {
				n--
			}
			if err := s.mergeAt(n); err != nil {
				return err
			}
		} else if s.runLen[n] <= s.runLen[n+1] {
			if err := s.mergeAt(n); err != nil {
				return err
			}
		} else {
			break
		}
	}
	return nil
}

// mergeForceCollapse merges the remaining stack down to a single run,
// regardless of the size invariants. Called once, after run discovery is
// exhausted.
func (s *sorter[T]) mergeForceCollapse() error {
	for s.stackSize > 1 {
		n := s.stackSize - 2
		if n > 0 && s.runLen[n-1] < s.runLen[n+1] {
			n--
		}
		if err := s.mergeAt(n); err != nil {
			return err
		}
	}
	return nil
}

// mergeAt merges run[i] with run[i+1], where i must be second- or
// third-from-top. The combined run replaces run[i]; if i was third-from-top,
// the former top entry slides down to fill the gap.
//
// Before launching mergeLo/mergeHi it trims the merge range with galloping
// search: the leading elements of run i that are already <= the first
// element of run i+1 need not move, and the trailing elements of run i+1
// that are already >= the last element of run i need not move either.
func (s *sorter[T]) mergeAt(i int) error {
	base1, len1 := s.runBase[i], s.runLen[i]
	base2, len2 := s.runBase[i+1], s.runLen[i+1]

	s.runLen[i] = len1 + len2
	if i == s.stackSize-3 {
		s.runBase[i+1] = s.runBase[i+2]
		s.runLen[i+1] = s.runLen[i+2]
	}
	s.stackSize--

	k := gallopRight(s.a[base2], s.a, base1, len1, 0, s.less)
	base1 += k
	len1 -= k
	if len1 == 0 {
		return nil
	}

	len2 = gallopLeft(s.a[base1+len1-1], s.a, base2, len2, len2-1, s.less)
	if len2 == 0 {
		return nil
	}

	if len1 <= len2 {
		return s.mergeLo(base1, len1, base2, len2)
	}
	return s.mergeHi(base1, len1, base2, len2)
}
