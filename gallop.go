package timsort

// gallopLeft locates the leftmost position at which key can be inserted into
// the sorted range a[base:base+length] without violating order: the
// returned k satisfies a[base+k-1] < key <= a[base+k], so existing elements
// equal to key end up to the right of it. hint is the index (relative to
// base) to start probing from, and should be the likely insertion point.
func gallopLeft[T any](key T, a []T, base, length, hint int, less func(a, b T) bool) int {
	lastOfs, ofs := 0, 1
	if less(a[base+hint], key) {
		maxOfs := length - hint
		for ofs < maxOfs && less(a[base+hint+ofs], key) {
			lastOfs = ofs
			ofs = (ofs << 1) + 1
			if ofs <= 0 { // overflow
				ofs = maxOfs
			}
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs += hint
		ofs += hint
	} else {
		maxOfs := hint + 1
		for ofs < maxOfs && !less(a[base+hint-ofs], key) {
			lastOfs = ofs
			ofs = (ofs << 1) + 1
			if ofs <= 0 {
				ofs = maxOfs
			}
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs, ofs = hint-ofs, hint-lastOfs
	}
	lastOfs++
	for lastOfs < ofs {
		m := lastOfs + (ofs-lastOfs)/2
		if less(a[base+m], key) {
			lastOfs = m + 1
		} else {
			ofs = m
		}
	}
	return ofs
}

// gallopRight locates the rightmost position at which key can be inserted
// into the sorted range a[base:base+length]: the returned k satisfies
// a[base+k-1] <= key < a[base+k], so existing elements equal to key end up
// to the left of it.
func gallopRight[T any](key T, a []T, base, length, hint int, less func(a, b T) bool) int {
	ofs, lastOfs := 1, 0
	if less(key, a[base+hint]) {
		maxOfs := hint + 1
		for ofs < maxOfs && less(key, a[base+hint-ofs]) {
			lastOfs = ofs
			ofs = (ofs << 1) + 1
			if ofs <= 0 {
				ofs = maxOfs
			}
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs, ofs = hint-ofs, hint-lastOfs
	} else {
		maxOfs := length - hint
		for ofs < maxOfs && !less(key, a[base+hint+ofs]) {
			lastOfs = ofs
			ofs = (ofs << 1) + 1
			if ofs <= 0 {
				ofs = maxOfs
			}
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs += hint
		ofs += hint
	}
	lastOfs++
	for lastOfs < ofs {
		m := lastOfs + (ofs-lastOfs)/2
		if less(key, a[base+m]) {
			ofs = m
		} else {
			lastOfs = m + 1
		}
	}
	return ofs
}
