package timsort

// binaryInsertSort sorts a[lo:hi], assuming a[lo:start] is already sorted.
// It uses a leftmost-insertion binary search, which is what makes the sort
// stable: pivot is inserted before the first existing element that is
// greater than it (after any elements equal to it), so equal elements keep
// their original relative order.
func binaryInsertSort[T any](a []T, lo, hi, start int, less func(a, b T) bool) {
	if start == lo {
		start++
	}
	for ; start < hi; start++ {
		pivot := a[start]
		left, right := lo, start
		for left < right {
			mid := left + (right-left)>>1
			if less(pivot, a[mid]) {
				right = mid
			} else {
				left = mid + 1
			}
		}
		n := start - left
		switch n {
		case 0:
		case 1:
			a[left+1] = a[left]
		case 2:
			a[left+2] = a[left+1]
			a[left+1] = a[left]
		default:
			copy(a[left+1:start+1], a[left:start])
		}
		a[left] = pivot
	}
}
