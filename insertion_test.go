package timsort

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinaryInsertSortFromScratch(t *testing.T) {
	a := []int{5, 3, 1, 4, 2}
	binaryInsertSort(a, 0, len(a), 0, less)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, a)
}

func TestBinaryInsertSortWithSortedPrefix(t *testing.T) {
	a := []int{1, 3, 5, 2, 4}
	binaryInsertSort(a, 0, len(a), 3, less)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, a)
}

// TestBinaryInsertSortStable checks that equal elements keep their original
// relative order, per the leftmost-insertion rule.
func TestBinaryInsertSortStable(t *testing.T) {
	type tv struct {
		value int
		tag   byte
	}
	a := []tv{{2, 'a'}, {1, 'a'}, {2, 'b'}, {1, 'b'}}
	binaryInsertSort(a, 0, len(a), 1, func(x, y tv) bool { return x.value < y.value })
	want := []tv{{1, 'a'}, {1, 'b'}, {2, 'a'}, {2, 'b'}}
	assert.Equal(t, want, a)
}
