package timsort

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortOrdered(t *testing.T) {
	a := []string{"pear", "apple", "cherry", "banana"}
	require.NoError(t, SortOrdered(a))
	assert.Equal(t, []string{"apple", "banana", "cherry", "pear"}, a)
}

func TestSortOrderedRange(t *testing.T) {
	a := []int{9, 5, 4, 3, 8}
	require.NoError(t, SortOrderedRange(a, 1, 4))
	assert.Equal(t, []int{9, 3, 4, 5, 8}, a)
}

func TestLessOrdered(t *testing.T) {
	assert.True(t, lessOrdered(1, 2))
	assert.False(t, lessOrdered(2, 2))
	assert.False(t, lessOrdered(2, 1))
}
