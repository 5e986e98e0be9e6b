package timsort

import (
	"reflect"
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestSortMatchesStdlib checks that the result is sorted and a permutation
// of the input, by comparing against the standard library's stable sort
// across randomly generated slices.
func TestSortMatchesStdlib(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("matches sort.Stable", prop.ForAll(func(input []int) bool {
		got := append([]int(nil), input...)
		want := append([]int(nil), input...)

		if err := SortSlice(got, less); err != nil {
			t.Logf("unexpected error: %v", err)
			return false
		}
		sort.Stable(sort.IntSlice(want))

		return reflect.DeepEqual(got, want)
	}, gen.SliceOf(gen.Int())))

	properties.TestingRun(t)
}

// TestIdempotence checks that sorting an already-sorted slice is a no-op.
func TestIdempotence(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("sorting twice equals sorting once", prop.ForAll(func(input []int) bool {
		once := append([]int(nil), input...)
		if err := SortSlice(once, less); err != nil {
			return false
		}
		twice := append([]int(nil), once...)
		if err := SortSlice(twice, less); err != nil {
			return false
		}
		return reflect.DeepEqual(once, twice)
	}, gen.SliceOf(gen.Int())))

	properties.TestingRun(t)
}

type taggedValue struct {
	value     int
	origIndex int
}

// TestStability checks that equal elements retain their original relative
// order.
func TestStability(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("equal-valued elements keep original order", prop.ForAll(func(values []int) bool {
		tagged := make([]taggedValue, len(values))
		for i, v := range values {
			tagged[i] = taggedValue{value: v, origIndex: i}
		}

		if err := SortSlice(tagged, func(a, b taggedValue) bool {
			return a.value < b.value
		}); err != nil {
			return false
		}

		lastByValue := map[int]int{}
		for _, tv := range tagged {
			if prevIdx, ok := lastByValue[tv.value]; ok && tv.origIndex < prevIdx {
				return false
			}
			lastByValue[tv.value] = tv.origIndex
		}
		return true
	}, gen.SliceOf(gen.IntRange(0, 20)))) // small range forces frequent duplicates

	properties.TestingRun(t)
}

// TestRangeConfinement checks that Sort(seq, lo, hi, ...) leaves seq[:lo]
// and seq[hi:] untouched.
func TestRangeConfinement(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("slice outside [lo,hi) is untouched", prop.ForAll(func(input []int, loFrac, hiFrac float64) bool {
		if len(input) == 0 {
			return true
		}
		lo := int(loFrac * float64(len(input)))
		hi := lo + int(hiFrac*float64(len(input)-lo))
		if hi > len(input) {
			hi = len(input)
		}
		if lo > hi {
			lo, hi = hi, lo
		}

		before := append([]int(nil), input...)
		after := append([]int(nil), input...)
		if err := Sort(after, lo, hi, less); err != nil {
			return false
		}

		for i := 0; i < lo; i++ {
			if after[i] != before[i] {
				return false
			}
		}
		for i := hi; i < len(input); i++ {
			if after[i] != before[i] {
				return false
			}
		}
		return true
	}, gen.SliceOf(gen.Int()), gen.Float64Range(0, 1), gen.Float64Range(0, 1)))

	properties.TestingRun(t)
}
