package timsort

import "testing"

func TestComputeMinRun(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 1},
		{16, 16},
		{31, 31},
		{32, 16},
		{33, 17},
		{64, 16},
		{127, 32},
		{1000, 32},
		{1 << 20, 16},
	}
	for _, c := range cases {
		if got := computeMinRun(c.n); got != c.want {
			t.Errorf("computeMinRun(%d) = %d, want %d", c.n, got, c.want)
		}
		if c.n >= minMerge {
			if got := computeMinRun(c.n); got < minMerge/2 || got > minMerge {
				t.Errorf("computeMinRun(%d) = %d, out of [%d,%d]", c.n, got, minMerge/2, minMerge)
			}
		}
	}
}

func TestStackCapacity(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{0, 5},
		{119, 5},
		{120, 10},
		{1541, 10},
		{1542, 24},
		{119150, 24},
		{119151, 49},
		{10_000_000, 49},
	}
	for _, c := range cases {
		if got := stackCapacity(c.n); got != c.want {
			t.Errorf("stackCapacity(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}
