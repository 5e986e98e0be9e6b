package timsort

// Option configures a single call to Sort or SortOrdered.
type Option[T any] func(*config[T])

type config[T any] struct {
	buf     []T
	bufBase int
	bufLen  int
	hasBuf  bool
}

// WithScratch supplies caller-owned scratch space for the merger instead of
// letting the sort allocate its own. It is used only if it is large enough
// (bufLen >= min(len(seq)/2, 256) and bufBase+bufLen <= len(buf)); otherwise
// the sort silently falls back to an internally allocated buffer. The size
// check is made against the length of the whole slice, not hi-lo, so a
// buffer sized for a short sub-range of a long slice is not used.
func WithScratch[T any](buf []T, base, length int) Option[T] {
	return func(c *config[T]) {
		c.buf = buf
		c.bufBase = base
		c.bufLen = length
		c.hasBuf = true
	}
}

func buildConfig[T any](opts []Option[T]) config[T] {
	var c config[T]
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// usable reports whether the supplied external buffer may serve as the
// initial scratch for sorting a slice of length n: bufLen >= min(n/2, 256)
// and bufBase+bufLen <= len(buf).
func (c config[T]) usable(n int) bool {
	if !c.hasBuf {
		return false
	}
	want := n / 2
	if want > 256 {
		want = 256
	}
	if c.bufLen < want {
		return false
	}
	return c.bufBase+c.bufLen <= len(c.buf)
}
