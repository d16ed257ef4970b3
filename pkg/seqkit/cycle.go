package seqkit

// Cycle yields the values of src, then repeats them from the first one, indefinitely.
//
// During the first pass the values are recorded as they are pulled from src,
// later passes replay the recording and src is no longer used.
// When src has no values at all, Cycle is exhausted on its first Next call.
func Cycle[T any](src Sequence[T]) *CycleSeq[T] {
	mustSource("seqkit.Cycle", src)
	return &CycleSeq[T]{src: src}
}

type CycleSeq[T any] struct {
	src    Sequence[T]
	saved  []T
	replay bool
	index  int

	done bool
	err  error
}

func (c *CycleSeq[T]) Next() (T, bool) {
	var zero T
	if c.done {
		return zero, false
	}
	if !c.replay {
		v, ok := c.src.Next()
		if ok {
			c.saved = append(c.saved, v)
			return v, true
		}
		c.err = Err(c.src)
		if c.err != nil || len(c.saved) == 0 {
			c.done = true
			return zero, false
		}
		c.replay = true
		c.src = nil
	}
	v := c.saved[c.index]
	c.index = (c.index + 1) % len(c.saved)
	return v, true
}

func (c *CycleSeq[T]) Err() error { return c.err }
