package seqkit

// Range returns a bounded counter that yields the values from start up to, but not including, stop.
// When stop is not greater than start, the sequence is empty.
func Range[N Integer](start, stop N) *RangeSeq[N] {
	return &RangeSeq[N]{current: start - 1, stop: stop}
}

// RangeSeq is a two state machine: active until current reaches stop, then exhausted for good.
// current holds the last produced value, and it is incremented before each comparison.
type RangeSeq[N Integer] struct {
	current   N
	stop      N
	exhausted bool
}

func (r *RangeSeq[N]) Next() (N, bool) {
	if r.exhausted {
		return 0, false
	}
	r.current++
	if r.current < r.stop {
		return r.current, true
	}
	r.exhausted = true
	return 0, false
}

// Count returns an unbounded counter which starts at start and advances by step.
// It never exhausts.
//
// Overflow follows Go's arithmetic for N:
// integer types wrap around, floating point types reach ±Inf.
func Count[N Number](start, step N) *CountSeq[N] {
	return &CountSeq[N]{next: start, step: step}
}

type CountSeq[N Number] struct {
	next N
	step N
}

func (c *CountSeq[N]) Next() (N, bool) {
	v := c.next
	c.next += c.step
	return v, true
}
