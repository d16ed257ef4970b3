package seqkit

// Slice returns a finite Sequence over the elements of vs.
//
// The backing slice is only read,
// so several Sequences created over the same slice advance independently from each other.
func Slice[T any](vs []T) *SliceSeq[T] {
	return &SliceSeq[T]{values: vs}
}

type SliceSeq[T any] struct {
	values []T
	index  int
}

func (s *SliceSeq[T]) Next() (T, bool) {
	if len(s.values) <= s.index {
		var zero T
		return zero, false
	}
	v := s.values[s.index]
	s.index++
	return v, true
}

// Empty sequence is used to represent a nil result with the Null object pattern.
func Empty[T any]() EmptySeq[T] { return EmptySeq[T]{} }

type EmptySeq[T any] struct{}

func (EmptySeq[T]) Next() (T, bool) {
	var zero T
	return zero, false
}

// Sticky makes the exhaustion of src final.
// Once src reported exhaustion, Sticky will not call it again.
// It is useful for wrapping a Func that might resume production after it returned false.
func Sticky[T any](src Sequence[T]) *StickySeq[T] {
	mustSource("seqkit.Sticky", src)
	return &StickySeq[T]{src: src}
}

type StickySeq[T any] struct {
	src  Sequence[T]
	done bool
}

func (s *StickySeq[T]) Next() (T, bool) {
	var zero T
	if s.done {
		return zero, false
	}
	v, ok := s.src.Next()
	if !ok {
		s.done = true
		return zero, false
	}
	return v, true
}

func (s *StickySeq[T]) Err() error { return Err(s.src) }
