package seqkit

// Filter returns a Sequence that only yields the values of src for which the predicate returns true.
//
// Next keeps pulling the source until it finds a matching value,
// so a single call is not guaranteed to finish quickly
// when the source is infinite and matches are rare.
func Filter[T any](src Sequence[T], predicate func(T) bool) *FilterSeq[T] {
	mustSource("seqkit.Filter", src)
	if predicate == nil {
		panic(ErrNilFunc.F("seqkit.Filter"))
	}
	return &FilterSeq[T]{
		src: src,
		predicate: func(v T) (bool, error) {
			return predicate(v), nil
		},
	}
}

// FilterErr is the failable version of Filter.
// A predicate error stops the sequence, and Err returns the error as is.
func FilterErr[T any](src Sequence[T], predicate func(T) (bool, error)) *FilterSeq[T] {
	mustSource("seqkit.FilterErr", src)
	if predicate == nil {
		panic(ErrNilFunc.F("seqkit.FilterErr"))
	}
	return &FilterSeq[T]{src: src, predicate: predicate}
}

type FilterSeq[T any] struct {
	src       Sequence[T]
	predicate func(T) (bool, error)

	done bool
	err  error
}

func (s *FilterSeq[T]) Next() (T, bool) {
	var zero T
	for !s.done {
		v, ok := s.src.Next()
		if !ok {
			s.done = true
			break
		}
		match, err := s.predicate(v)
		if err != nil {
			s.done = true
			s.err = err
			break
		}
		if match {
			return v, true
		}
	}
	return zero, false
}

func (s *FilterSeq[T]) Err() error {
	if s.err != nil {
		return s.err
	}
	return Err(s.src)
}
