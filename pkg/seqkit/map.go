package seqkit

// Map allows you to do additional transformation on the values of a Sequence.
// Every Next call pulls exactly one value from the source and returns its transformed form.
//
// A panic in the transform function is not recovered.
func Map[To, From any](src Sequence[From], transform func(From) To) *MapSeq[To, From] {
	mustSource("seqkit.Map", src)
	if transform == nil {
		panic(ErrNilFunc.F("seqkit.Map"))
	}
	return &MapSeq[To, From]{
		src: src,
		transform: func(v From) (To, error) {
			return transform(v), nil
		},
	}
}

// MapErr is the failable version of Map.
// When the transform function returns an error,
// the sequence stops without pulling further values from the source,
// and Err returns the error as is.
func MapErr[To, From any](src Sequence[From], transform func(From) (To, error)) *MapSeq[To, From] {
	mustSource("seqkit.MapErr", src)
	if transform == nil {
		panic(ErrNilFunc.F("seqkit.MapErr"))
	}
	return &MapSeq[To, From]{src: src, transform: transform}
}

type MapSeq[To, From any] struct {
	src       Sequence[From]
	transform func(From) (To, error)

	done bool
	err  error
}

func (s *MapSeq[To, From]) Next() (To, bool) {
	var zero To
	if s.done {
		return zero, false
	}
	v, ok := s.src.Next()
	if !ok {
		s.done = true
		return zero, false
	}
	out, err := s.transform(v)
	if err != nil {
		s.done = true
		s.err = err
		return zero, false
	}
	return out, true
}

func (s *MapSeq[To, From]) Err() error {
	if s.err != nil {
		return s.err
	}
	return Err(s.src)
}
