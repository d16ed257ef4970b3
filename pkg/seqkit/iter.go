package seqkit

import (
	"iter"

	"go.llib.dev/frameless/pkg/iterkit"
)

// ToSeq exposes src as a range-over-func iterator.
// Ranging over the result advances src itself, so it can only be walked once.
func ToSeq[T any](src Sequence[T]) iterkit.SingleUseSeq[T] {
	mustSource("seqkit.ToSeq", src)
	return iterkit.FromPull(src.Next)
}

// ToErrSeq is like ToSeq, but it yields the failure cause of src as the last element.
func ToErrSeq[T any](src Sequence[T]) iterkit.SingleUseSeqE[T] {
	mustSource("seqkit.ToErrSeq", src)
	var done bool
	return iterkit.FromPullE(func() (T, error, bool) {
		var zero T
		if done {
			return zero, nil, false
		}
		if v, ok := src.Next(); ok {
			return v, nil, true
		}
		done = true
		if err := Err(src); err != nil {
			return zero, err, true
		}
		return zero, nil, false
	})
}

// FromSeq turns a range-over-func iterator into a Sequence.
// The returned stop function must be called when the Sequence is no longer needed,
// unless it was pulled until exhaustion.
func FromSeq[T any](i iter.Seq[T]) (Func[T], func()) {
	if i == nil {
		panic(ErrNilSource.F("seqkit.FromSeq"))
	}
	next, stop := iter.Pull(i)
	return Func[T](next), stop
}

// FromErrSeq turns an iterator of value and error pairs into an ErrSequence.
// The first non nil error stops the Sequence and is reported by Err.
func FromErrSeq[T any](i iterkit.SeqE[T]) (*PullErrSeq[T], func()) {
	if i == nil {
		panic(ErrNilSource.F("seqkit.FromErrSeq"))
	}
	next, stop := iter.Pull2(i)
	return &PullErrSeq[T]{next: next, stop: stop}, stop
}

type PullErrSeq[T any] struct {
	next func() (T, error, bool)
	stop func()

	done bool
	err  error
}

func (s *PullErrSeq[T]) Next() (T, bool) {
	var zero T
	if s.done {
		return zero, false
	}
	v, err, ok := s.next()
	if !ok {
		s.done = true
		return zero, false
	}
	if err != nil {
		s.done = true
		s.err = err
		s.stop()
		return zero, false
	}
	return v, true
}

func (s *PullErrSeq[T]) Err() error { return s.err }
