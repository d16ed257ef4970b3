// Package seqkit provides pull based lazy sequences.
//
// # Summary
//
// A Sequence produces its values one at a time, and only when the consumer asks for the next one.
// Nothing is computed ahead of time, which makes it possible to describe unbounded streams,
// like a counter or the Fibonacci numbers, and to compose them with adapters such as Map or Filter
// without materialising the intermediate results.
//
// A Sequence only moves forward.
// Once a finite Sequence reports that it has no more values,
// it keeps reporting exhaustion on every later call.
//
// Exhaustion is not a failure.
// Sequences that can fail implement ErrSequence,
// and report the cause through Err after Next returned false.
//
// A Sequence is meant to be used by a single consumer.
// Use Synchronized when the same Sequence needs to be shared between goroutines.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
// https://en.wikipedia.org/wiki/Lazy_evaluation
package seqkit

// Sequence is a forward only producer of values.
type Sequence[T any] interface {
	// Next produces the next value.
	// When no value is left, Next returns the zero value and false.
	Next() (T, bool)
}

// ErrSequence is a Sequence whose production may fail.
// Err must be checked after Next returned false,
// a nil error means that the sequence is simply exhausted.
type ErrSequence[T any] interface {
	Sequence[T]
	Err() error
}

// Func is an adapter to allow the use of an ordinary function as a Sequence.
type Func[T any] func() (T, bool)

// Next implements the Sequence interface.
func (fn Func[T]) Next() (T, bool) { return fn() }

// Err returns the failure cause of the Sequence if it implements ErrSequence.
func Err[T any](s Sequence[T]) error {
	if s == nil {
		return nil
	}
	if es, ok := s.(ErrSequence[T]); ok {
		return es.Err()
	}
	return nil
}

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Number interface {
	Integer | ~float32 | ~float64
}
