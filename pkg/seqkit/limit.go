package seqkit

// Limit yields at most n values from src.
// It never pulls more than n values, so src can still be used afterwards.
func Limit[T any](src Sequence[T], n int) *LimitSeq[T] {
	mustSource("seqkit.Limit", src)
	if n < 0 {
		panic(ErrInvalidSize.F("seqkit.Limit: %d", n))
	}
	return &LimitSeq[T]{src: src, remaining: n}
}

type LimitSeq[T any] struct {
	src       Sequence[T]
	remaining int
}

func (l *LimitSeq[T]) Next() (T, bool) {
	var zero T
	if l.remaining <= 0 {
		return zero, false
	}
	v, ok := l.src.Next()
	if !ok {
		l.remaining = 0
		return zero, false
	}
	l.remaining--
	return v, true
}

func (l *LimitSeq[T]) Err() error { return Err(l.src) }
