package seqkit

import "go.llib.dev/frameless/pkg/errorkit"

type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip pairs up the values of a and b.
// It is exhausted as soon as either of them is exhausted.
// b is not pulled when a has no more values.
func Zip[A, B any](a Sequence[A], b Sequence[B]) *ZipSeq[A, B] {
	mustSource("seqkit.Zip", a)
	mustSource("seqkit.Zip", b)
	return &ZipSeq[A, B]{a: a, b: b}
}

type ZipSeq[A, B any] struct {
	a    Sequence[A]
	b    Sequence[B]
	done bool
}

func (z *ZipSeq[A, B]) Next() (Pair[A, B], bool) {
	if z.done {
		return Pair[A, B]{}, false
	}
	va, ok := z.a.Next()
	if !ok {
		z.done = true
		return Pair[A, B]{}, false
	}
	vb, ok := z.b.Next()
	if !ok {
		z.done = true
		return Pair[A, B]{}, false
	}
	return Pair[A, B]{First: va, Second: vb}, true
}

func (z *ZipSeq[A, B]) Err() error {
	return errorkit.Merge(Err(z.a), Err(z.b))
}
