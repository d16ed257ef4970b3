package seqkit

import (
	"slices"

	"go.llib.dev/frameless/pkg/errorkit"
)

// Chain concatenates the given sequences.
// It yields every value of the first source until it is exhausted, then continues with the next one.
// Empty sources are simply passed over.
func Chain[T any](srcs ...Sequence[T]) *ChainSeq[T] {
	for i, src := range srcs {
		if isNil(src) {
			panic(ErrNilSource.F("seqkit.Chain: source #%d", i))
		}
	}
	return &ChainSeq[T]{sources: Slice(slices.Clone(srcs))}
}

// ChainFrom concatenates the sequences yielded by sources.
// The next source is only pulled after the current one is exhausted.
func ChainFrom[T any](sources Sequence[Sequence[T]]) *ChainSeq[T] {
	mustSource("seqkit.ChainFrom", sources)
	return &ChainSeq[T]{sources: sources}
}

type ChainSeq[T any] struct {
	sources Sequence[Sequence[T]]
	current Sequence[T]

	done bool
	err  error
}

func (c *ChainSeq[T]) Next() (T, bool) {
	var zero T
	for !c.done {
		if c.current == nil {
			src, ok := c.sources.Next()
			if !ok {
				c.done = true
				break
			}
			if isNil(src) {
				c.done = true
				c.err = ErrNilSource.F("seqkit.ChainFrom")
				break
			}
			c.current = src
		}
		v, ok := c.current.Next()
		if ok {
			return v, true
		}
		if err := Err(c.current); err != nil {
			c.done = true
			c.err = err
			break
		}
		c.current = nil
	}
	return zero, false
}

func (c *ChainSeq[T]) Err() error {
	return errorkit.Merge(c.err, Err(c.sources))
}
