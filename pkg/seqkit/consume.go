package seqkit

import (
	"errors"

	"go.llib.dev/frameless/pkg/errorkit"
)

// Collect pulls all the remaining values of src into a slice.
// It never returns for an infinite sequence, combine it with Limit in that case.
func Collect[T any](src Sequence[T]) []T {
	mustSource("seqkit.Collect", src)
	var vs = make([]T, 0)
	for {
		v, ok := src.Next()
		if !ok {
			break
		}
		vs = append(vs, v)
	}
	return vs
}

// CollectErr is like Collect, but also returns the failure cause of src.
func CollectErr[T any](src Sequence[T]) ([]T, error) {
	vs := Collect(src)
	return vs, Err(src)
}

// Take pulls the next n values from src.
// The result is shorter than n when src is exhausted earlier.
func Take[T any](src Sequence[T], n int) []T {
	if n < 0 {
		panic(ErrInvalidSize.F("seqkit.Take: %d", n))
	}
	mustSource("seqkit.Take", src)
	var vs = make([]T, 0, n)
	for len(vs) < n {
		v, ok := src.Next()
		if !ok {
			break
		}
		vs = append(vs, v)
	}
	return vs
}

// Reduce folds the remaining values of src into a single value, starting from initial.
func Reduce[R, T any](src Sequence[T], initial R, fn func(R, T) R) R {
	mustSource("seqkit.Reduce", src)
	if fn == nil {
		panic(ErrNilFunc.F("seqkit.Reduce"))
	}
	var v = initial
	for {
		c, ok := src.Next()
		if !ok {
			break
		}
		v = fn(v, c)
	}
	return v
}

func Sum[N Number](src Sequence[N]) N {
	mustSource("seqkit.Sum", src)
	return Reduce(src, N(0), func(total, v N) N {
		return total + v
	})
}

// ForEach calls fn with every remaining value of src.
// Returning Break from fn stops the iteration without an error,
// any other error stops it and is returned.
// The failure cause of src is returned as well.
func ForEach[T any](src Sequence[T], fn func(T) error) error {
	mustSource("seqkit.ForEach", src)
	if fn == nil {
		panic(ErrNilFunc.F("seqkit.ForEach"))
	}
	for {
		v, ok := src.Next()
		if !ok {
			break
		}
		err := fn(v)
		if errors.Is(err, Break) {
			break
		}
		if err != nil {
			return errorkit.Merge(err, Err(src))
		}
	}
	return Err(src)
}
