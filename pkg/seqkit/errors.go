package seqkit

import (
	"reflect"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/reflectkit"
)

const (
	// ErrNilSource is the panic cause when a constructor or a consumer receives a nil source Sequence.
	ErrNilSource errorkit.Error = "nil source sequence"
	// ErrNilFunc is the panic cause when a constructor receives a nil transform or predicate.
	ErrNilFunc errorkit.Error = "nil function"
	// ErrInvalidSize is the panic cause when a negative element count is requested.
	ErrInvalidSize errorkit.Error = "invalid size"
)

// Break can be returned from a ForEach callback to stop the iteration without an error.
const Break errorkit.Error = `seqkit:break`

// isNil reports true for a nil interface and for an interface holding a nil pointer, func, map, chan or slice.
func isNil(v any) bool {
	return v == nil || reflectkit.IsNil(reflect.ValueOf(v))
}

func mustSource(name string, src any) {
	if isNil(src) {
		panic(ErrNilSource.F("%s", name))
	}
}
