package seqkit

import "sync"

// Synchronized allows you to convert any Sequence into one that is safe to use from concurrent access.
// Every value of src is handed out to exactly one caller.
func Synchronized[T any](src Sequence[T]) *SynchronizedSeq[T] {
	mustSource("seqkit.Synchronized", src)
	return &SynchronizedSeq[T]{src: src}
}

type SynchronizedSeq[T any] struct {
	src   Sequence[T]
	mutex sync.Mutex
}

func (s *SynchronizedSeq[T]) Next() (T, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.src.Next()
}

func (s *SynchronizedSeq[T]) Err() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return Err(s.src)
}
