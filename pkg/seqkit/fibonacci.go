package seqkit

import "math/big"

// Fibonacci returns the infinite sequence of Fibonacci numbers: 1, 1, 2, 3, 5, 8, ...
//
// Values never overflow, they are promoted to arbitrary precision integers.
// Each call returns a new *big.Int owned by the caller.
func Fibonacci() *FibonacciSeq {
	return &FibonacciSeq{}
}

// FibonacciSeq keeps the (current, next) pair, starting from (0, 1).
// Its zero value is ready to use.
type FibonacciSeq struct {
	current *big.Int
	next    *big.Int
}

func (f *FibonacciSeq) Next() (*big.Int, bool) {
	if f.next == nil {
		f.current, f.next = big.NewInt(0), big.NewInt(1)
	}
	sum := new(big.Int).Add(f.current, f.next)
	f.current, f.next = f.next, sum
	return new(big.Int).Set(f.current), true
}
