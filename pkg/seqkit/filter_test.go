package seqkit_test

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"github.com/lessonkit/lazyseq/pkg/seqkit"
)

func isEven(n int) bool { return n%2 == 0 }

func TestFilter(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("only matching values are yielded", func(t *testcase.T) {
		seq := seqkit.Filter[int](seqkit.Range(0, 10), isEven)
		assert.Equal(t, []int{0, 2, 4, 6, 8}, seqkit.Collect[int](seq))
		_, ok := seq.Next()
		assert.False(t, ok)
	})

	s.Test("exhaustion of the source propagates when nothing matches", func(t *testcase.T) {
		src := &SpySeq[int]{Values: []int{1, 3, 5}}
		seq := seqkit.Filter[int](src, isEven)
		_, ok := seq.Next()
		assert.False(t, ok)
		assert.Equal(t, 4, src.Pulls)

		_, ok = seq.Next()
		assert.False(t, ok)
		assert.Equal(t, 4, src.Pulls, assert.Message("the source is not pulled after exhaustion"))
	})

	s.Test("infinite source", func(t *testcase.T) {
		multipleOf7 := seqkit.Filter[int](seqkit.Count(1, 1), func(n int) bool { return n%7 == 0 })
		assert.Equal(t, []int{7, 14, 21}, seqkit.Take[int](multipleOf7, 3))
	})

	s.Test("nil arguments", func(t *testcase.T) {
		got := assert.Panic(t, func() { seqkit.Filter[int](nil, isEven) })
		assert.ErrorIs(t, seqkit.ErrNilSource, got.(error))

		got = assert.Panic(t, func() { seqkit.Filter[int](seqkit.Range(0, 1), nil) })
		assert.ErrorIs(t, seqkit.ErrNilFunc, got.(error))
	})
}

func TestFilterErr(t *testing.T) {
	s := testcase.NewSpec(t)

	src := testcase.Let(s, func(t *testcase.T) *SpySeq[int] {
		return &SpySeq[int]{Values: []int{1, 2, 3, 4}}
	})
	expErr := testcase.Let(s, func(t *testcase.T) error { return t.Random.Error() })
	subject := testcase.Let(s, func(t *testcase.T) *seqkit.FilterSeq[int] {
		return seqkit.FilterErr[int](src.Get(t), func(n int) (bool, error) {
			if n == 3 {
				return false, expErr.Get(t)
			}
			return isEven(n), nil
		})
	})

	s.Then("values are filtered until the predicate fails", func(t *testcase.T) {
		vs, err := seqkit.CollectErr[int](subject.Get(t))
		assert.Equal(t, []int{2}, vs)
		assert.Equal(t, expErr.Get(t), err)
	})

	s.Then("the source is not pulled after the failure", func(t *testcase.T) {
		seqkit.Collect[int](subject.Get(t))
		_, ok := subject.Get(t).Next()
		assert.False(t, ok)
		assert.Equal(t, 3, src.Get(t).Pulls)
	})

	s.When("the source fails", func(s *testcase.Spec) {
		srcErr := testcase.Let(s, func(t *testcase.T) error { return t.Random.Error() })
		src.Let(s, func(t *testcase.T) *SpySeq[int] {
			return &SpySeq[int]{Values: []int{2}, Error: srcErr.Get(t)}
		})

		s.Then("the failure is forwarded", func(t *testcase.T) {
			vs, err := seqkit.CollectErr[int](subject.Get(t))
			assert.Equal(t, []int{2}, vs)
			assert.ErrorIs(t, srcErr.Get(t), err)
		})
	})
}
