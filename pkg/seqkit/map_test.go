package seqkit_test

import (
	"strconv"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"github.com/lessonkit/lazyseq/pkg/seqkit"
)

func ExampleMap() {
	squares := seqkit.Map[int](seqkit.Slice([]int{1, 2, 3, 4, 5}), func(n int) int {
		return n * n
	})
	_ = seqkit.Collect[int](squares) // 1, 4, 9, 16, 25
}

func TestMap(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("square", func(t *testcase.T) {
		seq := seqkit.Map[int](seqkit.Slice([]int{1, 2, 3, 4, 5}), func(n int) int { return n * n })
		assert.Equal(t, []int{1, 4, 9, 16, 25}, seqkit.Take[int](seq, 5))
		_, ok := seq.Next()
		assert.False(t, ok)
		_, ok = seq.Next()
		assert.False(t, ok)
		assert.NoError(t, seq.Err())
	})

	s.Test("the value type can change", func(t *testcase.T) {
		seq := seqkit.Map[string](seqkit.Range(1, 4), strconv.Itoa)
		assert.Equal(t, []string{"1", "2", "3"}, seqkit.Collect[string](seq))
	})

	s.Test("exactly one source value is pulled per call", func(t *testcase.T) {
		src := &SpySeq[int]{Values: []int{1, 2, 3}}
		seq := seqkit.Map[int](src, func(n int) int { return n })
		seq.Next()
		seq.Next()
		assert.Equal(t, 2, src.Pulls)
	})

	s.Test("works on an infinite source", func(t *testcase.T) {
		// x^2 + x - 2
		seq := seqkit.Map[int](seqkit.Count(0, 1), func(x int) int { return x*x + x - 2 })
		assert.Equal(t, []int{-2, 0, 4, 10, 18}, seqkit.Take[int](seq, 5))
	})

	s.Test("a panic in the transform function propagates", func(t *testcase.T) {
		seq := seqkit.Map[int](seqkit.Slice([]int{1}), func(int) int { panic("boom") })
		assert.Panic(t, func() { seq.Next() })
	})

	s.Test("the failure of the source is forwarded", func(t *testcase.T) {
		expErr := t.Random.Error()
		seq := seqkit.Map[int](&SpySeq[int]{Values: []int{1}, Error: expErr}, func(n int) int { return n })
		vs, err := seqkit.CollectErr[int](seq)
		assert.Equal(t, []int{1}, vs)
		assert.ErrorIs(t, expErr, err)
	})

	s.Test("nil arguments", func(t *testcase.T) {
		got := assert.Panic(t, func() { seqkit.Map[int, int](nil, func(n int) int { return n }) })
		assert.ErrorIs(t, seqkit.ErrNilSource, got.(error))

		got = assert.Panic(t, func() { seqkit.Map[int](seqkit.Slice([]int{}), (func(int) int)(nil)) })
		assert.ErrorIs(t, seqkit.ErrNilFunc, got.(error))
	})

	s.Test("typed nil source fails at construction", func(t *testcase.T) {
		var src *seqkit.SliceSeq[int]
		got := assert.Panic(t, func() { seqkit.Map[int, int](src, func(n int) int { return n }) })
		assert.ErrorIs(t, seqkit.ErrNilSource, got.(error))

		got = assert.Panic(t, func() { seqkit.Map[int, int](seqkit.Func[int](nil), func(n int) int { return n }) })
		assert.ErrorIs(t, seqkit.ErrNilSource, got.(error))
	})
}

func TestMapErr(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		src = testcase.Let(s, func(t *testcase.T) *SpySeq[int] {
			return &SpySeq[int]{Values: []int{1, 2, 3, 4}}
		})
		failOn  = testcase.LetValue(s, 0)
		expErr  = testcase.Let(s, func(t *testcase.T) error { return t.Random.Error() })
		subject = testcase.Let(s, func(t *testcase.T) *seqkit.MapSeq[string, int] {
			return seqkit.MapErr[string](src.Get(t), func(n int) (string, error) {
				if n == failOn.Get(t) {
					return "", expErr.Get(t)
				}
				return strconv.Itoa(n), nil
			})
		})
	)

	s.When("the transform never fails", func(s *testcase.Spec) {
		s.Then("all values are transformed", func(t *testcase.T) {
			vs, err := seqkit.CollectErr[string](subject.Get(t))
			assert.NoError(t, err)
			assert.Equal(t, []string{"1", "2", "3", "4"}, vs)
		})
	})

	s.When("the transform fails for an element", func(s *testcase.Spec) {
		failOn.LetValue(s, 2)

		s.Then("the values before the failure are produced", func(t *testcase.T) {
			v, ok := subject.Get(t).Next()
			assert.True(t, ok)
			assert.Equal(t, "1", v)
		})

		s.Then("the failure is reported unmodified", func(t *testcase.T) {
			vs, err := seqkit.CollectErr[string](subject.Get(t))
			assert.Equal(t, []string{"1"}, vs)
			assert.Equal(t, expErr.Get(t), err)
		})

		s.Then("no further source value is consumed", func(t *testcase.T) {
			seqkit.Collect[string](subject.Get(t))
			t.Random.Repeat(1, 3, func() {
				_, ok := subject.Get(t).Next()
				assert.False(t, ok)
			})
			assert.Equal(t, 2, src.Get(t).Pulls)
			assert.Equal(t, []int{3, 4}, src.Get(t).Values)
		})
	})
}
