package qsort_test

import (
	"math/bits"
	"slices"
	"strings"
	"testing"

	"github.com/zeebo/assert"

	"github.com/histdb/qsort"
	"github.com/histdb/qsort/count"
	"github.com/histdb/qsort/gen"
	"github.com/histdb/qsort/verify"
)

func ints(x []int) qsort.T {
	return qsort.T{
		Less: func(i, j int) bool { return x[i] < x[j] },
		Swap: func(i, j int) { x[i], x[j] = x[j], x[i] },
	}
}

func TestScenarios(t *testing.T) {
	t.Run("Ints", func(t *testing.T) {
		x := []int{5, 3, 1, 4, 2}
		qsort.Sort(ints(x), len(x))
		assert.Equal(t, x, []int{1, 2, 3, 4, 5})
	})

	t.Run("Sorted", func(t *testing.T) {
		x := []int{1, 2, 3, 4}

		var c count.T
		qsort.Sort(c.Wrap(ints(x)), len(x))

		assert.Equal(t, x, []int{1, 2, 3, 4})
		assert.Equal(t, c, count.T{Compares: 3})
	})

	t.Run("Strings", func(t *testing.T) {
		x := []string{"banana", "apple", "cherry"}
		qsort.Less(x, func(i, j int) bool { return x[i] < x[j] })
		assert.Equal(t, x, []string{"apple", "banana", "cherry"})
	})

	t.Run("Empty", func(t *testing.T) {
		var c count.T
		qsort.Sort(c.Wrap(ints(nil)), 0)
		qsort.Sort(c.Wrap(ints([]int{7})), 1)
		assert.Equal(t, c, count.T{})
	})

	t.Run("Two", func(t *testing.T) {
		for _, x := range [][]int{{1, 2}, {2, 1}, {2, 2}} {
			var c count.T
			qsort.Sort(c.Wrap(ints(x)), len(x))
			assert.That(t, x[0] <= x[1])
			assert.Equal(t, c.Compares, uint64(1))
		}
	})
}

func TestPatterns(t *testing.T) {
	sizes := []int{0, 1, 2, 3, 5, 12, 13, 14, 15, 31, 100, 1023, 1 << 14}

	for _, p := range gen.Patterns() {
		t.Run(p.String(), func(t *testing.T) {
			src := gen.Seeded(42)

			for _, n := range sizes {
				x := gen.Ints(src, n, p)
				before := verify.Digest(x, verify.HashInt)

				qsort.Sort(ints(x), len(x))

				assert.NoError(t, verify.Sorted(len(x), func(i, j int) bool { return x[i] < x[j] }))
				assert.Equal(t, verify.Digest(x, verify.HashInt), before)
			}
		})
	}
}

func TestPermutation(t *testing.T) {
	// Sort positions by value and check that every position comes out
	// exactly once.
	for _, p := range gen.Patterns() {
		vals := gen.Ints(gen.Random(), 10000, p)
		idx := make([]int, len(vals))
		for i := range idx {
			idx[i] = i
		}

		qsort.Less(idx, func(i, j int) bool { return vals[idx[i]] < vals[idx[j]] })

		assert.NoError(t, verify.Permutation(idx))
		assert.NoError(t, verify.Sorted(len(idx), func(i, j int) bool {
			return vals[idx[i]] < vals[idx[j]]
		}))
	}
}

func TestIdempotent(t *testing.T) {
	t.Run("Small", func(t *testing.T) {
		for n := 0; n <= 13; n++ {
			x := gen.Ints(nil, n, gen.PatternSorted)

			var c count.T
			qsort.Sort(c.Wrap(ints(x)), len(x))

			assert.Equal(t, x, gen.Ints(nil, n, gen.PatternSorted))
			assert.Equal(t, c.Compares, uint64(max(n-1, 0)))
			assert.Equal(t, c.Swaps, uint64(0))
		}
	})

	t.Run("Large", func(t *testing.T) {
		for _, n := range []int{14, 100, 1 << 12, 1 << 16} {
			x := gen.Ints(nil, n, gen.PatternSorted)

			var c count.T
			qsort.Sort(c.Wrap(ints(x)), len(x))

			assert.Equal(t, x, gen.Ints(nil, n, gen.PatternSorted))
			assert.That(t, c.Compares <= uint64(2*n*bits.Len(uint(n))))
		}
	})
}

func TestStrings(t *testing.T) {
	x := gen.Strings(gen.Seeded(7), 20000)
	before := verify.Digest(x, verify.HashString)

	var c count.T
	qsort.Sort(c.Wrap(qsort.T{
		Less: func(i, j int) bool { return strings.Compare(x[i], x[j]) < 0 },
		Swap: func(i, j int) { x[i], x[j] = x[j], x[i] },
	}), len(x))

	assert.That(t, slices.IsSorted(x))
	assert.Equal(t, verify.Digest(x, verify.HashString), before)
	assert.That(t, c.Compares > 0)
}

func TestSlice(t *testing.T) {
	t.Run("Ints", func(t *testing.T) {
		for _, p := range gen.Patterns() {
			x := gen.Ints(gen.Random(), 5000, p)
			exp := slices.Clone(x)
			slices.Sort(exp)

			qsort.Slice(x)
			assert.Equal(t, x, exp)
		}
	})

	t.Run("Floats", func(t *testing.T) {
		x := []float64{3, 1, 2, -1, 0.5}
		qsort.Slice(x)
		assert.Equal(t, x, []float64{-1, 0.5, 1, 2, 3})
	})

	t.Run("Func", func(t *testing.T) {
		x := gen.Strings(gen.Seeded(3), 1000)
		qsort.Func(x, func(a, b string) bool { return len(a) < len(b) || len(a) == len(b) && a < b })
		assert.That(t, slices.IsSortedFunc(x, func(a, b string) int {
			if len(a) != len(b) {
				return len(a) - len(b)
			}
			return strings.Compare(a, b)
		}))
	})
}
