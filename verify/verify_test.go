package verify

import (
	"testing"

	"github.com/zeebo/assert"
)

func TestSorted(t *testing.T) {
	less := func(x []int) func(i, j int) bool {
		return func(i, j int) bool { return x[i] < x[j] }
	}

	for _, x := range [][]int{nil, {1}, {1, 1}, {1, 2, 2, 3}} {
		assert.NoError(t, Sorted(len(x), less(x)))
	}

	x := []int{1, 3, 2}
	err := Sorted(len(x), less(x))
	assert.Error(t, err)
	assert.That(t, err.Error() != "")
}

func TestDigest(t *testing.T) {
	t.Run("Ints", func(t *testing.T) {
		a := []int{1, 2, 3, 3, 4}
		b := []int{3, 4, 1, 3, 2}
		c := []int{3, 4, 1, 2, 2}

		assert.Equal(t, Digest(a, HashInt), Digest(b, HashInt))
		assert.That(t, Digest(a, HashInt) != Digest(c, HashInt))
	})

	t.Run("Strings", func(t *testing.T) {
		a := []string{"banana", "apple", "cherry"}
		b := []string{"apple", "banana", "cherry"}
		c := []string{"apple", "apple", "cherry"}

		assert.Equal(t, Digest(a, HashString), Digest(b, HashString))
		assert.That(t, Digest(a, HashString) != Digest(c, HashString))
	})
}

func TestPermutation(t *testing.T) {
	assert.NoError(t, Permutation(nil))
	assert.NoError(t, Permutation([]int{0}))
	assert.NoError(t, Permutation([]int{3, 1, 0, 2}))

	assert.Error(t, Permutation([]int{0, 0}))
	assert.Error(t, Permutation([]int{0, 2}))
	assert.Error(t, Permutation([]int{-1, 0}))
}
