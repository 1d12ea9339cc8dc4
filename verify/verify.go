// Package verify checks the postconditions of a sort: the output is in
// order and it is a permutation of the input.
package verify

import (
	"encoding/binary"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/zeebo/errs/v2"
	"github.com/zeebo/xxh3"
)

// Sorted returns an error naming the first position i in [1, n) with
// less(i, i-1).
func Sorted(n int, less func(i, j int) bool) error {
	for i := 1; i < n; i++ {
		if less(i, i-1) {
			return errs.Errorf("out of order at %d of %d", i, n)
		}
	}
	return nil
}

// Digest returns an order independent digest of the multiset xs. Two
// slices that are permutations of each other have the same digest.
func Digest[E any](xs []E, hash func(E) uint64) (d uint64) {
	for _, x := range xs {
		d += hash(x)
	}
	return d
}

// HashInt hashes an int for Digest.
func HashInt(x int) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(x))
	return xxh3.Hash(buf[:])
}

// HashString hashes a string for Digest.
func HashString(x string) uint64 { return xxh3.HashString(x) }

// Permutation returns an error unless idx holds every value in
// [0, len(idx)) exactly once.
func Permutation(idx []int) error {
	seen := roaring.New()
	for pos, v := range idx {
		if v < 0 || v >= len(idx) {
			return errs.Errorf("index %d at %d out of range [0, %d)", v, pos, len(idx))
		}
		if !seen.CheckedAdd(uint32(v)) {
			return errs.Errorf("index %d repeated at %d", v, pos)
		}
	}
	return nil
}
