// Package count instruments a qsort.T so that every ordering decision and
// every exchange a sort makes is tallied.
//
// A T belongs to whoever created it. It is not synchronized, so concurrent
// sorts must each use their own.
package count

import "github.com/histdb/qsort"

// T tallies comparisons and exchanges.
type T struct {
	Compares uint64
	Swaps    uint64
}

// Wrap returns a qsort.T that forwards to data and counts each call.
func (c *T) Wrap(data qsort.T) qsort.T {
	return qsort.T{
		Less: c.Less(data.Less),
		Swap: func(i, j int) {
			c.Swaps++
			data.Swap(i, j)
		},
	}
}

// Less returns less with a comparison counter attached.
func (c *T) Less(less func(i, j int) bool) func(i, j int) bool {
	return func(i, j int) bool {
		c.Compares++
		return less(i, j)
	}
}

// Reset zeroes the counts.
func (c *T) Reset() { *c = T{} }
