// Package qsort is an in-place quicksort that keeps the number of
// comparisons low and never degrades to quadratic time or linear stack
// depth on sorted, reversed, or otherwise patterned input.
//
// The sort is not stable. Less must be a strict weak ordering. If it is not,
// the order of the result is unspecified, and because the partition scans
// rely on the ordering to stop, Less and Swap may be called with positions
// outside [0, n). Over a slice that surfaces as an index out of range panic.
package qsort

// insertionThreshold is the largest r-l for which a range is handed to
// insertion sort. It must be at least 4 so that partition always sees
// distinct sample positions.
const insertionThreshold = 12

// T is the sequence being sorted, reachable only through its Less and
// Swap operations over positions.
type T struct {
	Less func(i, j int) bool
	Swap func(i, j int)
}

// Sort sorts positions [0, n) of data. Less and Swap are called exactly as
// often as the algorithm needs, so counting wrappers around them are exact.
func Sort(data T, n int) {
	if n < 2 {
		return
	}
	sortRange(data, 0, n-1)
}

// Less sorts x using less to compare positions.
func Less[S ~[]E, E any](x S, less func(i, j int) bool) {
	Sort(T{
		Less: less,
		Swap: func(i, j int) { x[i], x[j] = x[j], x[i] },
	}, len(x))
}

// sortRange sorts the inclusive range [l, r] and returns the deepest level
// of recursion it reached.
//
// Only the smaller side of each partition is recursed into. The larger side
// is handled by the loop, so depth never exceeds log2(r-l+1).
func sortRange(data T, l, r int) (depth int) {
	for r-l > insertionThreshold {
		p := partition(data, l, r)
		if p-l < r-p {
			depth = max(depth, sortRange(data, l, p-1)+1)
			l = p + 1
		} else {
			depth = max(depth, sortRange(data, p+1, r)+1)
			r = p - 1
		}
	}
	insertionSort(data, l, r)
	return depth
}

// sort3 orders the values at a1, a2 and a3. Sorted and reversed triples cost
// two comparisons, the other four orderings cost three.
func sort3(data T, a1, a2, a3 int) {
	if data.Less(a2, a1) {
		if data.Less(a3, a2) {
			data.Swap(a1, a3)
			return
		}
		data.Swap(a1, a2)
		if data.Less(a3, a2) {
			data.Swap(a2, a3)
		}
	} else if data.Less(a3, a2) {
		data.Swap(a2, a3)
		if data.Less(a2, a1) {
			data.Swap(a1, a2)
		}
	}
}

// partition splits [l, r] around the median of the second, middle and last
// values and returns the pivot's final position p. Values in [l, p-1] are
// <= the pivot and values in [p+1, r] are >= it.
//
// It requires r-l >= 4.
func partition(data T, l, r int) (p int) {
	m := l + (r-l)>>1
	sort3(data, l+1, m, r)
	data.Swap(l, m)

	// value(l+1) <= pivot <= value(r), so neither scan needs a bounds check.
	i, j := l+1, r
	for {
		for i++; data.Less(i, l); i++ {
		}
		for j--; data.Less(l, j); j-- {
		}
		if i >= j {
			break
		}
		data.Swap(i, j)
	}

	data.Swap(l, j)
	return j
}

// insertionSort sorts the inclusive range [l, r].
func insertionSort(data T, l, r int) {
	for i := l + 1; i <= r; i++ {
		for j := i; j > l && data.Less(j, j-1); j-- {
			data.Swap(j, j-1)
		}
	}
}
