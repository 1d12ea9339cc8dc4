package qsort

import "cmp"

// The functions in this file are the algorithm of qsort.go specialized to
// slices, so that elements are compared and exchanged without a call
// through a Less/Swap pair. Keep the two in step.

// Slice sorts x in ascending order. Floating point NaNs sort before other
// values.
func Slice[S ~[]E, E cmp.Ordered](x S) {
	if len(x) < 2 {
		return
	}
	sortRangeOrdered(x, 0, len(x)-1)
}

// Func sorts x using less to compare elements.
func Func[S ~[]E, E any](x S, less func(a, b E) bool) {
	if len(x) < 2 {
		return
	}
	sortRangeFunc(x, 0, len(x)-1, less)
}

func sortRangeOrdered[E cmp.Ordered](x []E, l, r int) {
	for r-l > insertionThreshold {
		p := partitionOrdered(x, l, r)
		if p-l < r-p {
			sortRangeOrdered(x, l, p-1)
			l = p + 1
		} else {
			sortRangeOrdered(x, p+1, r)
			r = p - 1
		}
	}
	for i := l + 1; i <= r; i++ {
		for j := i; j > l && cmp.Less(x[j], x[j-1]); j-- {
			x[j], x[j-1] = x[j-1], x[j]
		}
	}
}

func partitionOrdered[E cmp.Ordered](x []E, l, r int) int {
	m := l + (r-l)>>1
	a1, a2, a3 := l+1, m, r
	if cmp.Less(x[a2], x[a1]) {
		if cmp.Less(x[a3], x[a2]) {
			x[a1], x[a3] = x[a3], x[a1]
		} else {
			x[a1], x[a2] = x[a2], x[a1]
			if cmp.Less(x[a3], x[a2]) {
				x[a2], x[a3] = x[a3], x[a2]
			}
		}
	} else if cmp.Less(x[a3], x[a2]) {
		x[a2], x[a3] = x[a3], x[a2]
		if cmp.Less(x[a2], x[a1]) {
			x[a1], x[a2] = x[a2], x[a1]
		}
	}
	x[l], x[m] = x[m], x[l]

	pivot := x[l]
	i, j := l+1, r
	for {
		for i++; cmp.Less(x[i], pivot); i++ {
		}
		for j--; cmp.Less(pivot, x[j]); j-- {
		}
		if i >= j {
			break
		}
		x[i], x[j] = x[j], x[i]
	}

	x[l], x[j] = x[j], x[l]
	return j
}

func sortRangeFunc[E any](x []E, l, r int, less func(a, b E) bool) {
	for r-l > insertionThreshold {
		p := partitionFunc(x, l, r, less)
		if p-l < r-p {
			sortRangeFunc(x, l, p-1, less)
			l = p + 1
		} else {
			sortRangeFunc(x, p+1, r, less)
			r = p - 1
		}
	}
	for i := l + 1; i <= r; i++ {
		for j := i; j > l && less(x[j], x[j-1]); j-- {
			x[j], x[j-1] = x[j-1], x[j]
		}
	}
}

func partitionFunc[E any](x []E, l, r int, less func(a, b E) bool) int {
	m := l + (r-l)>>1
	a1, a2, a3 := l+1, m, r
	if less(x[a2], x[a1]) {
		if less(x[a3], x[a2]) {
			x[a1], x[a3] = x[a3], x[a1]
		} else {
			x[a1], x[a2] = x[a2], x[a1]
			if less(x[a3], x[a2]) {
				x[a2], x[a3] = x[a3], x[a2]
			}
		}
	} else if less(x[a3], x[a2]) {
		x[a2], x[a3] = x[a3], x[a2]
		if less(x[a2], x[a1]) {
			x[a1], x[a2] = x[a2], x[a1]
		}
	}
	x[l], x[m] = x[m], x[l]

	pivot := x[l]
	i, j := l+1, r
	for {
		for i++; less(x[i], pivot); i++ {
		}
		for j--; less(pivot, x[j]); j-- {
		}
		if i >= j {
			break
		}
		x[i], x[j] = x[j], x[i]
	}

	x[l], x[j] = x[j], x[l]
	return j
}
