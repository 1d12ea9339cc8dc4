// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the Go LICENSE file.

// Package pdqsort is a pattern-defeating quicksort over a qsort.T. It is
// the baseline the qsort engine is measured against.
//
// pdqsort paper: https://arxiv.org/pdf/2106.05123.pdf
package pdqsort

import (
	"math/bits"

	"github.com/histdb/qsort"
)

// Sort sorts positions [0, n) of data.
func Sort(data qsort.T, n int) {
	s := sorter{T: data}
	s.sort(0, n, bits.Len(uint(n)))
}

type sorter struct {
	qsort.T
}

type hint uint8

const (
	hintUnknown hint = iota
	hintIncreasing
	hintDecreasing
)

// sort sorts [a, b). After limit badly unbalanced partitions it gives up on
// quicksort and heapsorts what is left.
func (s sorter) sort(a, b, limit int) {
	const maxInsertion = 12

	balanced, partitioned := true, true

	for {
		n := b - a
		if n <= maxInsertion {
			s.insertion(a, b)
			return
		}
		if limit == 0 {
			s.heap(a, b)
			return
		}
		if !balanced {
			s.breakPatterns(a, b)
			limit--
		}

		pivot, h := s.choosePivot(a, b)
		if h == hintDecreasing {
			s.reverse(a, b)
			pivot = (b - 1) - (pivot - a)
			h = hintIncreasing
		}

		if balanced && partitioned && h == hintIncreasing && s.partialInsertion(a, b) {
			return
		}

		// data[a-1] is a previous pivot. If it is not less than this one,
		// everything equal to it can be skipped.
		if a > 0 && !s.Less(a-1, pivot) {
			a = s.partitionEqual(a, b, pivot)
			continue
		}

		mid, already := s.partition(a, b, pivot)
		partitioned = already

		left, right := mid-a, b-mid
		if left < right {
			balanced = left >= n/8
			s.sort(a, mid, limit)
			a = mid + 1
		} else {
			balanced = right >= n/8
			s.sort(mid+1, b, limit)
			b = mid
		}
	}
}

func (s sorter) insertion(a, b int) {
	for i := a + 1; i < b; i++ {
		for j := i; j > a && s.Less(j, j-1); j-- {
			s.Swap(j, j-1)
		}
	}
}

func (s sorter) siftDown(lo, hi, first int) {
	root := lo
	for {
		child := 2*root + 1
		if child >= hi {
			return
		}
		if child+1 < hi && s.Less(first+child, first+child+1) {
			child++
		}
		if !s.Less(first+root, first+child) {
			return
		}
		s.Swap(first+root, first+child)
		root = child
	}
}

func (s sorter) heap(a, b int) {
	n := b - a
	for i := (n - 1) / 2; i >= 0; i-- {
		s.siftDown(i, n, a)
	}
	for i := n - 1; i >= 0; i-- {
		s.Swap(a, a+i)
		s.siftDown(0, i, a)
	}
}

// partition moves the pivot to a and splits [a, b) around it. It returns
// the pivot's final position and whether no exchanges were needed.
func (s sorter) partition(a, b, pivot int) (mid int, already bool) {
	s.Swap(a, pivot)
	i, j := a+1, b-1

	already = true
	for {
		for i <= j && s.Less(i, a) {
			i++
		}
		for i <= j && !s.Less(j, a) {
			j--
		}
		if i > j {
			break
		}
		s.Swap(i, j)
		already = false
		i++
		j--
	}
	s.Swap(j, a)
	return j, already
}

// partitionEqual skips past every value equal to data[pivot], assuming
// nothing in [a, b) is smaller.
func (s sorter) partitionEqual(a, b, pivot int) int {
	s.Swap(a, pivot)
	i, j := a+1, b-1
	for {
		for i <= j && !s.Less(a, i) {
			i++
		}
		for i <= j && s.Less(a, j) {
			j--
		}
		if i > j {
			return i
		}
		s.Swap(i, j)
		i++
		j--
	}
}

// partialInsertion fixes up a handful of out of order pairs and reports
// whether [a, b) ended up sorted.
func (s sorter) partialInsertion(a, b int) bool {
	const (
		maxSteps      = 5
		minShiftRange = 50
	)

	i := a + 1
	for range maxSteps {
		for i < b && !s.Less(i, i-1) {
			i++
		}
		if i == b {
			return true
		}
		if b-a < minShiftRange {
			return false
		}

		s.Swap(i, i-1)
		for j := i - 1; j > a && s.Less(j, j-1); j-- {
			s.Swap(j, j-1)
		}
		for j := i + 1; j < b && s.Less(j, j-1); j++ {
			s.Swap(j, j-1)
		}
	}
	return false
}

func (s sorter) breakPatterns(a, b int) {
	n := b - a
	if n < 8 {
		return
	}

	// xorshift: https://www.jstatsoft.org/article/view/v008i14/xorshift.pdf
	r := uint64(n)
	mask := uint(1)<<bits.Len(uint(n)) - 1
	for idx := a + (n/4)*2 - 1; idx <= a+(n/4)*2+1; idx++ {
		r ^= r << 13
		r ^= r >> 17
		r ^= r << 5
		other := int(uint(r) & mask)
		if other >= n {
			other -= n
		}
		s.Swap(idx, a+other)
	}
}

// choosePivot picks a pivot position in [a, b): a fixed one below 8
// elements, the median of three below 50, and Tukey's ninther above. The
// hint reports whether the samples looked increasing or decreasing.
func (s sorter) choosePivot(a, b int) (int, hint) {
	const (
		minNinther = 50
		maxSwaps   = 4 * 3
	)

	n := b - a
	swaps := 0
	i, j, k := a+n/4, a+n/4*2, a+n/4*3

	if n >= 8 {
		if n >= minNinther {
			i = s.median(i-1, i, i+1, &swaps)
			j = s.median(j-1, j, j+1, &swaps)
			k = s.median(k-1, k, k+1, &swaps)
		}
		j = s.median(i, j, k, &swaps)
	}

	switch swaps {
	case 0:
		return j, hintIncreasing
	case maxSwaps:
		return j, hintDecreasing
	default:
		return j, hintUnknown
	}
}

// median returns whichever of a, b and c holds the median value, counting
// how many sample pairs were out of order.
func (s sorter) median(a, b, c int, swaps *int) int {
	order := func(x, y int) (int, int) {
		if s.Less(y, x) {
			*swaps++
			return y, x
		}
		return x, y
	}
	a, b = order(a, b)
	b, _ = order(b, c)
	_, b = order(a, b)
	return b
}

func (s sorter) reverse(a, b int) {
	for i, j := a, b-1; i < j; i, j = i+1, j-1 {
		s.Swap(i, j)
	}
}
