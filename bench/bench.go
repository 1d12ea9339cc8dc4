// Package bench times sorts against each other on the same input and
// counts the comparisons each one makes.
package bench

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/zeebo/errs/v2"

	"github.com/histdb/qsort"
	"github.com/histdb/qsort/count"
	"github.com/histdb/qsort/pdqsort"
	"github.com/histdb/qsort/verify"
)

// Sorter is a named sort over a qsort.T.
type Sorter struct {
	Name string
	Sort func(data qsort.T, n int)
}

// Sorters are the sorts that can be benchmarked, baselines first.
var Sorters = []Sorter{
	{Name: "stdlib", Sort: Library},
	{Name: "pdq", Sort: pdqsort.Sort},
	{Name: "qsort", Sort: qsort.Sort},
}

// Lookup returns the Sorters with the given names, in order. No names
// means all of them.
func Lookup(names []string) ([]Sorter, error) {
	if len(names) == 0 {
		return Sorters, nil
	}
	out := make([]Sorter, 0, len(names))
	for _, name := range names {
		idx := slices.IndexFunc(Sorters, func(s Sorter) bool { return s.Name == name })
		if idx < 0 {
			return nil, errs.Errorf("unknown sorter %q", name)
		}
		out = append(out, Sorters[idx])
	}
	return out, nil
}

// Library sorts data with the standard library's sort.Sort.
func Library(data qsort.T, n int) { sort.Sort(library{data: data, n: n}) }

type library struct {
	data qsort.T
	n    int
}

func (l library) Len() int           { return l.n }
func (l library) Less(i, j int) bool { return l.data.Less(i, j) }
func (l library) Swap(i, j int)      { l.data.Swap(i, j) }

// Input is the data a benchmark sorts. Data is never modified: each run
// sorts a copy.
type Input[E any] struct {
	Data []E
	Less func(a, b E) bool
	Hash func(E) uint64
}

// IntInput benchmarks ascending integer order.
func IntInput(xs []int) Input[int] {
	return Input[int]{
		Data: xs,
		Less: func(a, b int) bool { return a < b },
		Hash: verify.HashInt,
	}
}

// StringInput benchmarks lexicographic byte order.
func StringInput(xs []string) Input[string] {
	return Input[string]{
		Data: xs,
		Less: func(a, b string) bool { return strings.Compare(a, b) < 0 },
		Hash: verify.HashString,
	}
}

// Result is the outcome of running one Sorter over one Input.
type Result struct {
	Name     string
	N        int
	Runs     int
	Elapsed  time.Duration
	Compares uint64
	Swaps    uint64
}

func (r Result) String() string {
	return fmt.Sprintf("%s\t%d\t%v\t%s\t%s",
		r.Name, r.N, r.Elapsed,
		humanize.Comma(int64(r.Compares)),
		humanize.Comma(int64(r.Swaps)))
}

// Run sorts copies of in with s runs times. Each timed run is preceded by an
// untimed one on another fresh copy to warm caches. With three or more runs
// the fastest and slowest are dropped before averaging. Counts come from the
// final timed run, and its output is checked for order and for being a
// permutation of the input.
func Run[E any](s Sorter, in Input[E], runs int) (Result, error) {
	if runs < 1 {
		return Result{}, errs.Errorf("need at least one run, got %d", runs)
	}

	res := Result{Name: s.Name, N: len(in.Data), Runs: runs}
	buf := make([]E, len(in.Data))

	var c count.T
	data := c.Wrap(qsort.T{
		Less: func(i, j int) bool { return in.Less(buf[i], buf[j]) },
		Swap: func(i, j int) { buf[i], buf[j] = buf[j], buf[i] },
	})

	times := make([]time.Duration, 0, runs)
	for range runs {
		copy(buf, in.Data)
		s.Sort(data, len(buf))

		copy(buf, in.Data)
		c.Reset()

		start := time.Now()
		s.Sort(data, len(buf))
		times = append(times, time.Since(start))
	}

	res.Elapsed = trimmedMean(times)
	res.Compares, res.Swaps = c.Compares, c.Swaps

	if err := verify.Sorted(len(buf), func(i, j int) bool { return in.Less(buf[i], buf[j]) }); err != nil {
		return res, errs.Errorf("%s: %v", s.Name, err)
	}
	if verify.Digest(buf, in.Hash) != verify.Digest(in.Data, in.Hash) {
		return res, errs.Errorf("%s: output is not a permutation of the input", s.Name)
	}

	return res, nil
}

// trimmedMean averages times after dropping the minimum and maximum when
// there are at least three.
func trimmedMean(times []time.Duration) time.Duration {
	times = slices.Clone(times)
	slices.Sort(times)
	if len(times) >= 3 {
		times = times[1 : len(times)-1]
	}
	var sum time.Duration
	for _, t := range times {
		sum += t
	}
	return sum / time.Duration(len(times))
}
