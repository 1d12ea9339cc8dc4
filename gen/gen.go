// Package gen produces inputs for sorting: integers laid out in a number of
// patterns that are known to hurt naive quicksorts, random words, and lines
// read from a stream.
package gen

import (
	"math/rand/v2"
	"strings"

	"github.com/zeebo/errs/v2"
	"github.com/zeebo/mwc"
)

// Source is a stream of random 64 bit values.
type Source interface {
	Uint64() uint64
}

type sourceFunc func() uint64

func (fn sourceFunc) Uint64() uint64 { return fn() }

// Seeded returns a deterministic Source. The same seed always produces the
// same inputs.
func Seeded(seed uint64) Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// Random returns a Source with a fresh random state.
func Random() Source {
	rng := mwc.Rand()
	return sourceFunc(func() uint64 { return rng.Uint64() })
}

// Pattern is a layout of integer input.
type Pattern uint8

const (
	PatternRandom Pattern = iota
	PatternSorted
	PatternReversed
	PatternOrgan
	PatternSawtooth
	PatternFew
)

var patternNames = [...]string{
	PatternRandom:   "random",
	PatternSorted:   "sorted",
	PatternReversed: "reversed",
	PatternOrgan:    "organ",
	PatternSawtooth: "sawtooth",
	PatternFew:      "few",
}

// Patterns lists every Pattern.
func Patterns() []Pattern {
	return []Pattern{
		PatternRandom, PatternSorted, PatternReversed,
		PatternOrgan, PatternSawtooth, PatternFew,
	}
}

func (p Pattern) String() string {
	if int(p) < len(patternNames) {
		return patternNames[p]
	}
	return "Pattern(unknown)"
}

// ParsePattern returns the Pattern with the given name.
func ParsePattern(name string) (Pattern, error) {
	for p, pname := range patternNames {
		if pname == name {
			return Pattern(p), nil
		}
	}
	return 0, errs.Errorf("unknown pattern %q (want one of %s)",
		name, strings.Join(patternNames[:], ", "))
}

const (
	sawtoothPeriod = 1024
	fewValues      = 16
)

// Ints returns n integers laid out according to p. Random values come
// from src and are non-negative and below 1<<31.
func Ints(src Source, n int, p Pattern) []int {
	xs := make([]int, n)
	for i := range xs {
		switch p {
		case PatternSorted:
			xs[i] = i
		case PatternReversed:
			xs[i] = n - i
		case PatternOrgan:
			xs[i] = min(i, n-1-i)
		case PatternSawtooth:
			xs[i] = i % sawtoothPeriod
		case PatternFew:
			xs[i] = int(src.Uint64() % fewValues)
		default:
			xs[i] = int(src.Uint64() >> 33)
		}
	}
	return xs
}

// Strings returns n random lowercase words between 1 and 12 letters long.
func Strings(src Source, n int) []string {
	xs := make([]string, n)
	var buf [12]byte
	for i := range xs {
		v := src.Uint64()
		l := 1 + int(v%uint64(len(buf)))
		for j := range l {
			v = v*6364136223846793005 + 1442695040888963407
			buf[j] = 'a' + byte((v>>33)%26)
		}
		xs[i] = string(buf[:l])
	}
	return xs
}
