package seqs

import (
	"iter"
	"math/rand/v2"
)

// RandomInts generates a sequence of random integers of the specified size.
// Every enumeration draws new values.
func RandomInts(size int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < size; i++ {
			if !yield(rand.Int()) {
				return
			}
		}
	}
}

// Range yields start, start+step, ... up to but excluding end.
// A zero step yields nothing.
func Range(start, end, step int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if step == 0 {
			return
		}
		for i := start; step > 0 && i < end || step < 0 && i > end; i += step {
			if !yield(i) {
				return
			}
		}
	}
}

// Sequential yields 0..n-1.
func Sequential(n int) iter.Seq[int] {
	return Range(0, n, 1)
}
