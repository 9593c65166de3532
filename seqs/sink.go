package seqs

import "iter"

func First[T any](seq iter.Seq[T]) (T, bool) {
	for v := range seq {
		return v, true
	}
	var zero T
	return zero, false
}

func Count[T any](seq iter.Seq[T]) int {
	count := 0
	for range seq {
		count++
	}
	return count
}

// Drain visits every element of seq and discards it. The element count is
// returned so callers can check that the traversal really happened.
func Drain[T any](seq iter.Seq[T]) int {
	return Count(seq)
}

// DrainNested drains each inner sequence completely before asking the outer
// sequence for the next one, which is the order lazy chunkers require.
func DrainNested[T any](seq iter.Seq[iter.Seq[T]]) int {
	total := 0
	for inner := range seq {
		total += Drain(inner)
	}
	return total
}
