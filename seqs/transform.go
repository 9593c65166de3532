package seqs

import "iter"

func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}

type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

func Enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := 0
		for v := range seq {
			if !yield(index, v) {
				return
			}
			index++
		}
	}
}

// Indexed pairs every element with its position, V1 being the position.
func Indexed[T any](seq iter.Seq[T]) iter.Seq[Pair[int, T]] {
	return func(yield func(Pair[int, T]) bool) {
		for i, v := range Enumerate(seq) {
			if !yield(Pair[int, T]{V1: i, V2: v}) {
				return
			}
		}
	}
}

// ZipAll advances all sequences in lockstep and yields the values pulled in
// one step, in argument order.
// A step stops at the first sequence that is exhausted: the values pulled
// before it are yielded as a shorter final step and zipping ends. Nothing is
// yielded once the first sequence is exhausted.
func ZipAll[T any](seqs ...iter.Seq[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if len(seqs) == 0 {
			return
		}
		nexts := make([]func() (T, bool), len(seqs))
		for i, seq := range seqs {
			next, stop := iter.Pull(seq)
			defer stop()
			nexts[i] = next
		}

		for {
			step := make([]T, 0, len(nexts))
			for _, next := range nexts {
				v, ok := next()
				if !ok {
					break
				}
				step = append(step, v)
			}
			if len(step) == 0 {
				return
			}
			if !yield(step) {
				return
			}
			// a short step means some sequence ran dry
			if len(step) < len(nexts) {
				return
			}
		}
	}
}

// Peek performs the provided action on each element of the sequence without modifying it.
// It is useful for debugging (e.g., logging) or for counting how far a consumer has read.
func Peek[T any](seq iter.Seq[T], action func(T)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			action(v)
			if !yield(v) {
				return
			}
		}
	}
}
