package seqs

import (
	"iter"

	"github.com/pkg/errors"
)

// ErrSinglePass is the panic value of a Once sequence enumerated twice.
var ErrSinglePass = errors.New("seqs: single-pass sequence enumerated more than once")

// Once wraps seq so that it can be enumerated a single time, modelling a
// stream that cannot be rewound. A second enumeration panics with
// ErrSinglePass, even if the first one stopped early.
func Once[T any](seq iter.Seq[T]) iter.Seq[T] {
	used := false
	return func(yield func(T) bool) {
		if used {
			panic(ErrSinglePass)
		}
		used = true
		for v := range seq {
			if !yield(v) {
				return
			}
		}
	}
}
