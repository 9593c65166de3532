package lists

import (
	"fmt"
	"iter"
	"slices"

	"github.com/pkg/errors"
)

var ErrIndexOutOfBounds = errors.New("index out of bounds")

// ArrayList is a slice-backed List. Appending past the capacity reallocates,
// so chunkers size it up front with the chunk size.
type ArrayList[T any] struct {
	data []T
}

var _ List[int] = (*ArrayList[int])(nil)

func NewArrayList[T any](initialCapacity int) *ArrayList[T] {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return &ArrayList[T]{
		data: make([]T, 0, initialCapacity),
	}
}

func (al *ArrayList[T]) Add(values ...T) {
	al.data = append(al.data, values...)
}

func (al *ArrayList[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(al.data) {
		var zero T
		return zero, errors.Wrapf(ErrIndexOutOfBounds, "get %d of %d", index, len(al.data))
	}
	return al.data[index], nil
}

func (al *ArrayList[T]) Size() int {
	return len(al.data)
}

// Cap reports how many elements fit before the next reallocation.
func (al *ArrayList[T]) Cap() int {
	return cap(al.data)
}

func (al *ArrayList[T]) IsEmpty() bool {
	return len(al.data) == 0
}

func (al *ArrayList[T]) Clear() {
	// clear the underlying array to let elements be GCed
	clear(al.data)
	al.data = al.data[:0]
}

func (al *ArrayList[T]) ToSlice() []T {
	return slices.Clone(al.data)
}

// Values iterates the elements present when Values was called. Appends are
// not observed by an iteration already handed out, but Clear followed by Add
// overwrites the storage it reads.
func (al *ArrayList[T]) Values() iter.Seq[T] {
	return slices.Values(al.data)
}

// String implements fmt.Stringer for easier debugging.
func (al *ArrayList[T]) String() string {
	return fmt.Sprintf("%v", al.data)
}
