package lists

import "iter"

// List is the growable container a chunker fills one element at a time
// before handing the chunk to its consumer.
type List[T any] interface {
	// Add appends one or more elements to the end of the list
	Add(values ...T)

	// Get retrieves the element at the specified index
	// Returns an error if index is out of bounds
	Get(index int) (T, error)

	// Size returns the current number of elements in the list
	Size() int

	// IsEmpty checks if the list is empty
	IsEmpty() bool

	// Clear empties the list but keeps its backing storage for reuse
	Clear()

	// ToSlice copies the list into a native slice
	ToSlice() []T

	// Values iterates the elements in insertion order
	Values() iter.Seq[T]
}
