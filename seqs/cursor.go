package seqs

import "iter"

// Cursor is a forward-only handle over a sequence that the caller advances
// explicitly, the way an enumerator is driven with MoveNext and Current.
// A Cursor is not safe for concurrent use. Close releases the underlying
// pull iterator and must be called once the cursor is no longer needed.
type Cursor[T any] struct {
	next    func() (T, bool)
	stop    func()
	current T
	done    bool
}

// NewCursor starts enumerating seq. The cursor is positioned before the
// first element; call MoveNext before reading Current.
func NewCursor[T any](seq iter.Seq[T]) *Cursor[T] {
	next, stop := iter.Pull(seq)
	return &Cursor[T]{next: next, stop: stop}
}

// MoveNext advances to the next element and reports whether there was one.
// After it returns false every later call returns false too.
func (c *Cursor[T]) MoveNext() bool {
	if c.done {
		return false
	}
	v, ok := c.next()
	if !ok {
		c.done = true
		var zero T
		c.current = zero
		return false
	}
	c.current = v
	return true
}

// Current returns the element the cursor is positioned on, or the zero value
// before the first MoveNext and after exhaustion.
func (c *Cursor[T]) Current() T {
	return c.current
}

// Done reports whether the underlying sequence is exhausted or closed.
func (c *Cursor[T]) Done() bool {
	return c.done
}

// Close releases the underlying pull iterator and marks the cursor done.
func (c *Cursor[T]) Close() {
	c.done = true
	c.stop()
}
