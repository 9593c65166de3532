package chunking

import (
	"iter"
	"slices"

	"github.com/samber/lo"

	"chunkbench/lists"
	"chunkbench/seqs"
)

// Func splits source into consecutive chunks of size elements. The last
// chunk holds the remainder and is never empty. A size below 1 yields no
// chunks.
type Func[T any] func(source iter.Seq[T], size int) iter.Seq[iter.Seq[T]]

// ImplicitList ranges over source and fills a fresh ArrayList per chunk.
func ImplicitList[T any](source iter.Seq[T], size int) iter.Seq[iter.Seq[T]] {
	return func(yield func(iter.Seq[T]) bool) {
		if size <= 0 {
			return
		}

		chunk := lists.NewArrayList[T](size)
		for v := range source {
			chunk.Add(v)
			if chunk.Size() == size {
				if !yield(chunk.Values()) {
					return
				}
				chunk = lists.NewArrayList[T](size)
			}
		}
		if !chunk.IsEmpty() {
			yield(chunk.Values())
		}
	}
}

// ImplicitArray ranges over source and fills a fresh fixed-size slice per chunk.
func ImplicitArray[T any](source iter.Seq[T], size int) iter.Seq[iter.Seq[T]] {
	return func(yield func(iter.Seq[T]) bool) {
		if size <= 0 {
			return
		}

		chunk := make([]T, size)
		count := 0
		for v := range source {
			chunk[count] = v
			count++
			if count == size {
				if !yield(slices.Values(chunk)) {
					return
				}
				chunk = make([]T, size)
				count = 0
			}
		}
		if count > 0 {
			yield(slices.Values(chunk[:count]))
		}
	}
}

// ExplicitList drives a Cursor held across chunk boundaries and fills a
// fresh ArrayList per chunk.
func ExplicitList[T any](source iter.Seq[T], size int) iter.Seq[iter.Seq[T]] {
	return func(yield func(iter.Seq[T]) bool) {
		if size <= 0 {
			return
		}

		c := seqs.NewCursor(source)
		defer c.Close()

		chunk := lists.NewArrayList[T](size)
		for c.MoveNext() {
			chunk.Add(c.Current())
			if chunk.Size() == size {
				if !yield(chunk.Values()) {
					return
				}
				chunk = lists.NewArrayList[T](size)
			}
		}
		if !chunk.IsEmpty() {
			yield(chunk.Values())
		}
	}
}

// ExplicitArray drives a Cursor and fills a fresh fixed-size slice per chunk.
func ExplicitArray[T any](source iter.Seq[T], size int) iter.Seq[iter.Seq[T]] {
	return func(yield func(iter.Seq[T]) bool) {
		if size <= 0 {
			return
		}

		c := seqs.NewCursor(source)
		defer c.Close()

		chunk := make([]T, size)
		count := 0
		for c.MoveNext() {
			chunk[count] = c.Current()
			count++
			if count == size {
				if !yield(slices.Values(chunk)) {
					return
				}
				chunk = make([]T, size)
				count = 0
			}
		}
		if count > 0 {
			yield(slices.Values(chunk[:count]))
		}
	}
}

// ExplicitArrayInLoop threads the cursor through a bounded inner loop that
// advances it in its post statement. The advance after the last slot of a
// chunk runs before the chunk is yielded, so the source is read one element
// ahead of the consumer.
func ExplicitArrayInLoop[T any](source iter.Seq[T], size int) iter.Seq[iter.Seq[T]] {
	return func(yield func(iter.Seq[T]) bool) {
		if size <= 0 {
			return
		}

		c := seqs.NewCursor(source)
		defer c.Close()

		inProgress := c.MoveNext()
		for inProgress {
			chunk := make([]T, size)
			n := 0
			for ; n < size && inProgress; n, inProgress = n+1, c.MoveNext() {
				chunk[n] = c.Current()
			}
			if !yield(slices.Values(chunk[:n])) {
				return
			}
		}
	}
}

// LazyShared yields chunks that read straight from a cursor shared with the
// outer sequence, so nothing is buffered.
//
// A chunk is valid only until the outer sequence advances. Each chunk must
// be drained before the next one is requested; a chunk left unread has its
// remaining elements handed to the next chunk, and a chunk read later pulls
// whatever the shared cursor points at by then.
func LazyShared[T any](source iter.Seq[T], size int) iter.Seq[iter.Seq[T]] {
	return func(yield func(iter.Seq[T]) bool) {
		if size <= 0 {
			return
		}

		c := seqs.NewCursor(source)
		defer c.Close()

		for c.MoveNext() {
			if !yield(sharedChunk(c, size)) {
				return
			}
		}
	}
}

// sharedChunk yields the cursor's current element, then advances it until
// size elements have been produced or the source ends. It never advances
// past the last element of its chunk.
func sharedChunk[T any](c *seqs.Cursor[T], size int) iter.Seq[T] {
	return func(yield func(T) bool) {
		count := 0
		for {
			if !yield(c.Current()) {
				return
			}
			count++
			if count >= size || !c.MoveNext() {
				return
			}
		}
	}
}

// TakeSkip yields Take(rest, size) and continues with Skip(rest, size) while
// the rest is non-empty. Every step re-enumerates the source from its start,
// so source must be repeatable and the total work grows quadratically.
func TakeSkip[T any](source iter.Seq[T], size int) iter.Seq[iter.Seq[T]] {
	return func(yield func(iter.Seq[T]) bool) {
		if size <= 0 {
			return
		}

		rest := source
		for {
			if _, ok := seqs.First(rest); !ok {
				return
			}
			if !yield(seqs.Take(rest, size)) {
				return
			}
			rest = seqs.Skip(rest, size)
		}
	}
}

// FilterMerge derives one sequence per chunk slot by filtering the source on
// index%size and merges the slots back together with ZipAll. Each slot
// enumerates the source separately, so source must be repeatable and is
// scanned size times.
func FilterMerge[T any](source iter.Seq[T], size int) iter.Seq[iter.Seq[T]] {
	return func(yield func(iter.Seq[T]) bool) {
		if size <= 0 {
			return
		}

		slots := make([]iter.Seq[T], size)
		for slot := range size {
			slots[slot] = strided(source, size, slot)
		}
		for chunk := range seqs.ZipAll(slots...) {
			if !yield(slices.Values(chunk)) {
				return
			}
		}
	}
}

func strided[T any](source iter.Seq[T], size, slot int) iter.Seq[T] {
	inSlot := seqs.Filter(seqs.Indexed(source), func(p seqs.Pair[int, T]) bool {
		return p.V1%size == slot
	})
	return seqs.Map(inSlot, func(p seqs.Pair[int, T]) T { return p.V2 })
}

// GroupProject groups the indexed source by index/size and projects the
// values back out. The whole source is materialized before the first chunk.
func GroupProject[T any](source iter.Seq[T], size int) iter.Seq[iter.Seq[T]] {
	return func(yield func(iter.Seq[T]) bool) {
		if size <= 0 {
			return
		}

		indexed := slices.Collect(seqs.Indexed(source))
		groups := lo.GroupBy(indexed, func(p seqs.Pair[int, T]) int {
			return p.V1 / size
		})
		for key := range len(groups) {
			values := lo.Map(groups[key], func(p seqs.Pair[int, T], _ int) T {
				return p.V2
			})
			if !yield(slices.Values(values)) {
				return
			}
		}
	}
}
