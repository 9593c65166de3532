/*
Package chunking implements interchangeable strategies for splitting a
sequence into consecutive fixed-size chunks.

Every strategy has the signature of [Func]: it takes an iter.Seq and a chunk
size and returns a lazy sequence of chunks. They differ along one axis at a
time so that benchmark differences can be attributed:

  - **Iteration handle**: a range loop ([ImplicitList], [ImplicitArray])
    versus an explicit [seqs.Cursor] ([ExplicitList], [ExplicitArray],
    [ExplicitArrayInLoop]).
  - **Chunk storage**: a growable [lists.ArrayList] versus a fixed-size slice,
    or no storage at all ([LazyShared]).
  - **Eagerness**: chunks fully built before they are yielded versus pulled
    element by element from the shared cursor.

[TakeSkip], [FilterMerge] and [GroupProject] are kept as reference
strategies. The first two enumerate the source repeatedly and must not be
given a single-pass stream; the last materializes the whole source.

# Lazy chunks

Chunks from [LazyShared] are valid only until the next advancement of the
outer sequence. Drain each chunk before asking for the next:

	for chunk := range chunking.LazyShared(src, 100) {
		for v := range chunk {
			use(v)
		}
	}

Skipping a chunk or reading it late silently yields wrong elements.
*/
package chunking
