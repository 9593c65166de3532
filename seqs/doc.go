/*
Package seqs provides the iter.Seq building blocks the chunking strategies
and the benchmark harness are written with.

It includes:

  - **Generators**: [Range], [Sequential] and [RandomInts] produce the input
    sequences the harness chunks.
  - **Transformations**: [Filter], [Map], [Enumerate], [Indexed], [Concat],
    [ZipAll] and [Peek].
  - **Flow Control**: [Take] and [Skip].
  - **Sinks**: [First], [Count], [Drain] and [DrainNested]. The drains force
    lazy production so that every strategy pays for all of its work.
  - **Cursors**: [Cursor] turns a sequence into an explicitly advanced
    handle, and [Once] models a source that supports one enumeration only.

# Single pass

Sequences here are assumed to be enumerable once. Functions that enumerate
their input more than once say so; fed a [Once] source they panic with
[ErrSinglePass].

	src := seqs.Once(seqs.Sequential(10))
	seqs.Drain(src) // 10
	seqs.Drain(src) // panics
*/
package seqs
