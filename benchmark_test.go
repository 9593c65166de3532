package chunkbench_test

import (
	"fmt"
	"testing"

	"chunkbench/chunking"
	"chunkbench/seqs"
)

var (
	cardinalities = []int{100_000, 1_000_000}
	chunkSizes    = []int{2, 10, 100, 1000}
)

// BenchmarkChunking drains the output of every variant at every configuration
// point.
func BenchmarkChunking(b *testing.B) {
	for _, n := range cardinalities {
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			b.Run("Range", func(b *testing.B) {
				b.ReportAllocs()
				for b.Loop() {
					if got := seqs.Drain(seqs.Sequential(n)); got != n {
						b.Fatalf("drained %d of %d", got, n)
					}
				}
			})

			for _, size := range chunkSizes {
				b.Run(fmt.Sprintf("Size=%d", size), func(b *testing.B) {
					for _, v := range chunking.Variants[int]() {
						if v.Reference {
							continue
						}
						b.Run(v.Name, func(b *testing.B) {
							b.ReportAllocs()
							for b.Loop() {
								if got := seqs.DrainNested(v.Chunk(seqs.Sequential(n), size)); got != n {
									b.Fatalf("drained %d of %d", got, n)
								}
							}
						})
					}
				})
			}
		})
	}
}

// BenchmarkChunking_Reference runs the quadratic and materializing variants
// at a cardinality they finish in.
func BenchmarkChunking_Reference(b *testing.B) {
	const n = 10_000
	for _, size := range chunkSizes {
		b.Run(fmt.Sprintf("Size=%d", size), func(b *testing.B) {
			for _, v := range chunking.Variants[int]() {
				if !v.Reference {
					continue
				}
				b.Run(v.Name, func(b *testing.B) {
					b.ReportAllocs()
					for b.Loop() {
						seqs.DrainNested(v.Chunk(seqs.Sequential(n), size))
					}
				})
			}
		})
	}
}

// BenchmarkChunking_Random feeds random values so the loop cannot be
// specialised to a counter.
func BenchmarkChunking_Random(b *testing.B) {
	const n = 100_000
	for _, v := range chunking.Variants[int]() {
		if v.Reference {
			continue
		}
		b.Run(v.Name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				seqs.DrainNested(v.Chunk(seqs.RandomInts(n), 100))
			}
		})
	}
}
