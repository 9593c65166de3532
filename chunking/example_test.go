package chunking_test

import (
	"fmt"
	"slices"

	"chunkbench/chunking"
	"chunkbench/seqs"
)

func ExampleImplicitArray() {
	for chunk := range chunking.ImplicitArray(seqs.Sequential(10), 3) {
		fmt.Println(slices.Collect(chunk))
	}

	// Output:
	// [0 1 2]
	// [3 4 5]
	// [6 7 8]
	// [9]
}

func ExampleLazyShared() {
	// Each chunk is drained before the next one is requested.
	for chunk := range chunking.LazyShared(seqs.Sequential(5), 2) {
		var got []int
		for v := range chunk {
			got = append(got, v)
		}
		fmt.Println(got)
	}

	// Output:
	// [0 1]
	// [2 3]
	// [4]
}
