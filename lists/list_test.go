package lists_test

import (
	"slices"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chunkbench/lists"
)

// RunListTests is a reusable test suite for the List interface.
func RunListTests(t *testing.T, name string, factory func(vals ...int) lists.List[int]) {
	t.Helper()

	t.Run(name+"/Basic", func(t *testing.T) {
		l := factory()
		assert.True(t, l.IsEmpty(), "new list should be empty")
		assert.Equal(t, 0, l.Size())

		l.Add(10, 20, 30)
		assert.False(t, l.IsEmpty())
		assert.Equal(t, 3, l.Size())

		v, err := l.Get(1)
		require.NoError(t, err)
		assert.Equal(t, 20, v)

		l.Clear()
		assert.True(t, l.IsEmpty(), "list should be empty after Clear")
		assert.Equal(t, 0, l.Size())
	})

	t.Run(name+"/Boundary_Indices", func(t *testing.T) {
		l := factory(1, 2, 3)
		for _, idx := range []int{-1, 3, 100} {
			_, err := l.Get(idx)
			assert.Truef(t, errors.Is(err, lists.ErrIndexOutOfBounds), "Get(%d) = %v", idx, err)
		}
	})

	t.Run(name+"/Values_Order", func(t *testing.T) {
		l := factory(5, 4, 3)
		l.Add(2, 1)
		assert.Equal(t, []int{5, 4, 3, 2, 1}, slices.Collect(l.Values()))
		assert.Equal(t, []int{5, 4, 3, 2, 1}, l.ToSlice())
	})

	t.Run(name+"/ToSlice_Copies", func(t *testing.T) {
		l := factory(1, 2)
		s := l.ToSlice()
		s[0] = 99
		v, _ := l.Get(0)
		assert.Equal(t, 1, v, "ToSlice must not alias the list storage")
	})
}

func TestArrayList(t *testing.T) {
	RunListTests(t, "ArrayList", func(vals ...int) lists.List[int] {
		l := lists.NewArrayList[int](len(vals))
		l.Add(vals...)
		return l
	})
}

func TestArrayList_Specifics(t *testing.T) {
	t.Run("Capacity", func(t *testing.T) {
		l := lists.NewArrayList[int](4)
		assert.Equal(t, 4, l.Cap())
		l.Add(1, 2, 3, 4)
		assert.Equal(t, 4, l.Cap(), "filling to capacity must not reallocate")

		assert.Equal(t, 0, lists.NewArrayList[int](-3).Cap())
	})

	t.Run("Values_Snapshot", func(t *testing.T) {
		l := lists.NewArrayList[int](1)
		l.Add(1)
		seen := l.Values()
		l.Add(2, 3)
		assert.Equal(t, []int{1}, slices.Collect(seen))
	})

	t.Run("String", func(t *testing.T) {
		l := lists.NewArrayList[int](2)
		l.Add(1, 2)
		assert.Equal(t, "[1 2]", l.String())
	})
}
