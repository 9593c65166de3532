package bench_test

import (
	"iter"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chunkbench/bench"
	"chunkbench/chunking"
)

func TestPlan_Default(t *testing.T) {
	cfg := bench.DefaultConfig()
	cases, err := bench.Plan(cfg)
	require.NoError(t, err)

	active := lo.Filter(chunking.Variants[int](), func(v chunking.Variant[int], _ int) bool { return !v.Reference })
	require.Len(t, cases, 1+len(cfg.ChunkSizes)*len(active))

	assert.True(t, cases[0].Subject.Baseline)
	assert.Equal(t, "range/n=1000000", cases[0].Name())
	assert.Equal(t, "implicit-list/n=1000000/size=2", cases[1].Name())

	for _, c := range cases {
		assert.Falsef(t, c.Subject.Reference, "%s is a reference variant", c.Name())
	}
}

func TestPlan_CrossProduct(t *testing.T) {
	cfg := bench.DefaultConfig()
	cfg.Cardinalities = []int{10, 20}
	cfg.ChunkSizes = []int{1, 3}
	cfg.Variants = []string{"lazy-shared", "filter-merge"}
	cfg.Baseline = false

	cases, err := bench.Plan(cfg)
	require.NoError(t, err)

	names := lo.Map(cases, func(c bench.Case, _ int) string { return c.Name() })
	assert.Equal(t, []string{
		"lazy-shared/n=10/size=1",
		"filter-merge/n=10/size=1",
		"lazy-shared/n=10/size=3",
		"filter-merge/n=10/size=3",
		"lazy-shared/n=20/size=1",
		"filter-merge/n=20/size=1",
		"lazy-shared/n=20/size=3",
		"filter-merge/n=20/size=3",
	}, names)

	for _, c := range cases {
		assert.Equal(t, c.Cardinality, c.Invoke(), c.Name())
	}
}

func TestPlan_IncludeReference(t *testing.T) {
	cfg := bench.DefaultConfig()
	cfg.ChunkSizes = []int{10}
	cfg.IncludeReference = true
	cfg.Baseline = false

	cases, err := bench.Plan(cfg)
	require.NoError(t, err)
	assert.Len(t, cases, len(chunking.Variants[int]()))
}

func TestPlan_Invalid(t *testing.T) {
	cfg := bench.DefaultConfig()
	cfg.Samples = 0
	_, err := bench.Plan(cfg)
	assert.ErrorIs(t, err, bench.ErrInvalidConfig)
}

func TestCase_InvokeRegenerates(t *testing.T) {
	generated := 0
	source := func(n int) iter.Seq[int] {
		generated++
		return func(yield func(int) bool) {
			for i := range n {
				if !yield(i) {
					return
				}
			}
		}
	}
	v, ok := chunking.Lookup[int]("explicit-array")
	require.True(t, ok)

	c := bench.NewCase(bench.VariantSubject(v), 25, 4, source)
	assert.Equal(t, 25, c.Invoke())
	assert.Equal(t, 25, c.Invoke())
	assert.Equal(t, 2, generated)

	assert.Equal(t, 7, bench.NewCase(bench.BaselineSubject(), 7, 0, nil).Invoke())
}
