package bench_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"chunkbench/bench"
	"chunkbench/chunking"
)

func TestLogMonitor(t *testing.T) {
	v, ok := chunking.Lookup[int]("explicit-list")
	require.True(t, ok)
	c := bench.NewCase(bench.VariantSubject(v), 50, 5, nil)

	for _, tt := range []struct {
		level   zapcore.Level
		samples int
	}{
		{zapcore.DebugLevel, 2},
		{zapcore.InfoLevel, 0},
	} {
		t.Run(tt.level.String(), func(t *testing.T) {
			core, logs := observer.New(tt.level)
			r := bench.NewRunner(
				bench.WithWarmup(1),
				bench.WithSamples(2),
				bench.WithMonitor(bench.NewLogMonitor(zap.New(core))),
			)
			_, err := r.Measure(context.Background(), c)
			require.NoError(t, err)

			assert.Equal(t, 1, logs.FilterMessage("measuring").Len())
			assert.Equal(t, tt.samples, logs.FilterMessage("sample").Len())

			done := logs.FilterMessage("measured").All()
			require.Len(t, done, 1)
			fields := done[0].ContextMap()
			assert.Equal(t, "explicit-list", fields["subject"])
			assert.Equal(t, int64(50), fields["cardinality"])
			assert.Equal(t, int64(5), fields["chunk_size"])
			assert.Equal(t, int64(2), fields["samples"])
		})
	}
}

func TestLogMonitor_NilLogger(t *testing.T) {
	m := bench.NewLogMonitor(nil)
	assert.NotPanics(t, func() {
		m.OnCaseStart(bench.Case{})
		m.OnSample(bench.Case{}, 0, bench.Sample{})
		m.OnCaseDone(bench.Result{})
	})
}
