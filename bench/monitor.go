package bench

import (
	"go.uber.org/zap"
)

// Monitor observes a benchmark run.
type Monitor interface {
	OnCaseStart(c Case)
	// OnSample records one measured invocation; warm-up runs are not reported.
	OnSample(c Case, index int, s Sample)
	OnCaseDone(r Result)
}

type NoopMonitor struct{}

func (NoopMonitor) OnCaseStart(Case)           {}
func (NoopMonitor) OnSample(Case, int, Sample) {}
func (NoopMonitor) OnCaseDone(Result)          {}

// LogMonitor writes progress as structured logs. Samples are logged at debug level.
type LogMonitor struct {
	logger *zap.Logger
}

func NewLogMonitor(logger *zap.Logger) *LogMonitor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogMonitor{logger: logger}
}

func caseFields(c Case) []zap.Field {
	return []zap.Field{
		zap.String("subject", c.Subject.Name),
		zap.Int("cardinality", c.Cardinality),
		zap.Int("chunk_size", c.ChunkSize),
	}
}

func (m *LogMonitor) OnCaseStart(c Case) {
	m.logger.Info("measuring", caseFields(c)...)
}

func (m *LogMonitor) OnSample(c Case, index int, s Sample) {
	if ce := m.logger.Check(zap.DebugLevel, "sample"); ce != nil {
		ce.Write(append(caseFields(c),
			zap.Int("index", index),
			zap.Duration("elapsed", s.Elapsed),
			zap.Uint64("bytes", s.Bytes),
			zap.Uint64("allocs", s.Allocs),
		)...)
	}
}

func (m *LogMonitor) OnCaseDone(r Result) {
	m.logger.Info("measured", append(caseFields(r.Case),
		zap.Int("samples", r.Summary.N),
		zap.Int("outliers", r.Summary.Outliers),
		zap.Duration("mean", r.Summary.Mean),
		zap.Duration("stddev", r.Summary.StdDev),
		zap.Float64("bytes_per_op", r.Summary.BytesPerOp),
		zap.Float64("allocs_per_op", r.Summary.AllocsPerOp),
	)...)
}
