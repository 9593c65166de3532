package bench

import (
	"fmt"
	"iter"

	"chunkbench/chunking"
	"chunkbench/seqs"
)

// BaselineName names the subject that drains the raw source without chunking.
const BaselineName = "range"

// Subject is one measured operation. Run consumes a freshly generated source
// and returns the number of elements it visited.
type Subject struct {
	Name      string
	Reference bool
	Baseline  bool
	Run       func(source iter.Seq[int], size int) int
}

// VariantSubject measures v by draining everything it produces.
func VariantSubject(v chunking.Variant[int]) Subject {
	chunk := v.Chunk
	return Subject{
		Name:      v.Name,
		Reference: v.Reference,
		Run: func(source iter.Seq[int], size int) int {
			return seqs.DrainNested(chunk(source, size))
		},
	}
}

// BaselineSubject drains the source alone, the cost every variant pays on
// top of its own work.
func BaselineSubject() Subject {
	return Subject{
		Name:     BaselineName,
		Baseline: true,
		Run: func(source iter.Seq[int], _ int) int {
			return seqs.Drain(source)
		},
	}
}

// Case binds a subject to one configuration point.
type Case struct {
	Subject     Subject
	Cardinality int
	// ChunkSize is zero for the baseline, which does not chunk.
	ChunkSize int

	source func(n int) iter.Seq[int]
}

// NewCase builds a case that generates its input with source, or with
// seqs.Sequential when source is nil.
func NewCase(s Subject, cardinality, chunkSize int, source func(n int) iter.Seq[int]) Case {
	if source == nil {
		source = seqs.Sequential
	}
	return Case{Subject: s, Cardinality: cardinality, ChunkSize: chunkSize, source: source}
}

func (c Case) Name() string {
	if c.Subject.Baseline {
		return fmt.Sprintf("%s/n=%d", c.Subject.Name, c.Cardinality)
	}
	return fmt.Sprintf("%s/n=%d/size=%d", c.Subject.Name, c.Cardinality, c.ChunkSize)
}

// Invoke runs the subject once over a freshly generated source.
func (c Case) Invoke() int {
	source := c.source
	if source == nil {
		source = seqs.Sequential
	}
	return c.Subject.Run(source(c.Cardinality), c.ChunkSize)
}

// Plan enumerates cardinality x chunk size x variant in registry order. When
// the baseline is enabled it leads each cardinality.
func Plan(cfg Config) ([]Case, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	subjects := selectSubjects(cfg)
	var cases []Case
	for _, n := range cfg.Cardinalities {
		if cfg.Baseline {
			cases = append(cases, NewCase(BaselineSubject(), n, 0, cfg.Source))
		}
		for _, size := range cfg.ChunkSizes {
			for _, s := range subjects {
				cases = append(cases, NewCase(s, n, size, cfg.Source))
			}
		}
	}
	return cases, nil
}

func selectSubjects(cfg Config) []Subject {
	var subjects []Subject
	if len(cfg.Variants) > 0 {
		for _, name := range cfg.Variants {
			v, _ := chunking.Lookup[int](name)
			subjects = append(subjects, VariantSubject(v))
		}
		return subjects
	}
	for _, v := range chunking.Variants[int]() {
		if v.Reference && !cfg.IncludeReference {
			continue
		}
		subjects = append(subjects, VariantSubject(v))
	}
	return subjects
}
