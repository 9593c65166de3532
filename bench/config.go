package bench

import (
	"io"
	"iter"
	"os"
	"slices"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"chunkbench/chunking"
	"chunkbench/seqs"
)

const (
	InputSequential = "sequential"
	InputRandom     = "random"
)

// Defaults sweep one million elements over four chunk sizes.
const (
	DefaultCardinality  = 1_000_000
	DefaultWarmup       = 3
	DefaultSamples      = 15
	DefaultOutlierFence = 1.5
)

var DefaultChunkSizes = []int{2, 10, 100, 1000}

var (
	ErrInvalidConfig  = errors.New("invalid benchmark configuration")
	ErrUnknownVariant = errors.New("unknown chunking variant")
)

// Config selects the configuration points and the sampling policy.
type Config struct {
	Cardinalities    []int    `yaml:"cardinalities" json:"cardinalities"`
	ChunkSizes       []int    `yaml:"chunk_sizes" json:"chunk_sizes"`
	Variants         []string `yaml:"variants" json:"variants,omitempty"`
	IncludeReference bool     `yaml:"include_reference" json:"include_reference"`
	Input            string   `yaml:"input" json:"input"`
	Warmup           int      `yaml:"warmup" json:"warmup"`
	Samples          int      `yaml:"samples" json:"samples"`
	// OutlierFence is the Tukey k; samples outside [Q1-k*IQR, Q3+k*IQR] are
	// dropped. Zero keeps every sample.
	OutlierFence float64 `yaml:"outlier_fence" json:"outlier_fence"`
	Baseline     bool    `yaml:"baseline" json:"baseline"`
}

func DefaultConfig() Config {
	return Config{
		Cardinalities: []int{DefaultCardinality},
		ChunkSizes:    slices.Clone(DefaultChunkSizes),
		Input:         InputSequential,
		Warmup:        DefaultWarmup,
		Samples:       DefaultSamples,
		OutlierFence:  DefaultOutlierFence,
		Baseline:      true,
	}
}

// LoadConfig reads a YAML file over DefaultConfig. Keys missing from the
// file keep their defaults; unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, errors.Wrap(err, "open config")
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, errors.Wrapf(ErrInvalidConfig, "decode %s: %v", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if len(c.Cardinalities) == 0 {
		return errors.Wrap(ErrInvalidConfig, "no cardinalities")
	}
	for _, n := range c.Cardinalities {
		if n <= 0 {
			return errors.Wrapf(ErrInvalidConfig, "cardinality %d must be positive", n)
		}
	}
	if len(c.ChunkSizes) == 0 {
		return errors.Wrap(ErrInvalidConfig, "no chunk sizes")
	}
	for _, size := range c.ChunkSizes {
		if size <= 0 {
			return errors.Wrapf(ErrInvalidConfig, "chunk size %d must be positive", size)
		}
	}
	for _, name := range c.Variants {
		if _, ok := chunking.Lookup[int](name); !ok {
			return errors.Wrapf(ErrUnknownVariant, "%q", name)
		}
	}
	switch c.Input {
	case InputSequential, InputRandom:
	default:
		return errors.Wrapf(ErrInvalidConfig, "input %q must be %q or %q", c.Input, InputSequential, InputRandom)
	}
	if c.Warmup < 0 {
		return errors.Wrapf(ErrInvalidConfig, "warmup %d must not be negative", c.Warmup)
	}
	if c.Samples < 1 {
		return errors.Wrapf(ErrInvalidConfig, "samples %d must be at least 1", c.Samples)
	}
	if c.OutlierFence < 0 {
		return errors.Wrapf(ErrInvalidConfig, "outlier fence %v must not be negative", c.OutlierFence)
	}
	return nil
}

// Source returns a fresh generator of n elements. Each enumeration of the
// result produces the sequence anew.
func (c Config) Source(n int) iter.Seq[int] {
	if c.Input == InputRandom {
		return seqs.RandomInts(n)
	}
	return seqs.Sequential(n)
}
