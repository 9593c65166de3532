package bench

import (
	"math"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

// Sample is one measured invocation.
type Sample struct {
	Elapsed time.Duration `json:"elapsed_ns"`
	// Bytes and Allocs are the heap allocation deltas of the invocation.
	Bytes    uint64 `json:"bytes"`
	Allocs   uint64 `json:"allocs"`
	Elements int    `json:"elements"`
}

// Summary aggregates the samples kept after outlier rejection.
type Summary struct {
	N        int           `json:"n"`
	Outliers int           `json:"outliers"`
	Mean     time.Duration `json:"mean_ns"`
	StdDev   time.Duration `json:"stddev_ns"`
	StdErr   time.Duration `json:"stderr_ns"`
	Min      time.Duration `json:"min_ns"`
	Median   time.Duration `json:"median_ns"`
	Max      time.Duration `json:"max_ns"`

	BytesPerOp  float64 `json:"bytes_per_op"`
	AllocsPerOp float64 `json:"allocs_per_op"`
}

func elapsed(samples []Sample) stats.Float64Data {
	data := make(stats.Float64Data, len(samples))
	for i, s := range samples {
		data[i] = float64(s.Elapsed)
	}
	return data
}

// Summarize computes the summary of samples. A positive fence drops samples
// whose elapsed time lies outside the Tukey fences
// [Q1 - fence*IQR, Q3 + fence*IQR]; rejection never drops every sample.
func Summarize(samples []Sample, fence float64) (Summary, error) {
	if len(samples) == 0 {
		return Summary{}, nil
	}

	kept := samples
	if fence > 0 && len(samples) >= 4 {
		var err error
		if kept, err = rejectOutliers(samples, fence); err != nil {
			return Summary{}, err
		}
	}

	s := Summary{N: len(kept), Outliers: len(samples) - len(kept)}
	durations := elapsed(kept)

	mean, err := stats.Mean(durations)
	if err != nil {
		return Summary{}, errors.Wrap(err, "mean")
	}
	median, err := stats.Median(durations)
	if err != nil {
		return Summary{}, errors.Wrap(err, "median")
	}
	minimum, err := stats.Min(durations)
	if err != nil {
		return Summary{}, errors.Wrap(err, "min")
	}
	maximum, err := stats.Max(durations)
	if err != nil {
		return Summary{}, errors.Wrap(err, "max")
	}
	s.Mean = time.Duration(mean)
	s.Median = time.Duration(median)
	s.Min = time.Duration(minimum)
	s.Max = time.Duration(maximum)

	// the sample deviation of a single value is undefined
	if len(kept) > 1 {
		stddev, err := stats.StandardDeviationSample(durations)
		if err != nil {
			return Summary{}, errors.Wrap(err, "standard deviation")
		}
		s.StdDev = time.Duration(stddev)
		s.StdErr = time.Duration(stddev / math.Sqrt(float64(len(kept))))
	}

	bytes := make(stats.Float64Data, len(kept))
	allocs := make(stats.Float64Data, len(kept))
	for i, sm := range kept {
		bytes[i] = float64(sm.Bytes)
		allocs[i] = float64(sm.Allocs)
	}
	if s.BytesPerOp, err = stats.Mean(bytes); err != nil {
		return Summary{}, errors.Wrap(err, "bytes per op")
	}
	if s.AllocsPerOp, err = stats.Mean(allocs); err != nil {
		return Summary{}, errors.Wrap(err, "allocs per op")
	}
	return s, nil
}

func rejectOutliers(samples []Sample, fence float64) ([]Sample, error) {
	durations := elapsed(samples)
	q, err := stats.Quartile(durations)
	if err != nil {
		return nil, errors.Wrap(err, "quartiles")
	}
	iqr, err := stats.InterQuartileRange(durations)
	if err != nil {
		return nil, errors.Wrap(err, "interquartile range")
	}
	lo, hi := q.Q1-fence*iqr, q.Q3+fence*iqr

	kept := make([]Sample, 0, len(samples))
	for i, s := range samples {
		if d := durations[i]; d >= lo && d <= hi {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return samples, nil
	}
	return kept, nil
}
