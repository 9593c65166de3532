package bench

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

type Format string

const (
	FormatTable      Format = "table"
	FormatJSON       Format = "json"
	FormatPrometheus Format = "prometheus"
)

var ErrUnknownFormat = errors.New("unknown report format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatTable, FormatJSON, FormatPrometheus:
		return f, nil
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%q", s)
}

// WriteReport renders results in the given format.
func WriteReport(w io.Writer, format Format, results []Result) error {
	switch format {
	case FormatTable:
		return writeTable(w, results)
	case FormatJSON:
		return writeJSON(w, results)
	case FormatPrometheus:
		return writePrometheus(w, results)
	}
	return errors.Wrapf(ErrUnknownFormat, "%q", format)
}

// baselines maps each cardinality to the mean of its baseline case.
func baselines(results []Result) map[int]time.Duration {
	means := make(map[int]time.Duration)
	for _, r := range results {
		if r.Case.Subject.Baseline {
			means[r.Case.Cardinality] = r.Summary.Mean
		}
	}
	return means
}

// ratio is the mean of r relative to the baseline of the same cardinality,
// or zero when there is none.
func ratio(r Result, base map[int]time.Duration) float64 {
	b, ok := base[r.Case.Cardinality]
	if !ok || b <= 0 {
		return 0
	}
	return float64(r.Summary.Mean) / float64(b)
}

const tableHeader = "SUBJECT\tCARDINALITY\tCHUNK SIZE\tMEAN\tSTDDEV\tMEDIAN\tRATIO\tALLOCATED/OP\tALLOCS/OP\tOUTLIERS\n"

func writeTable(w io.Writer, results []Result) error {
	base := baselines(results)
	tw := tabwriter.NewWriter(w, 0, 1, 2, ' ', 0)
	if _, err := io.WriteString(tw, tableHeader); err != nil {
		return errors.WithStack(err)
	}
	for _, r := range results {
		size := "-"
		if !r.Case.Subject.Baseline {
			size = strconv.Itoa(r.Case.ChunkSize)
		}
		rat := "-"
		if v := ratio(r, base); v > 0 {
			rat = fmt.Sprintf("%.2f", v)
		}
		s := r.Summary
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%v\t%v\t%v\t%s\t%s\t%s\t%d/%d\n",
			r.Case.Subject.Name,
			humanize.Comma(int64(r.Case.Cardinality)),
			size,
			roundDuration(s.Mean),
			roundDuration(s.StdDev),
			roundDuration(s.Median),
			rat,
			humanize.IBytes(uint64(s.BytesPerOp)),
			humanize.CommafWithDigits(s.AllocsPerOp, 1),
			s.Outliers, s.N+s.Outliers,
		); err != nil {
			return errors.WithStack(err)
		}
	}
	return errors.WithStack(tw.Flush())
}

func roundDuration(d time.Duration) time.Duration {
	switch {
	case d >= time.Second:
		return d.Round(time.Millisecond)
	case d >= time.Millisecond:
		return d.Round(time.Microsecond)
	default:
		return d
	}
}

type jsonResult struct {
	Subject     string   `json:"subject"`
	Reference   bool     `json:"reference,omitempty"`
	Baseline    bool     `json:"baseline,omitempty"`
	Cardinality int      `json:"cardinality"`
	ChunkSize   int      `json:"chunk_size,omitempty"`
	Ratio       float64  `json:"ratio,omitempty"`
	Summary     Summary  `json:"summary"`
	Samples     []Sample `json:"samples,omitempty"`
}

func writeJSON(w io.Writer, results []Result) error {
	base := baselines(results)
	rows := make([]jsonResult, len(results))
	for i, r := range results {
		rows[i] = jsonResult{
			Subject:     r.Case.Subject.Name,
			Reference:   r.Case.Subject.Reference,
			Baseline:    r.Case.Subject.Baseline,
			Cardinality: r.Case.Cardinality,
			ChunkSize:   r.Case.ChunkSize,
			Ratio:       ratio(r, base),
			Summary:     r.Summary,
			Samples:     r.Samples,
		}
	}
	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(rows), "encode results")
}

var metricLabels = []string{"subject", "cardinality", "chunk_size"}

func writePrometheus(w io.Writer, results []Result) error {
	reg := prometheus.NewPedanticRegistry()
	meanSeconds := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "chunkbench",
		Name:      "mean_seconds",
		Help:      "Mean wall-clock time of one invocation.",
	}, metricLabels)
	stddevSeconds := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "chunkbench",
		Name:      "stddev_seconds",
		Help:      "Sample standard deviation of the invocation time.",
	}, metricLabels)
	bytesPerOp := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "chunkbench",
		Name:      "allocated_bytes_per_op",
		Help:      "Mean heap bytes allocated by one invocation.",
	}, metricLabels)
	allocsPerOp := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "chunkbench",
		Name:      "allocs_per_op",
		Help:      "Mean heap allocations made by one invocation.",
	}, metricLabels)
	samples := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "chunkbench",
		Name:      "samples",
		Help:      "Samples kept after outlier rejection.",
	}, metricLabels)
	reg.MustRegister(meanSeconds, stddevSeconds, bytesPerOp, allocsPerOp, samples)

	for _, r := range results {
		labels := prometheus.Labels{
			"subject":     r.Case.Subject.Name,
			"cardinality": strconv.Itoa(r.Case.Cardinality),
			"chunk_size":  strconv.Itoa(r.Case.ChunkSize),
		}
		meanSeconds.With(labels).Set(r.Summary.Mean.Seconds())
		stddevSeconds.With(labels).Set(r.Summary.StdDev.Seconds())
		bytesPerOp.With(labels).Set(r.Summary.BytesPerOp)
		allocsPerOp.With(labels).Set(r.Summary.AllocsPerOp)
		samples.With(labels).Set(float64(r.Summary.N))
	}

	families, err := reg.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Wrap(err, "write metrics")
		}
	}
	return nil
}
