package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"chunkbench/bench"
	"chunkbench/chunking"
)

// formatFlag is a pflag.Value restricted to the known report formats.
type formatFlag bench.Format

var _ pflag.Value = (*formatFlag)(nil)

func (f *formatFlag) String() string { return string(*f) }

func (f *formatFlag) Set(s string) error {
	format, err := bench.ParseFormat(s)
	if err != nil {
		return err
	}
	*f = formatFlag(format)
	return nil
}

func (f *formatFlag) Type() string { return "table|json|prometheus" }

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	if verbose {
		enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel), zap.Development())
	}
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.InfoLevel))
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "chunkbench",
		Short:         "Compare strategies for splitting a sequence into fixed-size chunks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.AddCommand(newRunCommand(stdout, stderr), newVariantsCommand(stdout))
	return root
}

type runFlags struct {
	config       string
	cardinality  []int
	chunkSize    []int
	variant      []string
	reference    bool
	warmup       int
	samples      int
	outlierFence float64
	input        string
	noBaseline   bool
	format       formatFlag
	rawSamples   bool
	verbose      bool
}

// apply overlays the flags the user set on cfg.
func (f *runFlags) apply(flags *pflag.FlagSet, cfg *bench.Config) {
	if flags.Changed("cardinality") {
		cfg.Cardinalities = f.cardinality
	}
	if flags.Changed("chunk-size") {
		cfg.ChunkSizes = f.chunkSize
	}
	if flags.Changed("variant") {
		cfg.Variants = f.variant
	}
	if flags.Changed("reference") {
		cfg.IncludeReference = f.reference
	}
	if flags.Changed("warmup") {
		cfg.Warmup = f.warmup
	}
	if flags.Changed("samples") {
		cfg.Samples = f.samples
	}
	if flags.Changed("outlier-fence") {
		cfg.OutlierFence = f.outlierFence
	}
	if flags.Changed("input") {
		cfg.Input = f.input
	}
	if f.noBaseline {
		cfg.Baseline = false
	}
}

func newRunCommand(stdout, stderr io.Writer) *cobra.Command {
	f := &runFlags{format: formatFlag(bench.FormatTable)}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Measure the chunking variants and print a report",
		Long: "Measure every selected variant at every cardinality and chunk size. " +
			"Flags override the values read from --config.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := bench.DefaultConfig()
			if f.config != "" {
				var err error
				if cfg, err = bench.LoadConfig(f.config); err != nil {
					return err
				}
			}
			f.apply(cmd.Flags(), &cfg)

			cases, err := bench.Plan(cfg)
			if err != nil {
				return err
			}

			logger := newLogger(stderr, f.verbose)
			defer logger.Sync() //nolint:errcheck
			logger.Info("starting run",
				zap.Int("cases", len(cases)),
				zap.Ints("cardinalities", cfg.Cardinalities),
				zap.Ints("chunk_sizes", cfg.ChunkSizes),
				zap.String("input", cfg.Input),
			)

			runner := bench.NewRunnerFromConfig(cfg,
				bench.WithMonitor(bench.NewLogMonitor(logger)),
				bench.WithRawSamples(f.rawSamples),
			)
			results, err := runner.Run(cmd.Context(), cases)
			if err != nil {
				return errors.Wrapf(err, "after %d of %d cases", len(results), len(cases))
			}
			return bench.WriteReport(stdout, bench.Format(f.format), results)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.config, "config", "c", "", "YAML file with the benchmark configuration")
	flags.IntSliceVarP(&f.cardinality, "cardinality", "n", nil, "input cardinalities (default 1000000)")
	flags.IntSliceVarP(&f.chunkSize, "chunk-size", "s", nil, "chunk sizes (default 2,10,100,1000)")
	flags.StringSliceVar(&f.variant, "variant", nil, "variants to measure (default every non-reference variant)")
	flags.BoolVar(&f.reference, "reference", false, "also measure the reference variants")
	flags.IntVar(&f.warmup, "warmup", bench.DefaultWarmup, "unmeasured invocations per case")
	flags.IntVar(&f.samples, "samples", bench.DefaultSamples, "measured invocations per case")
	flags.Float64Var(&f.outlierFence, "outlier-fence", bench.DefaultOutlierFence, "Tukey fence for outlier rejection, 0 keeps every sample")
	flags.StringVar(&f.input, "input", bench.InputSequential, "input values, sequential or random")
	flags.BoolVar(&f.noBaseline, "no-baseline", false, "skip draining the raw source")
	flags.Var(&f.format, "format", "report format")
	flags.BoolVar(&f.rawSamples, "raw-samples", false, "include every sample in the json report")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "log every sample in development format")
	return cmd
}

func newVariantsCommand(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List the chunking variants",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			tw := tabwriter.NewWriter(stdout, 0, 1, 2, ' ', 0)
			if _, err := fmt.Fprintln(tw, "NAME\tFLAGS\tDESCRIPTION"); err != nil {
				return errors.WithStack(err)
			}
			for _, v := range chunking.Variants[int]() {
				if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", v.Name, variantFlags(v), v.Description); err != nil {
					return errors.WithStack(err)
				}
			}
			return errors.WithStack(tw.Flush())
		},
	}
}

func variantFlags(v chunking.Variant[int]) string {
	var flags []string
	if v.Reference {
		flags = append(flags, "reference")
	}
	if v.MultiPass {
		flags = append(flags, "multi-pass")
	}
	if v.SharedCursor {
		flags = append(flags, "shared-cursor")
	}
	if len(flags) == 0 {
		return "-"
	}
	return strings.Join(flags, ",")
}
