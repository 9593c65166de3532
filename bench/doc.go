/*
Package bench measures the chunking strategies over a cross product of input
cardinalities and chunk sizes.

A [Config] describes the sweep, [Plan] expands it into [Case] values and a
[Runner] measures them one at a time:

	cfg := bench.DefaultConfig()
	cases, err := bench.Plan(cfg)
	if err != nil {
		return err
	}
	results, err := bench.NewRunnerFromConfig(cfg).Run(ctx, cases)
	if err != nil {
		return err
	}
	return bench.WriteReport(os.Stdout, bench.FormatTable, results)

Every invocation chunks a freshly generated source and drains the nested
result completely, so lazy strategies pay for all the work they defer. Each
measured invocation forces a garbage collection first and reads the runtime
allocation counters around itself; warm-up invocations are not recorded.
Timing statistics are computed after Tukey outlier rejection.
*/
package bench
