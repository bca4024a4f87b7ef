package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/depscan/depscan/pkg/analysis"
	"github.com/depscan/depscan/pkg/metrics"
	"github.com/depscan/depscan/pkg/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze-results <target> <repository-or-results-file>",
	Short: "Aggregate recorded scan results and decide pass or fail",
	Long: `Read the result paths recorded by run-scan, sum the vulnerability counts
per severity across every scan result, print the per-directory and total
breakdowns, and exit non-zero when any concerning (critical, high, medium or
other severity) vulnerabilities were found.

The second argument is either a path to a results file or a repository name,
in which case the default location under the output directory is used.
Re-running against unchanged results always yields the same verdict.`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE:         runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	target := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	emitter := newEmitter(ctx, cfg.MetricsNamespace)
	dims := metrics.Dimensions{
		Repository: args[1],
		Workflow:   workflowAnalyze,
		Target:     target,
	}
	emitter.Emit(ctx, metrics.MetricInvoked, 1, dims)

	rep, err := analysis.Aggregate(resolveResultsFile(args[1]))
	if err != nil {
		return err
	}

	out, err := report.Render(rep)
	if err != nil {
		return err
	}
	fmt.Fprint(stdout, out)

	if err := report.Verdict(rep); err != nil {
		// The Failed value carries the concerning total so dashboards can
		// graph magnitude, not just occurrences.
		emitter.Emit(ctx, metrics.MetricFailed, float64(rep.Totals.Concerning()), dims)
		return err
	}
	emitter.Emit(ctx, metrics.MetricPassed, 1, dims)
	return nil
}
