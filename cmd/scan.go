package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/depscan/depscan/pkg/metrics"
	"github.com/depscan/depscan/pkg/runner"
	"github.com/depscan/depscan/pkg/scan"
)

var scanCmd = &cobra.Command{
	Use:   "run-scan <target> <repository> [head_ref]",
	Short: "Generate SBOMs for the configured directories and scan them",
	Long: `Generate an SBOM for every configured directory that contains a
package-lock.json, submit each SBOM to the vulnerability scanner, and record
the scan result locations for a later analyze-results invocation.

Directories without a lockfile are skipped with a warning. A tool failure
for any directory aborts the run.`,
	Args:         cobra.RangeArgs(2, 3),
	SilenceUsage: true,
	RunE:         runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	target, repository := args[0], args[1]
	var headRef string
	if len(args) == 3 {
		headRef = args[2]
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dims := metrics.Dimensions{
		Repository: repository,
		Workflow:   workflowRunScan,
		Target:     target,
		HeadRef:    headRef,
	}
	newEmitter(ctx, cfg.MetricsNamespace).Emit(ctx, metrics.MetricInvoked, 1, dims)

	resultsFile, err := scan.Run(ctx, scan.Options{
		Targets:   cfg.Targets,
		OutputDir: outputDir,
		Sbom:      &runner.SbomRunner{Binary: cfg.SbomTool},
		Scanner:   &runner.ScanRunner{Binary: cfg.ScanTool},
		Verbose:   verbose,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Recorded scan result paths in %s\n", resultsFile)
	return nil
}
