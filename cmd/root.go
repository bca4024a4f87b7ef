// Package cmd wires the scanning pipeline's two phases into a CLI.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/depscan/depscan/pkg/config"
	"github.com/depscan/depscan/pkg/metrics"
	"github.com/depscan/depscan/pkg/report"
)

var (
	outputDir  string
	configFile string
	verbose    bool
	noMetrics  bool
)

var stdout io.Writer = os.Stdout

const (
	workflowRunScan = "run-scan"
	workflowAnalyze = "analyze-results"
)

var rootCmd = &cobra.Command{
	Use:   "depscan",
	Short: "Dependency vulnerability scanning pipeline",
	Long: `Scan the dependency manifests of a source tree and gate on the results.

depscan runs in two independent phases:
- run-scan: generates an SBOM for each configured directory, submits each to
  the vulnerability scanner, and records where the scan results were written.
- analyze-results: reads the recorded scan results, sums vulnerability counts
  per severity, and fails when any concerning (critical/high/medium/other)
  vulnerabilities are present. Low severity findings are reported but never
  fail the scan.

The phases share no state beyond the recorded result paths, so they can run
as separate pipeline steps.`,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	},
}

// Execute runs the root command and exits non-zero on any error. A failed
// verdict has already printed its breakdown; everything else gets a single
// Error line.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, report.ErrVulnerabilitiesFound) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.Long += "\n" + checkToolStatus(config.Default())

	rootCmd.PersistentFlags().StringVar(&outputDir, "output-dir", "vuln-scan-results", "Directory for SBOMs, scan results and the recorded result paths")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a YAML config overriding the built-in scan targets and tool names")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose logging of external commands")
	rootCmd.PersistentFlags().BoolVar(&noMetrics, "no-metrics", false, "Disable CloudWatch metric emission")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("depscan {{.Version}}\n")
}

func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.Default(), nil
	}
	return config.Load(configFile)
}

// newEmitter builds the metrics sink. When the CloudWatch client cannot be
// built the pipeline proceeds without metrics rather than failing.
func newEmitter(ctx context.Context, namespace string) metrics.Emitter {
	if noMetrics {
		return metrics.Noop{}
	}
	em, err := metrics.NewCloudWatch(ctx, namespace)
	if err != nil {
		slog.Warn("metrics disabled", "error", err)
		return metrics.Noop{}
	}
	return em
}
