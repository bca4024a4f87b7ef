// Package scan orchestrates the per-directory SBOM generation and
// vulnerability scan phase of the pipeline.
package scan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/depscan/depscan/pkg/config"
	"github.com/depscan/depscan/pkg/runner"
)

// Options configures one scan run.
type Options struct {
	Targets   []config.Target
	OutputDir string
	Sbom      *runner.SbomRunner
	Scanner   *runner.ScanRunner
	Verbose   bool
}

// Run executes the scan phase: locate qualifying targets, then for each one
// sequentially generate an SBOM and submit it to the scanner, collecting the
// absolute result paths. The collected paths are written to the results file
// only after every target has been processed; a tool failure for any target
// aborts the whole run.
//
// Each target directory is passed to the tool invocations explicitly, so no
// process-wide working directory is ever mutated. Returns the results file
// path.
func Run(ctx context.Context, opts Options) (string, error) {
	outDir, err := filepath.Abs(opts.OutputDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve output dir %s: %w", opts.OutputDir, err)
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output dir %s: %w", outDir, err)
	}

	located := Locate(opts.Targets)

	var resultPaths []string
	for _, t := range located {
		sbomPath := filepath.Join(outDir, SbomFileName(t.Path))
		resultPath := filepath.Join(outDir, ResultFileName(t.Path))

		fmt.Printf("Generating SBOM for %s ...\n", t.Path)
		if err := opts.Sbom.Generate(ctx, t.Path, sbomPath, t.Tolerant(), opts.Verbose); err != nil {
			return "", fmt.Errorf("SBOM generation failed for %s: %w", t.Path, err)
		}

		fmt.Printf("Scanning %s ...\n", t.Path)
		if err := opts.Scanner.Scan(ctx, sbomPath, resultPath, opts.Verbose); err != nil {
			return "", fmt.Errorf("scan failed for %s: %w", t.Path, err)
		}

		resultPaths = append(resultPaths, resultPath)
	}

	resultsFile := filepath.Join(outDir, ResultsFileName)
	if err := WriteResultsFile(resultsFile, resultPaths); err != nil {
		return "", err
	}
	return resultsFile, nil
}
