package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/depscan/depscan/pkg/config"
	"github.com/depscan/depscan/pkg/scan"
)

// checkToolStatus returns a status line per external tool for the help text.
func checkToolStatus(cfg *config.Config) string {
	var status strings.Builder
	status.WriteString("\nPrerequisites:\n")
	for _, tool := range []string{cfg.SbomTool, cfg.ScanTool} {
		if path, err := exec.LookPath(tool); err == nil {
			fmt.Fprintf(&status, "  [OK] %s (%s)\n", tool, path)
		} else {
			fmt.Fprintf(&status, "  [MISSING] %s (required for run-scan)\n", tool)
		}
	}
	return status.String()
}

// resolveResultsFile maps the second analyze-results argument to a results
// file path: an existing file is used as-is, anything else is treated as a
// repository name and resolved to the default location under the output dir.
func resolveResultsFile(arg string) string {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		return arg
	}
	return filepath.Join(outputDir, scan.ResultsFileName)
}
