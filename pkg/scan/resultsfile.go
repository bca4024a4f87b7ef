package scan

import (
	"fmt"
	"os"
	"strings"
)

// ResultsFileName is the handoff file written at the end of a scan run and
// read back by analysis: newline-delimited absolute scan result paths, in
// processing order.
const ResultsFileName = "results-paths.txt"

// WriteResultsFile persists the ordered artifact paths. The file is synced
// and closed before returning; it is the only channel between the scan and
// analysis process invocations.
func WriteResultsFile(path string, entries []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create results file %s: %w", path, err)
	}
	for _, e := range entries {
		if _, err := fmt.Fprintln(f, e); err != nil {
			_ = f.Close()
			return fmt.Errorf("failed to write results file %s: %w", path, err)
		}
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to flush results file %s: %w", path, err)
	}
	return f.Close()
}

// ReadResultsFile returns the non-blank lines of a results file in order.
// Blank lines, including a trailing newline, are tolerated.
func ReadResultsFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read results file %s: %w", path, err)
	}

	var entries []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		entries = append(entries, line)
	}
	return entries, nil
}
