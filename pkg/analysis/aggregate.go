// Package analysis reads a scan run's recorded result artifacts and
// accumulates vulnerability counts per severity, per target and in total.
package analysis

import (
	"fmt"
	"os"

	"github.com/depscan/depscan/pkg/scan"
	"github.com/depscan/depscan/pkg/types"
)

// TargetResult is the aggregated outcome for one scanned directory.
type TargetResult struct {
	Label        string
	ArtifactPath string
	Counts       types.VulnerabilityCount
	Messages     []types.ScanMessage
}

// Report is the outcome of one analysis run. It is rebuilt from the
// artifacts on every run and never persisted, so re-running analysis against
// unchanged artifacts yields identical totals.
type Report struct {
	Results          []TargetResult
	SkippedArtifacts []string
	Totals           types.VulnerabilityCount
}

// Aggregate reads the results file and accumulates severity counts across
// every artifact it references. An individual artifact that has gone missing
// degrades to a warning and a skip, since the file system holding the
// artifacts may not have been preserved between phases; only the results
// file itself being unreadable is an error.
func Aggregate(resultsFile string) (*Report, error) {
	entries, err := scan.ReadResultsFile(resultsFile)
	if err != nil {
		return nil, err
	}

	rep := &Report{}
	for _, p := range entries {
		data, err := os.ReadFile(p)
		if err != nil {
			fmt.Printf("⚠️ Warning: scan result %s not found, skipping\n", p)
			rep.SkippedArtifacts = append(rep.SkippedArtifacts, p)
			continue
		}

		counts, msgs := extractCounts(data)
		rep.Results = append(rep.Results, TargetResult{
			Label:        scan.DecodeDirLabel(p),
			ArtifactPath: p,
			Counts:       counts,
			Messages:     msgs,
		})
		rep.Totals.Add(counts)
	}

	return rep, nil
}
