package runner

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// ScanRunner submits one SBOM document to the vulnerability scanning CLI and
// captures its JSON response verbatim.
type ScanRunner struct {
	Binary string
}

// Name returns the display name for this runner.
func (r *ScanRunner) Name() string { return r.Binary }

// IsAvailable checks whether the scanner binary is installed.
func (r *ScanRunner) IsAvailable() bool {
	_, err := lookupBinary(r.Binary)
	return err == nil
}

// Scan runs the scanner against sbomFile and writes the raw response to
// outFile. The response is not parsed here; aggregation happens in a later,
// separate process invocation.
func (r *ScanRunner) Scan(ctx context.Context, sbomFile, outFile string, verbose bool) error {
	cmd := exec.CommandContext(ctx, r.Binary, "--sbom", sbomFile)
	output, err := runCommand(cmd, verbose)
	if err != nil {
		return fmt.Errorf("%s failed for %s: %w", r.Binary, sbomFile, err)
	}

	if err := os.WriteFile(outFile, output, 0644); err != nil {
		return fmt.Errorf("failed to write scan result %s: %w", outFile, err)
	}
	return nil
}
