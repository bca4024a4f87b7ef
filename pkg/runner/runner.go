// Package runner wraps the external SBOM generator and vulnerability scanner
// CLIs behind a narrow invocation contract.
package runner

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
)

// lookupBinary resolves an external tool on PATH. Overridable in tests.
var lookupBinary = exec.LookPath

// runCommand executes a command, logging the invocation when verbose and
// surfacing captured stderr on failure.
func runCommand(cmd *exec.Cmd, verbose bool) ([]byte, error) {
	if verbose {
		slog.Debug("running command", "cmd", cmd.String(), "dir", cmd.Dir)
	}

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("command failed: %w\nstderr: %s", err, string(exitErr.Stderr))
		}
		return nil, fmt.Errorf("command failed: %w", err)
	}

	if verbose {
		slog.Debug("command output", "bytes", len(output))
	}

	return output, nil
}
