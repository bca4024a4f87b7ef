package runner

import (
	"context"
	"fmt"
	"os/exec"
)

// sbomSpecVersion is pinned to what the downstream scanner accepts.
const sbomSpecVersion = "1.5"

// SbomRunner invokes the external SBOM generator against one directory.
type SbomRunner struct {
	Binary string
}

// Name returns the display name for this runner.
func (r *SbomRunner) Name() string { return r.Binary }

// IsAvailable checks whether the SBOM generator binary is installed.
func (r *SbomRunner) IsAvailable() bool {
	_, err := lookupBinary(r.Binary)
	return err == nil
}

// args builds the generator argv: development-only dependencies omitted,
// reproducible output requested, spec version pinned. Tolerant targets
// additionally ignore npm errors, since their manifests emit benign warnings
// that must not abort generation.
func (r *SbomRunner) args(outFile string, tolerant bool) []string {
	args := []string{
		"--omit", "dev",
		"--output-reproducible",
		"--spec-version", sbomSpecVersion,
		"--output-file", outFile,
	}
	if tolerant {
		args = append(args, "--ignore-npm-errors")
	}
	return args
}

// Generate produces an SBOM document for dir at outFile. outFile must be
// absolute because the generator runs with dir as its working directory.
func (r *SbomRunner) Generate(ctx context.Context, dir, outFile string, tolerant, verbose bool) error {
	cmd := exec.CommandContext(ctx, r.Binary, r.args(outFile, tolerant)...)
	cmd.Dir = dir
	if _, err := runCommand(cmd, verbose); err != nil {
		return fmt.Errorf("%s failed for %s: %w", r.Binary, dir, err)
	}
	return nil
}
