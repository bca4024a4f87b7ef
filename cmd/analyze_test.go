// Test file for the analyze-results command.
package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/depscan/depscan/pkg/report"
	"github.com/depscan/depscan/pkg/scan"
)

// writeResultsFixture writes one scan result per document and a results file
// referencing them all, returning the results file path.
func writeResultsFixture(t *testing.T, docs map[string]string) string {
	t.Helper()
	dir := t.TempDir()

	var entries []string
	for targetDir, doc := range docs {
		path := filepath.Join(dir, scan.ResultFileName(targetDir))
		if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
			t.Fatalf("failed to write artifact: %v", err)
		}
		entries = append(entries, path)
	}

	resultsFile := filepath.Join(dir, scan.ResultsFileName)
	if err := scan.WriteResultsFile(resultsFile, entries); err != nil {
		t.Fatalf("failed to write results file: %v", err)
	}
	return resultsFile
}

func TestAnalyzeResults_FailsOnConcerning(t *testing.T) {
	defer resetFlags()()

	resultsFile := writeResultsFixture(t, map[string]string{
		"app":     `{"sbom":{"vulnerability_count":{"critical":0,"high":0,"medium":0,"other":0,"low":3}}}`,
		"app/web": `{"sbom":{"vulnerability_count":{"critical":1,"high":0,"medium":0,"other":0,"low":0}}}`,
	})

	rootCmd.SetArgs([]string{"analyze-results", "release", resultsFile, "--no-metrics"})

	var execErr error
	output := captureOutput(func() {
		execErr = rootCmd.Execute()
	})

	if !errors.Is(execErr, report.ErrVulnerabilitiesFound) {
		t.Fatalf("expected ErrVulnerabilitiesFound, got %v", execErr)
	}
	if !strings.Contains(output, "❌") {
		t.Errorf("expected fail marker, got:\n%s", output)
	}
	if !strings.Contains(output, "1 concerning") {
		t.Errorf("expected concerning total 1 in output, got:\n%s", output)
	}
}

func TestAnalyzeResults_PassesAllZero(t *testing.T) {
	defer resetFlags()()

	zero := `{"sbom":{"vulnerability_count":{"critical":0,"high":0,"medium":0,"other":0,"low":0}}}`
	resultsFile := writeResultsFixture(t, map[string]string{"a": zero, "b": zero, "c": zero})

	rootCmd.SetArgs([]string{"analyze-results", "release", resultsFile, "--no-metrics"})

	var execErr error
	output := captureOutput(func() {
		execErr = rootCmd.Execute()
	})

	if execErr != nil {
		t.Fatalf("expected pass, got %v", execErr)
	}
	if !strings.Contains(output, "✅") {
		t.Errorf("expected pass marker, got:\n%s", output)
	}
	if !strings.Contains(output, "low severity: 0") {
		t.Errorf("expected zero low count printed, got:\n%s", output)
	}
}

func TestAnalyzeResults_MissingArtifactTolerated(t *testing.T) {
	defer resetFlags()()

	dir := t.TempDir()
	artifact := filepath.Join(dir, scan.ResultFileName("app"))
	if err := os.WriteFile(artifact, []byte(`{"sbom":{"vulnerability_count":{"low":1}}}`), 0644); err != nil {
		t.Fatalf("failed to write artifact: %v", err)
	}
	resultsFile := filepath.Join(dir, scan.ResultsFileName)
	entries := []string{artifact, filepath.Join(dir, "vanished-scan-result.json")}
	if err := scan.WriteResultsFile(resultsFile, entries); err != nil {
		t.Fatalf("failed to write results file: %v", err)
	}

	rootCmd.SetArgs([]string{"analyze-results", "release", resultsFile, "--no-metrics"})

	var execErr error
	output := captureOutput(func() {
		execErr = rootCmd.Execute()
	})

	if execErr != nil {
		t.Fatalf("expected verdict from remaining artifacts, got %v", execErr)
	}
	if !strings.Contains(output, "⚠️") {
		t.Errorf("expected warning for missing artifact, got:\n%s", output)
	}
	if !strings.Contains(output, "✅") {
		t.Errorf("expected pass from remaining artifacts, got:\n%s", output)
	}
}

func TestAnalyzeResults_MissingResultsFileIsFatal(t *testing.T) {
	defer resetFlags()()

	rootCmd.SetArgs([]string{"analyze-results", "release", "no-such-repo", "--output-dir", t.TempDir(), "--no-metrics"})

	var execErr error
	captureOutput(func() {
		execErr = rootCmd.Execute()
	})

	if execErr == nil {
		t.Fatal("expected error for missing results file")
	}
	if errors.Is(execErr, report.ErrVulnerabilitiesFound) {
		t.Error("structural error must not be a verdict failure")
	}
	if !strings.Contains(execErr.Error(), "results file") {
		t.Errorf("expected results file error, got: %v", execErr)
	}
}

func TestUnknownVerbFails(t *testing.T) {
	defer resetFlags()()

	rootCmd.SetArgs([]string{"frobnicate"})

	var execErr error
	captureOutput(func() {
		execErr = rootCmd.Execute()
	})

	if execErr == nil {
		t.Fatal("expected error for unknown verb")
	}
}
