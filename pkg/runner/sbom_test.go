package runner

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestSbomRunner_Args(t *testing.T) {
	r := &SbomRunner{Binary: "cyclonedx-npm"}

	tests := []struct {
		name       string
		tolerant   bool
		wantIgnore bool
	}{
		{"root target gets no tolerance flag", false, false},
		{"non-root target gets tolerance flag", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := r.args("/tmp/out.json", tt.tolerant)

			for _, want := range []string{"--omit", "dev", "--output-reproducible", "--output-file", "/tmp/out.json"} {
				if !slices.Contains(args, want) {
					t.Errorf("expected %q in args %v", want, args)
				}
			}
			i := slices.Index(args, "--spec-version")
			if i < 0 || i+1 >= len(args) || args[i+1] != "1.5" {
				t.Errorf("expected pinned spec version 1.5 in args %v", args)
			}
			if got := slices.Contains(args, "--ignore-npm-errors"); got != tt.wantIgnore {
				t.Errorf("--ignore-npm-errors present = %v, want %v (args %v)", got, tt.wantIgnore, args)
			}
		})
	}
}

func TestSbomRunner_Generate(t *testing.T) {
	tmp := t.TempDir()
	workDir := filepath.Join(tmp, "project")
	if err := os.Mkdir(workDir, 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	// Stub generator: records its working directory and writes the SBOM to
	// the --output-file argument.
	stub := filepath.Join(tmp, "sbom-stub")
	script := `#!/bin/sh
pwd > "$PWD_LOG"
out=""
prev=""
for a in "$@"; do
  if [ "$prev" = "--output-file" ]; then out="$a"; fi
  prev="$a"
done
echo '{"bomFormat":"CycloneDX"}' > "$out"
`
	if err := os.WriteFile(stub, []byte(script), 0755); err != nil {
		t.Fatalf("failed to write stub: %v", err)
	}
	pwdLog := filepath.Join(tmp, "pwd.log")
	t.Setenv("PWD_LOG", pwdLog)

	outFile := filepath.Join(tmp, "project-sbom.json")
	r := &SbomRunner{Binary: stub}
	if err := r.Generate(context.Background(), workDir, outFile, false, false); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("expected SBOM file to exist: %v", err)
	}
	if !strings.Contains(string(data), "CycloneDX") {
		t.Errorf("unexpected SBOM content: %s", data)
	}

	loggedDir, err := os.ReadFile(pwdLog)
	if err != nil {
		t.Fatalf("expected pwd log: %v", err)
	}
	if !strings.Contains(string(loggedDir), "project") {
		t.Errorf("expected generator to run inside target dir, ran in %s", loggedDir)
	}
}

func TestSbomRunner_GenerateFails(t *testing.T) {
	tmp := t.TempDir()
	stub := filepath.Join(tmp, "sbom-stub")
	if err := os.WriteFile(stub, []byte("#!/bin/sh\necho 'npm ERR! broken' >&2\nexit 1\n"), 0755); err != nil {
		t.Fatalf("failed to write stub: %v", err)
	}

	r := &SbomRunner{Binary: stub}
	err := r.Generate(context.Background(), tmp, filepath.Join(tmp, "out.json"), false, false)
	if err == nil {
		t.Fatal("expected error from failing generator")
	}
	if !strings.Contains(err.Error(), "npm ERR!") {
		t.Errorf("expected generator stderr in error, got: %v", err)
	}
}
