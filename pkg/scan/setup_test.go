// Shared helpers for scan tests.
package scan

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// captureOutput redirects os.Stdout for the duration of f and returns what
// was written.
func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// makeTarget creates dir under root, with a package-lock.json unless
// withoutLock is set.
func makeTarget(t *testing.T, root, dir string, withoutLock bool) {
	t.Helper()
	full := filepath.Join(root, dir)
	if err := os.MkdirAll(full, 0755); err != nil {
		t.Fatalf("failed to create %s: %v", full, err)
	}
	if withoutLock {
		return
	}
	if err := os.WriteFile(filepath.Join(full, ManifestFileName), []byte("{}"), 0644); err != nil {
		t.Fatalf("failed to write lockfile: %v", err)
	}
}
