package scan

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/depscan/depscan/pkg/config"
)

// ManifestFileName is the lockfile that qualifies a directory for scanning.
const ManifestFileName = "package-lock.json"

// Locate filters the configured targets down to those whose directory exists
// and contains a package-lock.json. Anything else is skipped with a warning,
// not an error: a directory legitimately may not apply to every release
// configuration. Configuration order is preserved.
func Locate(targets []config.Target) []config.Target {
	located := make([]config.Target, 0, len(targets))
	for _, t := range targets {
		info, err := os.Stat(t.Path)
		if err != nil || !info.IsDir() {
			fmt.Printf("⚠️ Warning: directory %s not found, skipping\n", t.Path)
			continue
		}
		if _, err := os.Stat(filepath.Join(t.Path, ManifestFileName)); err != nil {
			fmt.Printf("⚠️ Warning: no %s in %s, skipping\n", ManifestFileName, t.Path)
			continue
		}
		located = append(located, t)
	}
	return located
}
