// Package config holds the scan target list and external tool settings.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Category controls how a target's SBOM generation is invoked. Non-root
// manifests are known to emit benign npm errors, so their generation runs
// with error tolerance; an error in the root manifest is meaningful.
type Category string

const (
	CategoryRoot    Category = "root"
	CategoryNonRoot Category = "non-root"
)

// Target is one directory to scan. Path is relative to the invocation
// working directory and may contain path separators.
type Target struct {
	Path     string   `yaml:"path"`
	Category Category `yaml:"category"`
}

// Tolerant reports whether SBOM generation for this target should ignore
// manifest-tool errors.
func (t Target) Tolerant() bool {
	return t.Category == CategoryNonRoot
}

// Config is the full pipeline configuration.
type Config struct {
	Targets          []Target `yaml:"targets"`
	SbomTool         string   `yaml:"sbom_tool"`
	ScanTool         string   `yaml:"scan_tool"`
	MetricsNamespace string   `yaml:"metrics_namespace"`
}

// Default returns the built-in configuration: the editor source root plus its
// remote, extensions, and remote web trees.
func Default() *Config {
	return &Config{
		Targets: []Target{
			{Path: "code-editor-src", Category: CategoryRoot},
			{Path: "code-editor-src/remote", Category: CategoryNonRoot},
			{Path: "code-editor-src/extensions", Category: CategoryNonRoot},
			{Path: "code-editor-src/remote/web", Category: CategoryNonRoot},
		},
		SbomTool:         "cyclonedx-npm",
		ScanTool:         "sbom-scan",
		MetricsNamespace: "DependencyScanning",
	}
}

// Load reads a YAML config file layered over the defaults. A targets list in
// the file replaces the default list entirely; other fields fall back to
// their defaults when unset.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	for i, t := range cfg.Targets {
		if t.Path == "" {
			return nil, fmt.Errorf("config file %s: target %d has no path", path, i)
		}
		switch t.Category {
		case CategoryRoot, CategoryNonRoot:
		case "":
			// Unset category defaults to the tolerant mode.
			cfg.Targets[i].Category = CategoryNonRoot
		default:
			return nil, fmt.Errorf("config file %s: target %s has unknown category %q", path, t.Path, t.Category)
		}
	}

	return cfg, nil
}
