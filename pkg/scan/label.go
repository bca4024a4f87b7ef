package scan

import (
	"path/filepath"
	"strings"
)

// Artifact name suffixes. Distinct per artifact type so an SBOM and its scan
// result never collide under the same encoded directory label.
const (
	SbomSuffix   = "-sbom.json"
	ResultSuffix = "-scan-result.json"
)

const labelSeparator = "_"

// EncodeDirLabel maps a target directory path to a filename-safe label by
// replacing path separators. DecodeDirLabel reverses it. A directory whose
// name itself contains an underscore decodes to a readable label rather than
// the exact original path, which is all the display side needs.
func EncodeDirLabel(dir string) string {
	return strings.ReplaceAll(filepath.ToSlash(dir), "/", labelSeparator)
}

// DecodeDirLabel recovers a display label from an artifact filename produced
// with EncodeDirLabel and one of the artifact suffixes.
func DecodeDirLabel(name string) string {
	name = filepath.Base(name)
	name = strings.TrimSuffix(name, ResultSuffix)
	name = strings.TrimSuffix(name, SbomSuffix)
	return strings.ReplaceAll(name, labelSeparator, "/")
}

// SbomFileName returns the SBOM artifact name for a target directory.
func SbomFileName(dir string) string {
	return EncodeDirLabel(dir) + SbomSuffix
}

// ResultFileName returns the scan result artifact name for a target directory.
func ResultFileName(dir string) string {
	return EncodeDirLabel(dir) + ResultSuffix
}
