// Package report renders the human-readable breakdown of an analysis run and
// applies the pass/fail policy.
package report

import (
	"bytes"
	"errors"
	"text/template"

	"github.com/depscan/depscan/pkg/analysis"
)

// ErrVulnerabilitiesFound is returned by Verdict when the concerning total is
// non-zero. The CLI maps it to exit code 1 without an extra error line; the
// rendered breakdown is the failure message.
var ErrVulnerabilitiesFound = errors.New("concerning vulnerabilities found")

const reportTemplate = `{{- range .Results }}
{{ .Label }}:
  critical: {{ .Counts.Critical }}  high: {{ .Counts.High }}  medium: {{ .Counts.Medium }}  other: {{ .Counts.Other }}  low: {{ .Counts.Low }}
  concerning: {{ .Counts.Concerning }}
{{- range .Messages }}
{{- if .Purl }}
  {{ .Purl }}: {{ .Text }}
{{- else }}
  {{ .Text }}
{{- end }}
{{- end }}
{{ end -}}
{{- if .SkippedArtifacts }}
Skipped {{ len .SkippedArtifacts }} missing scan result(s)
{{ end -}}
Totals:
  critical: {{ .Totals.Critical }}  high: {{ .Totals.High }}  medium: {{ .Totals.Medium }}  other: {{ .Totals.Other }}  low: {{ .Totals.Low }}
{{ if eq .Totals.Concerning 0 -}}
✅ No concerning vulnerabilities found (low severity: {{ .Totals.Low }})
{{ else -}}
❌ {{ .Totals.Concerning }} concerning vulnerabilities found (critical+high+medium+other)
{{ end -}}
`

// Render produces the per-target and total severity breakdown plus the
// verdict line.
func Render(rep *analysis.Report) (string, error) {
	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, rep); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Verdict applies the pass/fail policy: pass if and only if the aggregate
// concerning count (critical+high+medium+other) is zero. Low findings never
// fail the scan.
func Verdict(rep *analysis.Report) error {
	if rep.Totals.Concerning() > 0 {
		return ErrVulnerabilitiesFound
	}
	return nil
}
