package analysis

import (
	"encoding/json"
	"log/slog"

	"github.com/depscan/depscan/pkg/types"
)

// extractCounts pulls the five severity counts and any advisory messages out
// of a raw scan result document. It never fails: the scanner is an external
// dependency whose output shape cannot be fully guaranteed, so an
// unparseable document, an absent field, or a non-numeric value all count as
// zero for the affected buckets.
func extractCounts(data []byte) (types.VulnerabilityCount, []types.ScanMessage) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		slog.Warn("unparseable scan result, counting as zero", "error", err)
		return types.VulnerabilityCount{}, nil
	}

	sbom, _ := doc["sbom"].(map[string]any)
	raw, _ := sbom["vulnerability_count"].(map[string]any)
	counts := types.VulnerabilityCount{
		Critical: asCount(raw[string(types.SeverityCritical)]),
		High:     asCount(raw[string(types.SeverityHigh)]),
		Medium:   asCount(raw[string(types.SeverityMedium)]),
		Other:    asCount(raw[string(types.SeverityOther)]),
		Low:      asCount(raw[string(types.SeverityLow)]),
	}

	var msgs []types.ScanMessage
	rawMsgs, _ := sbom["messages"].([]any)
	for _, rm := range rawMsgs {
		m, ok := rm.(map[string]any)
		if !ok {
			continue
		}
		msgs = append(msgs, types.ScanMessage{
			Purl:                 asString(m["purl"]),
			VulnerabilityMessage: asString(m["vulnerability_message"]),
			ErrorMessage:         asString(m["error_message"]),
			InfoMessage:          asString(m["info_message"]),
		})
	}

	return counts, msgs
}

// asCount coerces a decoded JSON value to a non-negative count; anything
// non-numeric counts as zero.
func asCount(v any) int {
	n, ok := v.(float64)
	if !ok || n < 0 {
		return 0
	}
	return int(n)
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
