package types

// Severity is one of the five fixed buckets the scanning service classifies
// findings into.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityOther    Severity = "other"
	SeverityLow      Severity = "low"
)

// Severities returns the buckets in display order, most severe first.
func Severities() []Severity {
	return []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityOther, SeverityLow}
}

// VulnerabilityCount holds one count per severity bucket.
type VulnerabilityCount struct {
	Critical int
	High     int
	Medium   int
	Other    int
	Low      int
}

// Get returns the count for a single bucket.
func (c VulnerabilityCount) Get(s Severity) int {
	switch s {
	case SeverityCritical:
		return c.Critical
	case SeverityHigh:
		return c.High
	case SeverityMedium:
		return c.Medium
	case SeverityOther:
		return c.Other
	case SeverityLow:
		return c.Low
	}
	return 0
}

// Concerning returns critical+high+medium+other. Low findings never count
// toward the verdict.
func (c VulnerabilityCount) Concerning() int {
	return c.Critical + c.High + c.Medium + c.Other
}

// Add accumulates another count into c.
func (c *VulnerabilityCount) Add(o VulnerabilityCount) {
	c.Critical += o.Critical
	c.High += o.High
	c.Medium += o.Medium
	c.Other += o.Other
	c.Low += o.Low
}
