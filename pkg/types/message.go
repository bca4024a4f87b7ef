package types

// ScanMessage is one advisory entry from the scanner's response. At most one
// of the message fields is set per entry.
type ScanMessage struct {
	Purl                 string `json:"purl,omitempty"`
	VulnerabilityMessage string `json:"vulnerability_message,omitempty"`
	ErrorMessage         string `json:"error_message,omitempty"`
	InfoMessage          string `json:"info_message,omitempty"`
}

// Text returns whichever message field is set, vulnerability first.
func (m ScanMessage) Text() string {
	if m.VulnerabilityMessage != "" {
		return m.VulnerabilityMessage
	}
	if m.ErrorMessage != "" {
		return m.ErrorMessage
	}
	return m.InfoMessage
}
