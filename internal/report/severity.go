package report

import "strings"

const (
	SeverityCritical = "Critical"
	SeverityHigh     = "High"
	SeverityMedium   = "Medium"
	SeverityLow      = "Low"
)

// SeverityLevels is the fixed ordering used by aggregation and the
// dashboard heatmap rows.
var SeverityLevels = []string{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}

// InferSeverity buckets an exception by type and message heuristics.
func InferSeverity(excType, message string) string {
	t := strings.ToLower(excType)
	m := strings.ToLower(message)

	if strings.Contains(t, "dataaccessresourcefailure") ||
		(strings.Contains(t, "sql") && (strings.Contains(m, "connection refused") || strings.Contains(m, "timeout"))) {
		return SeverityCritical
	}
	if strings.Contains(t, "ioexception") && (strings.Contains(m, "no space") || strings.Contains(m, "disk")) {
		return SeverityCritical
	}
	if strings.Contains(t, "outofmemory") {
		return SeverityCritical
	}
	if strings.Contains(t, "nullpointer") {
		return SeverityHigh
	}
	if strings.Contains(t, "illegalargument") {
		return SeverityMedium
	}
	return SeverityLow
}
