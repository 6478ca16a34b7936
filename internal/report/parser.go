package report

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// The report re-parser is deliberately looser than the log extraction
// engine: every field except the index and type of an exception block
// may be missing, and unknown sections are ignored.
var (
	exceptionBlockRe = regexp.MustCompile(
		`(?ms)^###\s*Exception\s*(\d+):\s*([^\n]+?)\s*?\n+` +
			`(?:\*\*Message\*\*:\s*(.*?)\n)?` +
			`(?:\*\*Timestamp\*\*:\s*(.*?)\n)?` +
			`(?:\*\*Location\*\*:\s*(.*?)\n)?` +
			`(?:\*\*Stack Trace\*\*.*?` + "```" + `(.*?)` + "```" + `)?`)

	summaryRe = regexp.MustCompile(
		`(?si)##\s*Summary.*?` +
			`-\s*\*\*Log File\*\*:\s*(.*?)\n` +
			`-\s*\*\*Total Exceptions Found\*\*:\s*(\d+)\n` +
			`-\s*\*\*Code Fixes Generated\*\*:\s*(\d+)`)

	fixHeadingRe = regexp.MustCompile(`(?m)^###\s*Fix\s*\d+:`)
)

var timestampLayouts = []string{
	"2006-01-02 15:04:05.000",
	"2006-01-02 15:04:05,000",
	"2006-01-02 15:04:05",
	"02-01-2006 15:04:05",
	"02/01/2006 15:04:05",
	"2006-01-02T15:04:05",
}

// Summary is the declared totals block of a rendered report.
type Summary struct {
	LogFile        string
	TotalDeclared  int
	FixesDeclared  int
	SummaryPresent bool
}

// ParseTimestamp tries the known layouts and returns a unix timestamp,
// nil when none matched.
func ParseTimestamp(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			ts := float64(t.Unix())
			return &ts
		}
	}
	return nil
}

// ParseSummary recovers the Summary block; absent blocks leave the
// zero value with SummaryPresent false.
func ParseSummary(text string) Summary {
	m := summaryRe.FindStringSubmatch(text)
	if m == nil {
		return Summary{}
	}
	total, _ := strconv.Atoi(m[2])
	fixes, _ := strconv.Atoi(m[3])
	return Summary{
		LogFile:        strings.TrimSpace(m[1]),
		TotalDeclared:  total,
		FixesDeclared:  fixes,
		SummaryPresent: true,
	}
}

// CountFixes counts `### Fix N:` headings, the fallback when the
// summary omits a declared fix count.
func CountFixes(text string) int {
	return len(fixHeadingRe.FindAllString(text, -1))
}
