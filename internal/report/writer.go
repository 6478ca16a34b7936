package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/Artem819/StackTrack/internal/domain"
)

// Render produces the markdown analysis report for one pass. The block
// layout (Summary bullets, `### Exception N:` and `### Fix N:`
// headings, fenced stack traces) is the format Parse recovers.
func Render(logFile string, recs []domain.ExceptionRecord, fixes []domain.CodeFix, now time.Time) string {
	var b strings.Builder

	b.WriteString("# Log Analysis Report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", now.Format("2006-01-02 15:04:05"))

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- **Log File**: %s\n", logFile)
	fmt.Fprintf(&b, "- **Total Exceptions Found**: %d\n", len(recs))
	fmt.Fprintf(&b, "- **Code Fixes Generated**: %d\n\n", len(fixes))

	b.WriteString("## Exceptions\n\n")
	for i, rec := range recs {
		fmt.Fprintf(&b, "### Exception %d: %s\n\n", i+1, rec.ExceptionType)
		fmt.Fprintf(&b, "**Message**: %s\n", rec.ExceptionMessage)
		if rec.Timestamp != "" {
			fmt.Fprintf(&b, "**Timestamp**: %s\n", rec.Timestamp)
		}
		if rec.FilePath != "" {
			fmt.Fprintf(&b, "**Location**: %s.%s() at %s:%d\n", rec.ClassName, rec.MethodName, rec.FilePath, rec.LineNumber)
		}
		if len(rec.StackTrace) > 0 {
			b.WriteString("**Stack Trace**:\n```\n")
			for _, line := range rec.StackTrace {
				b.WriteString(line)
				b.WriteByte('\n')
			}
			b.WriteString("```\n")
		}
		if len(rec.Context) > 0 {
			b.WriteString("**Context**:\n```\n")
			for _, line := range rec.Context {
				b.WriteString(line)
				b.WriteByte('\n')
			}
			b.WriteString("```\n")
		}
		b.WriteByte('\n')
	}

	if len(fixes) > 0 {
		b.WriteString("## Code Fix Recommendations\n\n")
		for i, fix := range fixes {
			fmt.Fprintf(&b, "### Fix %d: %s\n\n", i+1, fix.ExceptionType)
			fmt.Fprintf(&b, "**Root Cause**: %s\n\n", fix.RootCause)
			fmt.Fprintf(&b, "**Fix**: %s\n\n", fix.FixDescription)
			for _, sug := range fix.CodeSuggestions {
				fmt.Fprintf(&b, "**Suggested change** (%s): %s\n\n", sug.File, sug.Description)
				if sug.Code != "" {
					fmt.Fprintf(&b, "```java\n%s\n```\n\n", sug.Code)
				}
			}
			if len(fix.PreventionTips) > 0 {
				b.WriteString("**Prevention**:\n")
				for _, tip := range fix.PreventionTips {
					fmt.Fprintf(&b, "- %s\n", tip)
				}
				b.WriteByte('\n')
			}
			fmt.Fprintf(&b, "**Confidence**: %.2f\n\n", fix.ConfidenceScore)
		}
	}

	return b.String()
}
