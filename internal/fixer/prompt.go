package fixer

import (
	"fmt"
	"strings"

	"github.com/Artem819/StackTrack/internal/domain"
)

const systemPrompt = `You are a senior JVM engineer. You are given one exception extracted ` +
	`from an application log: its type, message, head stack frame and surrounding context. ` +
	`Respond with a single JSON object and nothing else, using exactly these keys: ` +
	`root_cause (string), fix_description (string), ` +
	`code_suggestions (array of {file, description, code}), ` +
	`prevention_tips (array of strings), confidence_score (number between 0 and 1).`

// maxTraceLines bounds the trace sent to the model; deep traces add
// tokens without adding signal beyond the first frames.
const maxTraceLines = 15

func buildPrompt(rec domain.ExceptionRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Exception type: %s\n", rec.ExceptionType)
	fmt.Fprintf(&b, "Message: %s\n", rec.ExceptionMessage)
	if rec.Timestamp != "" {
		fmt.Fprintf(&b, "Timestamp: %s\n", rec.Timestamp)
	}
	if rec.FilePath != "" {
		fmt.Fprintf(&b, "Location: %s.%s() at %s:%d\n", rec.ClassName, rec.MethodName, rec.FilePath, rec.LineNumber)
	}

	if len(rec.Context) > 0 {
		b.WriteString("\nPreceding log lines:\n")
		for _, line := range rec.Context {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	if len(rec.StackTrace) > 0 {
		b.WriteString("\nStack trace:\n")
		trace := rec.StackTrace
		if len(trace) > maxTraceLines {
			trace = trace[:maxTraceLines]
		}
		for _, line := range trace {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	return b.String()
}
