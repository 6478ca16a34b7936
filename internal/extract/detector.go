package extract

import "strings"

// IsExceptionHeader reports whether a classified message announces a
// thrown exception. Exclusions run first: stack-frame and elision lines
// are never headers, even when they embed an exception-like substring.
func (p *Patterns) IsExceptionHeader(message string) bool {
	trimmed := strings.TrimSpace(message)

	if strings.HasPrefix(trimmed, "at ") {
		return false
	}
	if p.elision.MatchString(trimmed) {
		return false
	}

	if p.headText.MatchString(trimmed) {
		return true
	}
	if p.causedBy.MatchString(trimmed) {
		return true
	}
	if strings.HasPrefix(trimmed, "Exception in thread") {
		return true
	}
	for _, prefix := range p.headerPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}

	return false
}

// IsStackFrame reports whether a raw line is an `at ...(File:Line)`
// trace entry or a bare `at ` continuation of one.
func (p *Patterns) IsStackFrame(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "at ")
}

// IsElision reports whether a raw line is a `... N more` marker.
func (p *Patterns) IsElision(line string) bool {
	return p.elision.MatchString(line)
}
