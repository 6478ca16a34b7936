package extract

import (
	"strings"

	"github.com/Artem819/StackTrack/internal/domain"
)

// Classify tags one line, terminator already stripped. Blank lines
// yield ok=false and are dropped. The formats are tried in order, first
// match wins; a line matching none of them becomes a continuation
// record whose message is the raw line. Classification never fails.
func (p *Patterns) Classify(raw string) (domain.ClassifiedLine, bool) {
	if strings.TrimSpace(raw) == "" {
		return domain.ClassifiedLine{}, false
	}

	for _, f := range p.lineFormats {
		m := f.re.FindStringSubmatch(raw)
		if m == nil {
			continue
		}
		ts, level, msg := f.extract(m)
		return domain.ClassifiedLine{
			Timestamp: ts,
			Level:     level,
			Message:   msg,
			Raw:       raw,
		}, true
	}

	return domain.ClassifiedLine{
		Message:        raw,
		Raw:            raw,
		IsContinuation: true,
	}, true
}

// ClassifyAll classifies a full line sequence, dropping blanks.
func (p *Patterns) ClassifyAll(lines []string) []domain.ClassifiedLine {
	out := make([]domain.ClassifiedLine, 0, len(lines))
	for _, raw := range lines {
		cl, ok := p.Classify(raw)
		if !ok {
			continue
		}
		out = append(out, cl)
	}
	return out
}
