package extract

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Artem819/StackTrack/internal/domain"
)

// ParseFrame parses one `at Qualifier(File:Line)` stack line into a
// StackFrame. ClassName and MethodName come from splitting the
// qualifier on its last dot; a qualifier with no dot keeps the whole
// text as the method name with an empty class name.
func (p *Patterns) ParseFrame(line string) (domain.StackFrame, error) {
	m := p.frame.FindStringSubmatch(line)
	if m == nil {
		return domain.StackFrame{}, fmt.Errorf("not a stack frame line: %q", line)
	}

	lineNo, err := strconv.Atoi(m[3])
	if err != nil {
		return domain.StackFrame{}, fmt.Errorf("invalid frame line number %q: %w", m[3], err)
	}

	frame := domain.StackFrame{
		Qualifier: m[1],
		File:      m[2],
		Line:      lineNo,
	}

	if idx := strings.LastIndex(frame.Qualifier, "."); idx >= 0 {
		frame.ClassName = frame.Qualifier[:idx]
		frame.MethodName = frame.Qualifier[idx+1:]
	} else {
		frame.MethodName = frame.Qualifier
	}

	return frame, nil
}
