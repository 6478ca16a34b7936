package fixer

import (
	"encoding/json"
	"strings"

	errorsUtils "github.com/Artem819/StackTrack/pkg/errors"

	"github.com/Artem819/StackTrack/internal/domain"
)

// parseFix decodes a model response into a CodeFix. Tolerates a fenced
// ```json block around the object; clamps the confidence into [0, 1].
func parseFix(raw string, rec domain.ExceptionRecord) (domain.CodeFix, error) {
	var fix domain.CodeFix
	if err := json.Unmarshal([]byte(stripFence(raw)), &fix); err != nil {
		return domain.CodeFix{}, errorsUtils.WrapPathErr(err)
	}

	fix.ExceptionType = rec.ExceptionType

	if fix.ConfidenceScore < 0 {
		fix.ConfidenceScore = 0
	}
	if fix.ConfidenceScore > 1 {
		fix.ConfidenceScore = 1
	}

	return fix, nil
}

func stripFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	if idx := strings.LastIndex(s, "```"); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
