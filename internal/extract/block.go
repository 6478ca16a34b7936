package extract

import (
	"fmt"
	"strings"

	"github.com/Artem819/StackTrack/internal/domain"
)

// contextWindow is the fixed lookback of raw lines kept before a header.
const contextWindow = 5

// ExtractBlock assembles the exception record starting at the confirmed
// header lines[index]. Trace lines are absorbed greedily from index+1:
// stack frames, elision markers, `Caused by:` lines and non-empty
// continuations belong to the block; the first line matching none of
// these halts absorption and is left for the driver. The returned next
// index is the position of that halting line.
func (p *Patterns) ExtractBlock(lines []domain.ClassifiedLine, index int) (domain.ExceptionRecord, int, error) {
	if index < 0 || index >= len(lines) {
		return domain.ExceptionRecord{}, index, fmt.Errorf("header index %d out of range (%d lines)", index, len(lines))
	}

	header := lines[index]

	rec := domain.ExceptionRecord{
		Timestamp: header.Timestamp,
		Level:     header.Level,
	}

	rec.ExceptionType, rec.ExceptionMessage = p.splitTypeMessage(header.Message)

	// Context window, oldest-first, never reaching before the file start.
	start := index - contextWindow
	if start < 0 {
		start = 0
	}
	rec.Context = make([]string, 0, index-start)
	for i := start; i < index; i++ {
		rec.Context = append(rec.Context, lines[i].Raw)
	}

	next := index + 1
	for next < len(lines) {
		if !p.belongsToBlock(lines[next]) {
			break
		}
		rec.StackTrace = append(rec.StackTrace, lines[next].Raw)
		next++
	}

	// Head location comes from the first trace entry only; later frames
	// stay raw. A first entry that is not a frame leaves location unset.
	if len(rec.StackTrace) > 0 {
		if frame, err := p.ParseFrame(rec.StackTrace[0]); err == nil {
			rec.FilePath = frame.File
			rec.LineNumber = frame.Line
			rec.MethodName = frame.MethodName
			rec.ClassName = frame.ClassName
		}
	}

	return rec, next, nil
}

// splitTypeMessage applies the cause/type signature to a header
// message. No match falls back to type Unknown with the message intact.
func (p *Patterns) splitTypeMessage(message string) (string, string) {
	m := p.typeSig.FindStringSubmatch(message)
	if m == nil {
		return "Unknown", message
	}
	return m[1], m[2]
}

func (p *Patterns) belongsToBlock(line domain.ClassifiedLine) bool {
	if p.IsStackFrame(line.Raw) || p.IsElision(line.Raw) {
		return true
	}
	if strings.Contains(line.Raw, "Caused by:") {
		return true
	}
	return line.IsContinuation && strings.TrimSpace(line.Raw) != ""
}
