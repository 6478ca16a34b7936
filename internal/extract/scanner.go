package extract

import (
	log "github.com/sirupsen/logrus"

	"github.com/Artem819/StackTrack/internal/domain"
)

// ScanResult is the outcome of one pass over one file's lines.
type ScanResult struct {
	Records []domain.ExceptionRecord
	// Skipped counts headers whose block extraction failed. A bad
	// block never aborts the pass.
	Skipped int
}

// Scanner drives the extraction: a single forward scan over the
// classified lines, handing every detected header to the block
// extractor. The scanner holds no mutable state; one instance may be
// shared across goroutines analyzing independent files.
type Scanner struct {
	patterns *Patterns
}

func NewScanner(p *Patterns) *Scanner {
	return &Scanner{patterns: p}
}

func (s *Scanner) Patterns() *Patterns {
	return s.patterns
}

// ScanLines classifies raw lines and extracts all exception records in
// source order.
func (s *Scanner) ScanLines(lines []string) ScanResult {
	return s.Scan(s.patterns.ClassifyAll(lines))
}

// Scan walks the classified lines left to right. After extracting a
// block the scan resumes at the index after the header, not after the
// block: a `Caused by:` line absorbed into a previous record's trace is
// re-detected as its own header and produces its own record. That
// duplication is kept deliberately; downstream consumers rely on nested
// causes surfacing as records of their own.
func (s *Scanner) Scan(lines []domain.ClassifiedLine) ScanResult {
	var res ScanResult

	for i := 0; i < len(lines); i++ {
		if !s.patterns.IsExceptionHeader(lines[i].Message) {
			continue
		}

		rec, _, err := s.patterns.ExtractBlock(lines, i)
		if err != nil {
			res.Skipped++
			log.WithFields(log.Fields{
				"index": i,
				"error": err,
			}).Warn("Skipping unextractable exception block")
			continue
		}
		res.Records = append(res.Records, rec)
	}

	return res
}
