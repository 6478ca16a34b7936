package fixer

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/Artem819/StackTrack/internal/domain"
	"github.com/Artem819/StackTrack/internal/metrics"
)

// mainTraceLen is the minimum trace length for an exception to be
// worth a generated fix; shorter blocks are usually re-detected causes.
const mainTraceLen = 5

// LLM is the completion interface the fixer depends on.
type LLM interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Fixer turns extracted exception records into code fix suggestions.
// LLM failures never fail an analysis pass: a heuristic fallback fix
// with low confidence stands in for the model's answer.
type Fixer struct {
	llm      LLM
	counters *metrics.Counters
}

func New(llm LLM, cnt *metrics.Counters) *Fixer {
	return &Fixer{
		llm:      llm,
		counters: cnt,
	}
}

// AnalyzeException generates one fix for one record.
func (f *Fixer) AnalyzeException(ctx context.Context, rec domain.ExceptionRecord) domain.CodeFix {
	raw, err := f.llm.Complete(ctx, systemPrompt, buildPrompt(rec))
	if err != nil {
		log.WithFields(log.Fields{
			"exception_type": rec.ExceptionType,
			"error":          err,
		}).Warn("Fix generation failed, using fallback")
		f.counters.FixesGenerated.Inc(rec.ExceptionType, "fallback")
		return fallbackFix(rec)
	}

	fix, err := parseFix(raw, rec)
	if err != nil {
		log.WithFields(log.Fields{
			"exception_type": rec.ExceptionType,
			"error":          err,
		}).Warn("Unparsable fix response, using fallback")
		f.counters.FixesGenerated.Inc(rec.ExceptionType, "fallback")
		return fallbackFix(rec)
	}

	f.counters.FixesGenerated.Inc(rec.ExceptionType, "ok")
	return fix
}

// ShouldAnalyze reports whether a record is a main exception worth a
// generated fix.
func (f *Fixer) ShouldAnalyze(rec domain.ExceptionRecord) bool {
	return len(rec.StackTrace) > mainTraceLen
}

// AnalyzeMany generates fixes for the main exceptions of a pass.
func (f *Fixer) AnalyzeMany(ctx context.Context, recs []domain.ExceptionRecord) []domain.CodeFix {
	fixes := make([]domain.CodeFix, 0, len(recs))
	for _, rec := range recs {
		if !f.ShouldAnalyze(rec) {
			continue
		}
		fixes = append(fixes, f.AnalyzeException(ctx, rec))
	}
	return fixes
}

// fallbackFix is the answer of last resort when the model is
// unreachable or returned garbage.
func fallbackFix(rec domain.ExceptionRecord) domain.CodeFix {
	return domain.CodeFix{
		ExceptionType:  rec.ExceptionType,
		RootCause:      "Automatic analysis unavailable; inspect the head frame and the surrounding log context manually.",
		FixDescription: "Review " + rec.FilePath + " around the reported line and handle the failure path explicitly.",
		PreventionTips: []string{
			"Add a regression test reproducing this exception.",
			"Guard the failing call site against the observed input.",
		},
		ConfidenceScore: 0.2,
	}
}
