package service

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Artem819/StackTrack/internal/broker"
	"github.com/Artem819/StackTrack/internal/domain"
	"github.com/Artem819/StackTrack/internal/extract"
	"github.com/Artem819/StackTrack/internal/metrics"
	"github.com/Artem819/StackTrack/internal/repo"
	"github.com/Artem819/StackTrack/internal/repo/repotypes"
	"github.com/Artem819/StackTrack/internal/report"
	errorsUtils "github.com/Artem819/StackTrack/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// AnalyzerService orchestrates one analysis pass: read the log file,
// extract exception records, generate fixes for the main exceptions,
// persist everything, publish records to the broker and write the
// markdown report. Persistence and publishing are best effort; a down
// database or broker degrades a pass, it does not abort it.
type AnalyzerService struct {
	exceptionRepo repo.Exception
	counters      *metrics.Counters
	producer      broker.Producer
	fixer         FixGenerator
	scanner       *extract.Scanner
	reportDir     string
}

func NewAnalyzerService(er repo.Exception, cnt *metrics.Counters, p broker.Producer, f FixGenerator, sc *extract.Scanner, reportDir string) *AnalyzerService {
	if sc == nil {
		sc = extract.NewScanner(extract.NewPatterns())
	}
	if reportDir == "" {
		reportDir = "."
	}
	return &AnalyzerService{
		exceptionRepo: er,
		counters:      cnt,
		producer:      p,
		fixer:         f,
		scanner:       sc,
		reportDir:     reportDir,
	}
}

func (s *AnalyzerService) AnalyzeLogFile(ctx context.Context, path string) (domain.AnalysisResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.AnalysisResult{}, errorsUtils.WrapPathErr(ErrLogFileNotFound)
		}
		return domain.AnalysisResult{}, errorsUtils.WrapPathErr(err)
	}

	scan := s.scanner.ScanLines(strings.Split(string(data), "\n"))

	log.WithFields(log.Fields{
		"log_file":   path,
		"exceptions": len(scan.Records),
		"skipped":    scan.Skipped,
	}).Info("Extraction pass finished")

	var fixes []domain.CodeFix
	for i := range scan.Records {
		rec := &scan.Records[i]
		s.counters.ExceptionsExtracted.Inc(rec.ExceptionType, rec.Level)

		id := s.persistRecord(ctx, rec)
		s.publishRecord(ctx, rec)

		if s.fixer == nil || !s.fixer.ShouldAnalyze(*rec) {
			continue
		}
		fix := s.fixer.AnalyzeException(ctx, *rec)
		fixes = append(fixes, fix)
		s.persistFix(ctx, id, &fix)
	}

	reportPath, err := s.writeReport(path, scan.Records, fixes)
	if err != nil {
		return domain.AnalysisResult{}, err
	}

	return domain.AnalysisResult{
		LogFile:         path,
		TotalExceptions: len(scan.Records),
		TotalFixes:      len(fixes),
		SkippedHeaders:  scan.Skipped,
		ReportPath:      reportPath,
		Exceptions:      scan.Records,
		Fixes:           fixes,
	}, nil
}

func (s *AnalyzerService) GetRecords(ctx context.Context, filter repotypes.RecordFilter) ([]domain.ExceptionRecord, error) {
	recs, err := s.exceptionRepo.GetRecords(ctx, filter)
	if err != nil {
		return []domain.ExceptionRecord{}, err
	}
	return recs, nil
}

func (s *AnalyzerService) GetStatsByType(ctx context.Context) ([]domain.TypeStats, error) {
	stats, err := s.exceptionRepo.GetStatsByType(ctx)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *AnalyzerService) persistRecord(ctx context.Context, rec *domain.ExceptionRecord) int {
	if s.exceptionRepo == nil {
		return 0
	}
	id, err := s.exceptionRepo.SaveRecord(ctx, rec)
	if err != nil {
		log.WithFields(log.Fields{
			"exception_type": rec.ExceptionType,
			"error":          err,
		}).Error("Failed to persist exception record")
		return 0
	}
	return id
}

func (s *AnalyzerService) persistFix(ctx context.Context, recordID int, fix *domain.CodeFix) {
	if s.exceptionRepo == nil || recordID == 0 {
		return
	}
	if _, err := s.exceptionRepo.SaveFix(ctx, recordID, fix); err != nil {
		log.WithFields(log.Fields{
			"exception_type": fix.ExceptionType,
			"record_id":      recordID,
			"error":          err,
		}).Error("Failed to persist code fix")
	}
}

func (s *AnalyzerService) publishRecord(ctx context.Context, rec *domain.ExceptionRecord) {
	if s.producer == nil {
		return
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		log.Errorf("Failed to encode exception event: %v", err)
		return
	}
	if err := s.producer.SendMessage(ctx, payload); err != nil {
		log.WithFields(log.Fields{
			"exception_type": rec.ExceptionType,
			"error":          err,
		}).Error("Failed to publish exception event")
	}
}

func (s *AnalyzerService) writeReport(logPath string, recs []domain.ExceptionRecord, fixes []domain.CodeFix) (string, error) {
	base := filepath.Base(logPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	reportPath := filepath.Join(s.reportDir, "analysis_report_"+stem+".md")

	text := report.Render(logPath, recs, fixes, time.Now())
	if err := os.WriteFile(reportPath, []byte(text), 0o644); err != nil {
		return "", errorsUtils.WrapPathErr(ErrCannotWriteReport)
	}

	log.WithField("report", reportPath).Info("Analysis report written")
	return reportPath, nil
}
