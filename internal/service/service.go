package service

import (
	"context"

	"github.com/Artem819/StackTrack/internal/broker"
	"github.com/Artem819/StackTrack/internal/domain"
	"github.com/Artem819/StackTrack/internal/extract"
	"github.com/Artem819/StackTrack/internal/metrics"
	"github.com/Artem819/StackTrack/internal/repo"
	"github.com/Artem819/StackTrack/internal/repo/repotypes"
)

// Analyzer runs extraction passes over Spring Boot log files and
// exposes the stored results.
type Analyzer interface {
	AnalyzeLogFile(ctx context.Context, path string) (domain.AnalysisResult, error)
	GetRecords(ctx context.Context, filter repotypes.RecordFilter) ([]domain.ExceptionRecord, error)
	GetStatsByType(ctx context.Context) ([]domain.TypeStats, error)
}

// Report serves dashboard payloads built from rendered reports.
type Report interface {
	Dashboard(reportPath string) (domain.DashboardData, error)
}

// FixGenerator is the fix-generation dependency of the analyzer.
type FixGenerator interface {
	ShouldAnalyze(rec domain.ExceptionRecord) bool
	AnalyzeException(ctx context.Context, rec domain.ExceptionRecord) domain.CodeFix
}

type Services struct {
	Analyzer
	Report
}

type ServicesDependencies struct {
	Repos          *repo.Repositories
	Counters       *metrics.Counters
	BrokerProducer broker.Producer
	Fixer          FixGenerator
	Scanner        *extract.Scanner
	ReportDir      string
}

func NewServices(deps ServicesDependencies) *Services {
	return &Services{
		Analyzer: NewAnalyzerService(deps.Repos.Exception, deps.Counters, deps.BrokerProducer, deps.Fixer, deps.Scanner, deps.ReportDir),
		Report:   NewReportService(),
	}
}
