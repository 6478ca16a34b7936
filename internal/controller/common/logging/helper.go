package logginghelper

import (
	"github.com/Artem819/StackTrack/internal/domain"
	log "github.com/sirupsen/logrus"
)

func LogAnalyzeRequested(logFile string) {
	log.WithFields(log.Fields{
		"log_file": logFile,
	}).Info("Analysis requested via HTTP")
}

func LogAnalyzeFinished(res *domain.AnalysisResult) {
	log.WithFields(log.Fields{
		"log_file":   res.LogFile,
		"exceptions": res.TotalExceptions,
		"fixes":      res.TotalFixes,
		"report":     res.ReportPath,
	}).Info("Analysis finished successfully")
}

func LogAnalyzeFailed(logFile string, err error) {
	log.WithFields(log.Fields{
		"log_file": logFile,
		"error":    err,
	}).Error("Analysis failed")
}
