package service

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/Artem819/StackTrack/internal/domain"
	"github.com/Artem819/StackTrack/internal/report"
	errorsUtils "github.com/Artem819/StackTrack/pkg/errors"
)

// ReportService loads a rendered markdown report and rebuilds the
// dashboard payload from it.
type ReportService struct{}

func NewReportService() *ReportService {
	return &ReportService{}
}

func (s *ReportService) Dashboard(reportPath string) (domain.DashboardData, error) {
	data, err := os.ReadFile(reportPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DashboardData{}, errorsUtils.WrapPathErr(ErrReportNotFound)
		}
		return domain.DashboardData{}, errorsUtils.WrapPathErr(err)
	}

	return report.BuildDashboard(filepath.Base(reportPath), string(data), time.Now()), nil
}
