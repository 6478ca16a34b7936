package service

import "fmt"

var (
	ErrLogFileNotFound   = fmt.Errorf("log file not found")
	ErrReportNotFound    = fmt.Errorf("report not found")
	ErrCannotWriteReport = fmt.Errorf("cannot write report")
)
