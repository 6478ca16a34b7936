package validators

import "errors"

var (
	ErrMissingReportFile = errors.New("missing 'file' query param")
	ErrMissingLogFile    = errors.New("log_file must be specified")
	ErrInvalidLimit      = errors.New("limit must not be negative")
)

func ValidateReportQuery(file string) error {
	if file == "" {
		return ErrMissingReportFile
	}
	return nil
}

func ValidateAnalyzeRequest(logFile string) error {
	if logFile == "" {
		return ErrMissingLogFile
	}
	return nil
}

func ValidateRecordsQuery(limit int) error {
	if limit < 0 {
		return ErrInvalidLimit
	}
	return nil
}
