package domain

// ClassifiedLine is one log line after format classification.
// If IsContinuation is true no format matched and Message equals Raw.
type ClassifiedLine struct {
	Timestamp      string
	Level          string
	Message        string
	Raw            string
	IsContinuation bool
}

// StackFrame is one parsed `at Qualifier(File:Line)` trace entry.
type StackFrame struct {
	Qualifier  string
	File       string
	Line       int
	ClassName  string
	MethodName string
}

// ExceptionRecord is a single extracted exception occurrence.
// Head-location fields come from the first trace entry only; deeper
// frames stay raw. Records are immutable after assembly and own their
// trace/context slices.
type ExceptionRecord struct {
	Timestamp        string   `json:"timestamp" db:"logged_at"`
	Level            string   `json:"level" db:"level"`
	ExceptionType    string   `json:"exception_type" db:"exception_type"`
	ExceptionMessage string   `json:"exception_message" db:"exception_message"`
	StackTrace       []string `json:"stack_trace" db:"stack_trace"`
	Context          []string `json:"surrounding_context" db:"surrounding_context"`
	FilePath         string   `json:"file_path" db:"file_path"`
	LineNumber       int      `json:"line_number" db:"line_number"`
	MethodName       string   `json:"method_name" db:"method_name"`
	ClassName        string   `json:"class_name" db:"class_name"`
}

type CodeSuggestion struct {
	File        string `json:"file"`
	Description string `json:"description"`
	Code        string `json:"code"`
}

// CodeFix is the fix-generation output for one ExceptionRecord.
type CodeFix struct {
	ExceptionType   string           `json:"exception_type"`
	RootCause       string           `json:"root_cause"`
	FixDescription  string           `json:"fix_description"`
	CodeSuggestions []CodeSuggestion `json:"code_suggestions"`
	PreventionTips  []string         `json:"prevention_tips"`
	ConfidenceScore float64          `json:"confidence_score"`
}

// AnalysisResult is the outcome of one full pass over one log file.
type AnalysisResult struct {
	LogFile         string            `json:"log_file"`
	TotalExceptions int               `json:"total_exceptions"`
	TotalFixes      int               `json:"total_fixes"`
	SkippedHeaders  int               `json:"skipped_headers"`
	ReportPath      string            `json:"report_path"`
	Exceptions      []ExceptionRecord `json:"exceptions"`
	Fixes           []CodeFix         `json:"fixes"`
}

type TypeStats struct {
	ExceptionType string `json:"exception_type"`
	Count         int    `json:"count"`
}
