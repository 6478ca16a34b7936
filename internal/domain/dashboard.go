package domain

// ReportException is one exception block recovered from a rendered
// markdown report. Lower fidelity than ExceptionRecord: every field
// except Index and Type may be empty.
type ReportException struct {
	Index        int      `json:"index"`
	Type         string   `json:"type"`
	Message      string   `json:"message"`
	Timestamp    *float64 `json:"timestamp"`
	TimestampRaw string   `json:"timestamp_raw"`
	Location     string   `json:"location"`
	Stack        string   `json:"stack"`
	Severity     string   `json:"severity"`
}

type Timeline struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}

type Heatmap struct {
	Cols int              `json:"cols"`
	Data map[string][]int `json:"data"`
}

// DashboardData is the /api/data payload built from a parsed report.
type DashboardData struct {
	SourceFile         string            `json:"source_file"`
	DeclaredLogFile    string            `json:"declared_log_file"`
	TotalExceptions    int               `json:"total_exceptions"`
	CodeFixesGenerated int               `json:"code_fixes_generated"`
	ByType             map[string]int    `json:"by_type"`
	BySeverity         map[string]int    `json:"by_severity"`
	Timeline           Timeline          `json:"timeline"`
	Heatmap            Heatmap           `json:"heatmap"`
	Exceptions         []ReportException `json:"exceptions"`
	RefDeclaredTotal   int               `json:"ref_declared_total"`
	GeneratedAt        int64             `json:"generated_at"`
}
