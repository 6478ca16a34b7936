package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Artem819/StackTrack/internal/domain"
)

func sampleRecords() []domain.ExceptionRecord {
	return []domain.ExceptionRecord{
		{
			Timestamp:        "2024-05-01 10:15:30.123",
			Level:            "ERROR",
			ExceptionType:    "NullPointerException",
			ExceptionMessage: "boom",
			StackTrace: []string{
				"at a.B.c(B.java:10)",
				"at a.B.d(B.java:22)",
			},
			Context:    []string{"request started", "user loaded"},
			FilePath:   "B.java",
			LineNumber: 10,
			MethodName: "c",
			ClassName:  "a.B",
		},
		{
			ExceptionType:    "IllegalArgumentException",
			ExceptionMessage: "bad id",
			StackTrace:       []string{"at x.Y.z(Y.java:5)"},
		},
	}
}

func sampleFixes() []domain.CodeFix {
	return []domain.CodeFix{
		{
			ExceptionType:  "NullPointerException",
			RootCause:      "user may be nil",
			FixDescription: "guard the dereference",
			CodeSuggestions: []domain.CodeSuggestion{
				{File: "B.java", Description: "add a null check", Code: "if (user == null) return;"},
			},
			PreventionTips:  []string{"validate inputs"},
			ConfidenceScore: 0.9,
		},
	}
}

func TestRenderParseRoundTrip(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	text := Render("app.log", sampleRecords(), sampleFixes(), now)

	summary := ParseSummary(text)
	require.True(t, summary.SummaryPresent)
	assert.Equal(t, "app.log", summary.LogFile)
	assert.Equal(t, 2, summary.TotalDeclared)
	assert.Equal(t, 1, summary.FixesDeclared)

	exceptions := ParseExceptions(text)
	require.Len(t, exceptions, 2)

	// The timestamped block sorts first.
	first := exceptions[0]
	assert.Equal(t, "NullPointerException", first.Type)
	assert.Equal(t, "boom", first.Message)
	require.NotNil(t, first.Timestamp)
	assert.Equal(t, "a.B.c() at B.java:10", first.Location)
	assert.Contains(t, first.Stack, "at a.B.c(B.java:10)")
	assert.Equal(t, SeverityHigh, first.Severity)

	second := exceptions[1]
	assert.Equal(t, "IllegalArgumentException", second.Type)
	assert.Nil(t, second.Timestamp)
	assert.Equal(t, SeverityMedium, second.Severity)

	assert.Equal(t, 1, CountFixes(text))
}

func TestParseTimestamp(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		ok   bool
	}{
		{name: "millis dot", raw: "2024-05-01 10:15:30.123", ok: true},
		{name: "millis comma", raw: "2024-05-01 10:15:30,123", ok: true},
		{name: "no millis", raw: "2024-05-01 10:15:30", ok: true},
		{name: "iso t", raw: "2024-05-01T10:15:30", ok: true},
		{name: "garbage", raw: "yesterday", ok: false},
		{name: "empty", raw: "", ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts := ParseTimestamp(tc.raw)
			if tc.ok {
				require.NotNil(t, ts)
				assert.Greater(t, *ts, float64(0))
			} else {
				assert.Nil(t, ts)
			}
		})
	}
}

func TestInferSeverity(t *testing.T) {
	testCases := []struct {
		name     string
		excType  string
		message  string
		expected string
	}{
		{name: "sql timeout", excType: "SQLException", message: "connection timeout", expected: SeverityCritical},
		{name: "sql refused", excType: "SQLTransientConnectionException", message: "Connection refused", expected: SeverityCritical},
		{name: "resource failure", excType: "DataAccessResourceFailureException", message: "pool exhausted", expected: SeverityCritical},
		{name: "disk full", excType: "IOException", message: "No space left on device", expected: SeverityCritical},
		{name: "oom", excType: "OutOfMemoryError", message: "Java heap space", expected: SeverityCritical},
		{name: "npe", excType: "NullPointerException", message: "boom", expected: SeverityHigh},
		{name: "illegal arg", excType: "IllegalArgumentException", message: "bad id", expected: SeverityMedium},
		{name: "other", excType: "RuntimeException", message: "whatever", expected: SeverityLow},
		{name: "plain io", excType: "IOException", message: "stream closed", expected: SeverityLow},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, InferSeverity(tc.excType, tc.message))
		})
	}
}

func TestBuildDashboard(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	text := Render("app.log", sampleRecords(), sampleFixes(), now)

	data := BuildDashboard("analysis_report_app.md", text, now)

	assert.Equal(t, "analysis_report_app.md", data.SourceFile)
	assert.Equal(t, "app.log", data.DeclaredLogFile)
	assert.Equal(t, 2, data.TotalExceptions)
	assert.Equal(t, 1, data.CodeFixesGenerated)
	assert.Equal(t, 1, data.ByType["NullPointerException"])
	assert.Equal(t, 1, data.ByType["IllegalArgumentException"])
	assert.Equal(t, 1, data.BySeverity[SeverityHigh])
	assert.Equal(t, 1, data.BySeverity[SeverityMedium])
	assert.Equal(t, 0, data.BySeverity[SeverityCritical])
	assert.Equal(t, now.Unix(), data.GeneratedAt)

	require.NotEmpty(t, data.Timeline.Labels)
	assert.Len(t, data.Timeline.Values, len(data.Timeline.Labels))

	require.GreaterOrEqual(t, data.Heatmap.Cols, 1)
	for _, lvl := range SeverityLevels {
		require.Contains(t, data.Heatmap.Data, lvl)
		assert.Len(t, data.Heatmap.Data[lvl], data.Heatmap.Cols)
	}
}

func TestBuildDashboardNoSummary(t *testing.T) {
	text := "### Exception 1: RuntimeException\n" +
		"**Message**: oops\n\n" +
		"### Fix 1: RuntimeException\n\n" +
		"### Fix 2: RuntimeException\n"

	data := BuildDashboard("r.md", text, time.Unix(0, 0))

	assert.Empty(t, data.DeclaredLogFile)
	assert.Equal(t, 1, data.TotalExceptions)
	// No summary block: the fix count comes from counting headings.
	assert.Equal(t, 2, data.CodeFixesGenerated)
	assert.Equal(t, []string{"Event 1"}, data.Timeline.Labels)
}

func TestBuildTimelineBuckets(t *testing.T) {
	ts1 := float64(time.Date(2024, 5, 1, 10, 15, 5, 0, time.UTC).Unix())
	ts2 := float64(time.Date(2024, 5, 1, 10, 15, 40, 0, time.UTC).Unix())
	ts3 := float64(time.Date(2024, 5, 1, 10, 16, 1, 0, time.UTC).Unix())

	tl := buildTimeline([]domain.ReportException{
		{Timestamp: &ts1}, {Timestamp: &ts2}, {Timestamp: &ts3}, {Timestamp: nil},
	})

	require.Equal(t, []string{"2024-05-01 10:15", "2024-05-01 10:16"}, tl.Labels)
	assert.Equal(t, []int{2, 1}, tl.Values)
}

func TestParseExceptionsSortsTimestampedFirst(t *testing.T) {
	text := "### Exception 1: RuntimeException\n" +
		"**Message**: late\n" +
		"### Exception 2: NullPointerException\n" +
		"**Message**: early\n" +
		"**Timestamp**: 2024-05-01 10:15:30\n"

	exceptions := ParseExceptions(text)
	require.Len(t, exceptions, 2)
	assert.Equal(t, "NullPointerException", exceptions[0].Type)
	assert.Equal(t, "RuntimeException", exceptions[1].Type)
}
