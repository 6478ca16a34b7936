package report

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Artem819/StackTrack/internal/domain"
)

const heatmapMaxCols = 10

// ParseExceptions recovers every exception block of a rendered report,
// sorted by timestamp when available and by block index otherwise.
func ParseExceptions(text string) []domain.ReportException {
	var out []domain.ReportException

	for _, m := range exceptionBlockRe.FindAllStringSubmatch(text, -1) {
		idx, _ := strconv.Atoi(m[1])
		excType := strings.TrimSpace(m[2])
		message := strings.TrimSpace(m[3])
		tsRaw := strings.TrimSpace(m[4])

		out = append(out, domain.ReportException{
			Index:        idx,
			Type:         excType,
			Message:      message,
			Timestamp:    ParseTimestamp(tsRaw),
			TimestampRaw: tsRaw,
			Location:     strings.TrimSpace(m[5]),
			Stack:        strings.TrimSpace(m[6]),
			Severity:     InferSeverity(excType, message),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if (a.Timestamp == nil) != (b.Timestamp == nil) {
			return a.Timestamp != nil
		}
		if a.Timestamp != nil {
			return *a.Timestamp < *b.Timestamp
		}
		return a.Index < b.Index
	})

	return out
}

// BuildDashboard aggregates a parsed report into the /api/data payload:
// type and severity counts, a minute-bucketed timeline (sequential
// fallback when no block carries a timestamp) and the severity heatmap.
func BuildDashboard(sourceFile, text string, now time.Time) domain.DashboardData {
	summary := ParseSummary(text)
	exceptions := ParseExceptions(text)

	fixes := summary.FixesDeclared
	if !summary.SummaryPresent {
		fixes = CountFixes(text)
	}

	byType := map[string]int{}
	bySeverity := map[string]int{}
	for _, lvl := range SeverityLevels {
		bySeverity[lvl] = 0
	}
	for _, e := range exceptions {
		byType[e.Type]++
		bySeverity[e.Severity]++
	}

	timeline := buildTimeline(exceptions)
	heatmap := buildHeatmap(exceptions, len(timeline.Labels))

	return domain.DashboardData{
		SourceFile:         sourceFile,
		DeclaredLogFile:    summary.LogFile,
		TotalExceptions:    len(exceptions),
		CodeFixesGenerated: fixes,
		ByType:             byType,
		BySeverity:         bySeverity,
		Timeline:           timeline,
		Heatmap:            heatmap,
		Exceptions:         exceptions,
		RefDeclaredTotal:   summary.TotalDeclared,
		GeneratedAt:        now.Unix(),
	}
}

func buildTimeline(exceptions []domain.ReportException) domain.Timeline {
	var tl domain.Timeline

	anyTimestamp := false
	for _, e := range exceptions {
		if e.Timestamp != nil {
			anyTimestamp = true
			break
		}
	}

	if !anyTimestamp {
		for i := range exceptions {
			tl.Labels = append(tl.Labels, "Event "+strconv.Itoa(i+1))
			tl.Values = append(tl.Values, 1)
		}
		return tl
	}

	buckets := map[string]int{}
	for _, e := range exceptions {
		if e.Timestamp == nil {
			continue
		}
		key := time.Unix(int64(*e.Timestamp), 0).UTC().Format("2006-01-02 15:04")
		buckets[key]++
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		tl.Labels = append(tl.Labels, k)
		tl.Values = append(tl.Values, buckets[k])
	}
	return tl
}

func buildHeatmap(exceptions []domain.ReportException, timelineLen int) domain.Heatmap {
	cols := timelineLen
	if cols > heatmapMaxCols {
		cols = heatmapMaxCols
	}
	if cols < 1 {
		cols = 1
	}

	data := map[string][]int{}
	for _, lvl := range SeverityLevels {
		data[lvl] = make([]int, cols)
	}

	total := len(exceptions)
	for i, e := range exceptions {
		col := 0
		if total > 0 {
			col = i * cols / total
			if col > cols-1 {
				col = cols - 1
			}
		}
		data[e.Severity][col]++
	}

	return domain.Heatmap{Cols: cols, Data: data}
}
