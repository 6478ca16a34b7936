package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Artem819/StackTrack/internal/extract"
)

func TestScanner_SingleException(t *testing.T) {
	s := extract.NewScanner(extract.NewPatterns())

	lines := []string{
		"2024-01-01 00:00:00.000 ERROR 1 --- [main] X : java.lang.NullPointerException: boom",
		"\tat a.B.c(B.java:10)",
	}

	res := s.ScanLines(lines)
	require.Len(t, res.Records, 1)
	assert.Zero(t, res.Skipped)

	rec := res.Records[0]
	assert.Equal(t, "NullPointerException", rec.ExceptionType)
	assert.Equal(t, "boom", rec.ExceptionMessage)
	assert.Equal(t, "ERROR", rec.Level)
	assert.Equal(t, "2024-01-01 00:00:00.000", rec.Timestamp)
	assert.Equal(t, "B.java", rec.FilePath)
	assert.Equal(t, 10, rec.LineNumber)
	assert.Equal(t, "c", rec.MethodName)
	assert.Equal(t, "a.B", rec.ClassName)
	assert.Equal(t, []string{"\tat a.B.c(B.java:10)"}, rec.StackTrace)
}

func TestScanner_NoExceptions(t *testing.T) {
	s := extract.NewScanner(extract.NewPatterns())

	res := s.ScanLines([]string{
		"2024-07-23 10:15:30.123  INFO 12345 --- [main] com.example.Application : Starting Application",
		"2024-07-23 10:15:31.456  INFO 12345 --- [main] com.example.Application : Application started",
	})

	assert.Empty(t, res.Records)
	assert.Zero(t, res.Skipped)
}

func TestScanner_EmptyInput(t *testing.T) {
	s := extract.NewScanner(extract.NewPatterns())

	res := s.ScanLines(nil)
	assert.Empty(t, res.Records)
	assert.Zero(t, res.Skipped)
}

func TestScanner_UnknownTypeFallback(t *testing.T) {
	s := extract.NewScanner(extract.NewPatterns())

	// Detected via the framework prefix list, but the message carries
	// no Exception/Error token for the type signature to latch onto.
	lines := []string{
		"2024-01-01 00:00:00.000 ERROR 1 --- [main] X : org.springframework.boot.diagnostics.FailureAnalyzers reported a failure",
		"\tat org.springframework.boot.SpringApplication.run(SpringApplication.java:308)",
	}

	res := s.ScanLines(lines)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "Unknown", res.Records[0].ExceptionType)
	assert.Equal(t, "org.springframework.boot.diagnostics.FailureAnalyzers reported a failure", res.Records[0].ExceptionMessage)
}

func TestScanner_ContextWindow(t *testing.T) {
	s := extract.NewScanner(extract.NewPatterns())

	lines := []string{
		"2024-01-01 00:00:01.000  INFO 1 --- [main] X : step 1",
		"2024-01-01 00:00:02.000  INFO 1 --- [main] X : step 2",
		"2024-01-01 00:00:03.000  INFO 1 --- [main] X : step 3",
		"2024-01-01 00:00:04.000  INFO 1 --- [main] X : step 4",
		"2024-01-01 00:00:05.000  INFO 1 --- [main] X : step 5",
		"2024-01-01 00:00:06.000  INFO 1 --- [main] X : step 6",
		"2024-01-01 00:00:07.000 ERROR 1 --- [main] X : java.lang.IllegalStateException: ctx",
		"\tat a.B.c(B.java:1)",
	}

	res := s.ScanLines(lines)
	require.Len(t, res.Records, 1)

	ctx := res.Records[0].Context
	require.Len(t, ctx, 5)
	// Oldest first, capped at 5, step 1 fell out of the window.
	assert.Contains(t, ctx[0], "step 2")
	assert.Contains(t, ctx[4], "step 6")
}

func TestScanner_ContextShorterThanWindow(t *testing.T) {
	s := extract.NewScanner(extract.NewPatterns())

	lines := []string{
		"2024-01-01 00:00:01.000  INFO 1 --- [main] X : only line before",
		"2024-01-01 00:00:02.000 ERROR 1 --- [main] X : java.lang.NullPointerException: x",
	}

	res := s.ScanLines(lines)
	require.Len(t, res.Records, 1)
	assert.Len(t, res.Records[0].Context, 1)
}

func TestScanner_CauseChainAbsorbedInOrder(t *testing.T) {
	s := extract.NewScanner(extract.NewPatterns())

	lines := []string{
		"2024-01-01 00:00:00.000 ERROR 1 --- [main] X : org.springframework.dao.DataAccessResourceFailureException: could not obtain connection",
		"\tat com.example.repo.UserRepo.find(UserRepo.java:31)",
		"\tat com.example.service.UserService.load(UserService.java:58)",
		"Caused by: java.sql.SQLException: Connection refused",
		"\tat com.zaxxer.hikari.pool.HikariPool.getConnection(HikariPool.java:128)",
		"\t... 23 more",
		"2024-01-01 00:00:05.000  INFO 1 --- [main] X : next independent entry",
	}

	res := s.ScanLines(lines)
	require.NotEmpty(t, res.Records)

	first := res.Records[0]
	assert.Equal(t, "DataAccessResourceFailureException", first.ExceptionType)
	// Absorbed lines keep their original relative ordering, including
	// the embedded Caused by entry and the elision marker.
	assert.Equal(t, []string{
		"\tat com.example.repo.UserRepo.find(UserRepo.java:31)",
		"\tat com.example.service.UserService.load(UserService.java:58)",
		"Caused by: java.sql.SQLException: Connection refused",
		"\tat com.zaxxer.hikari.pool.HikariPool.getConnection(HikariPool.java:128)",
		"\t... 23 more",
	}, first.StackTrace)

	// Head location comes from the first frame, never a Caused by frame.
	assert.Equal(t, "UserRepo.java", first.FilePath)
	assert.Equal(t, 31, first.LineNumber)

	// The absorbed Caused by line is re-detected as a header of its own.
	require.Len(t, res.Records, 2)
	second := res.Records[1]
	assert.Equal(t, "SQLException", second.ExceptionType)
	assert.Equal(t, "Connection refused", second.ExceptionMessage)
	assert.Equal(t, "HikariPool.java", second.FilePath)
}

func TestScanner_RecordsBoundedByHeaders(t *testing.T) {
	p := extract.NewPatterns()
	s := extract.NewScanner(p)

	lines := []string{
		"2024-01-01 00:00:00.000 ERROR 1 --- [main] X : java.lang.NullPointerException: a",
		"\tat a.B.c(B.java:1)",
		"2024-01-01 00:00:01.000 ERROR 1 --- [main] X : java.io.IOException: b",
		"\tat a.B.d(B.java:2)",
		"2024-01-01 00:00:02.000  INFO 1 --- [main] X : recovered",
	}

	classified := p.ClassifyAll(lines)
	headers := 0
	for _, cl := range classified {
		if p.IsExceptionHeader(cl.Message) {
			headers++
		}
	}

	res := s.Scan(classified)
	assert.LessOrEqual(t, len(res.Records), headers)
	assert.Len(t, res.Records, 2)
}

func TestScanner_Deterministic(t *testing.T) {
	s := extract.NewScanner(extract.NewPatterns())

	lines := []string{
		"2024-01-01 00:00:00.000 ERROR 1 --- [main] X : java.lang.NullPointerException: boom",
		"\tat a.B.c(B.java:10)",
		"Caused by: java.lang.IllegalArgumentException: inner",
		"\tat a.B.d(B.java:20)",
	}

	first := s.ScanLines(lines)
	second := s.ScanLines(lines)
	assert.Equal(t, first, second)
}
