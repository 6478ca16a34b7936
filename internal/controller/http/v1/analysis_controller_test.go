package httpv1_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	httpv1 "github.com/Artem819/StackTrack/internal/controller/http/v1"
	"github.com/Artem819/StackTrack/internal/domain"
	"github.com/Artem819/StackTrack/internal/metrics"
	service_mock "github.com/Artem819/StackTrack/internal/mocks/service"
	"github.com/Artem819/StackTrack/internal/repo/repotypes"
	"github.com/Artem819/StackTrack/internal/service"
)

func newTestServer(t *testing.T) (*echo.Echo, *service_mock.MockAnalyzer, *service_mock.MockReport) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockAnalyzer := service_mock.NewMockAnalyzer(ctrl)
	mockReport := service_mock.NewMockReport(ctrl)

	handler := echo.New()
	services := &service.Services{Analyzer: mockAnalyzer, Report: mockReport}
	httpv1.ConfigureRouter(handler, services, metrics.NewTestCounters())

	return handler, mockAnalyzer, mockReport
}

func TestAnalysisController_Index(t *testing.T) {
	handler, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Exception Monitoring Dashboard")
}

func TestAnalysisController_Data(t *testing.T) {
	testCases := []struct {
		name         string
		target       string
		mockBehavior func(r *service_mock.MockReport)
		wantCode     int
		wantBody     string
	}{
		{
			name:         "missing file param",
			target:       "/api/data",
			mockBehavior: func(r *service_mock.MockReport) {},
			wantCode:     http.StatusBadRequest,
			wantBody:     "file",
		},
		{
			name:   "report not found",
			target: "/api/data?file=missing.md",
			mockBehavior: func(r *service_mock.MockReport) {
				r.EXPECT().Dashboard("missing.md").Return(domain.DashboardData{}, service.ErrReportNotFound)
			},
			wantCode: http.StatusNotFound,
			wantBody: "not found",
		},
		{
			name:   "parse failure",
			target: "/api/data?file=bad.md",
			mockBehavior: func(r *service_mock.MockReport) {
				r.EXPECT().Dashboard("bad.md").Return(domain.DashboardData{}, errors.New("boom"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: "failed to parse",
		},
		{
			name:   "success",
			target: "/api/data?file=analysis_report_app.md",
			mockBehavior: func(r *service_mock.MockReport) {
				r.EXPECT().Dashboard("analysis_report_app.md").Return(domain.DashboardData{
					DeclaredLogFile: "app.log",
					TotalExceptions: 2,
				}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `"total_exceptions":2`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler, _, mockReport := newTestServer(t)
			tc.mockBehavior(mockReport)

			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.wantBody)
		})
	}
}

func TestAnalysisController_Analyze(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(a *service_mock.MockAnalyzer)
		wantCode     int
		wantBody     string
	}{
		{
			name:         "missing log_file",
			body:         `{}`,
			mockBehavior: func(a *service_mock.MockAnalyzer) {},
			wantCode:     http.StatusBadRequest,
			wantBody:     "log_file",
		},
		{
			name: "log file not found",
			body: `{"log_file": "nope.log"}`,
			mockBehavior: func(a *service_mock.MockAnalyzer) {
				a.EXPECT().AnalyzeLogFile(gomock.Any(), "nope.log").
					Return(domain.AnalysisResult{}, service.ErrLogFileNotFound)
			},
			wantCode: http.StatusNotFound,
			wantBody: "not found",
		},
		{
			name: "success",
			body: `{"log_file": "app.log"}`,
			mockBehavior: func(a *service_mock.MockAnalyzer) {
				a.EXPECT().AnalyzeLogFile(gomock.Any(), "app.log").
					Return(domain.AnalysisResult{
						LogFile:         "app.log",
						TotalExceptions: 3,
						TotalFixes:      1,
						ReportPath:      "analysis_report_app.md",
					}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `"total_exceptions":3`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler, mockAnalyzer, _ := newTestServer(t)
			tc.mockBehavior(mockAnalyzer)

			req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(tc.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.wantBody)
		})
	}
}

func TestAnalysisController_Exceptions(t *testing.T) {
	handler, mockAnalyzer, _ := newTestServer(t)

	mockAnalyzer.EXPECT().
		GetRecords(gomock.Any(), repotypes.RecordFilter{
			ExceptionType: "NullPointerException",
			Level:         "ERROR",
			Limit:         5,
		}).
		Return([]domain.ExceptionRecord{
			{ExceptionType: "NullPointerException", Level: "ERROR"},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/exceptions?type=NullPointerException&level=ERROR&limit=5", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "NullPointerException")
}

func TestAnalysisController_Exceptions_BadLimit(t *testing.T) {
	handler, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/exceptions?limit=abc", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalysisController_Stats(t *testing.T) {
	handler, mockAnalyzer, _ := newTestServer(t)

	mockAnalyzer.EXPECT().
		GetStatsByType(gomock.Any()).
		Return([]domain.TypeStats{{ExceptionType: "SQLException", Count: 4}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "SQLException")
}
