package httpv1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	logginghelper "github.com/Artem819/StackTrack/internal/controller/common/logging"
	"github.com/Artem819/StackTrack/internal/controller/http/validators"
	"github.com/Artem819/StackTrack/internal/metrics"
	"github.com/Artem819/StackTrack/internal/repo/repotypes"
	"github.com/Artem819/StackTrack/internal/service"
)

type AnalysisController struct {
	analyzer service.Analyzer
	reports  service.Report
	counters *metrics.Counters
}

func NewAnalysisController(a service.Analyzer, r service.Report, cnt *metrics.Counters) *AnalysisController {
	return &AnalysisController{
		analyzer: a,
		reports:  r,
		counters: cnt,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

type analyzeRequest struct {
	LogFile string `json:"log_file"`
}

func (ac *AnalysisController) Index(c echo.Context) error {
	ac.counters.HttpRequests.Inc("Index", "ok")
	return c.HTML(http.StatusOK, indexHTML)
}

func (ac *AnalysisController) Data(c echo.Context) error {
	file := c.QueryParam("file")
	if err := validators.ValidateReportQuery(file); err != nil {
		ac.counters.HttpRequests.Inc("Data", "failed")
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	data, err := ac.reports.Dashboard(file)
	if err != nil {
		ac.counters.HttpRequests.Inc("Data", "failed")
		if errors.Is(err, service.ErrReportNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "report not found: " + file})
		}
		log.Debug(err.Error())
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to parse report"})
	}

	ac.counters.HttpRequests.Inc("Data", "ok")
	return c.JSON(http.StatusOK, data)
}

func (ac *AnalysisController) Analyze(c echo.Context) error {
	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		ac.counters.HttpRequests.Inc("Analyze", "failed")
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	if err := validators.ValidateAnalyzeRequest(req.LogFile); err != nil {
		ac.counters.HttpRequests.Inc("Analyze", "failed")
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	logginghelper.LogAnalyzeRequested(req.LogFile)

	res, err := ac.analyzer.AnalyzeLogFile(c.Request().Context(), req.LogFile)
	if err != nil {
		ac.counters.HttpRequests.Inc("Analyze", "failed")
		logginghelper.LogAnalyzeFailed(req.LogFile, err)
		if errors.Is(err, service.ErrLogFileNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "log file not found: " + req.LogFile})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "analysis failed"})
	}

	logginghelper.LogAnalyzeFinished(&res)
	ac.counters.HttpRequests.Inc("Analyze", "ok")
	return c.JSON(http.StatusOK, res)
}

func (ac *AnalysisController) Exceptions(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			ac.counters.HttpRequests.Inc("Exceptions", "failed")
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "limit must be an integer"})
		}
		limit = parsed
	}
	if err := validators.ValidateRecordsQuery(limit); err != nil {
		ac.counters.HttpRequests.Inc("Exceptions", "failed")
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	filter := repotypes.RecordFilter{
		ExceptionType: c.QueryParam("type"),
		Level:         c.QueryParam("level"),
		Limit:         limit,
	}

	recs, err := ac.analyzer.GetRecords(c.Request().Context(), filter)
	if err != nil {
		ac.counters.HttpRequests.Inc("Exceptions", "failed")
		log.Debug(err.Error())
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to load records"})
	}

	ac.counters.HttpRequests.Inc("Exceptions", "ok")
	return c.JSON(http.StatusOK, recs)
}

func (ac *AnalysisController) Stats(c echo.Context) error {
	stats, err := ac.analyzer.GetStatsByType(c.Request().Context())
	if err != nil {
		ac.counters.HttpRequests.Inc("Stats", "failed")
		log.Debug(err.Error())
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to load stats"})
	}

	ac.counters.HttpRequests.Inc("Stats", "ok")
	return c.JSON(http.StatusOK, stats)
}
