package httpv1

import (
	"github.com/labstack/echo/v4"

	"github.com/Artem819/StackTrack/internal/metrics"
	"github.com/Artem819/StackTrack/internal/service"
)

func ConfigureRouter(handler *echo.Echo, services *service.Services, counters *metrics.Counters) {
	controller := NewAnalysisController(services.Analyzer, services.Report, counters)

	handler.GET("/", controller.Index)

	api := handler.Group("/api")
	api.GET("/data", controller.Data)
	api.POST("/analyze", controller.Analyze)
	api.GET("/exceptions", controller.Exceptions)
	api.GET("/stats", controller.Stats)
}
