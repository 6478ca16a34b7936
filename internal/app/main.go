package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	kafkabroker "github.com/Artem819/StackTrack/internal/broker/kafka"
	"github.com/Artem819/StackTrack/internal/config"
	httpv1 "github.com/Artem819/StackTrack/internal/controller/http/v1"
	"github.com/Artem819/StackTrack/internal/extract"
	"github.com/Artem819/StackTrack/internal/fixer"
	"github.com/Artem819/StackTrack/internal/metrics"
	"github.com/Artem819/StackTrack/internal/repo"
	"github.com/Artem819/StackTrack/internal/service"
	errorsUtils "github.com/Artem819/StackTrack/pkg/errors"
	"github.com/Artem819/StackTrack/pkg/httpserver"
	"github.com/Artem819/StackTrack/pkg/logger"
	"github.com/Artem819/StackTrack/pkg/postgres"
	"github.com/labstack/echo/v4"

	log "github.com/sirupsen/logrus"
)

func Run() {
	// Config

	cfg, err := config.New()
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Logger
	logger.SetupLogger(cfg.Log.Level)
	log.Info("Logger has been set up")

	// Migrations
	Migrate(cfg.PG.URL)

	// DB connecting
	log.Info("Connecting to DB")
	pg, err := postgres.New(cfg.PG.URL, postgres.MaxPoolSize(cfg.PG.MaxPoolSize))
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	defer pg.Close()
	log.Info("Connected to DB")

	// Repos
	repositories := repo.NewRepositories(pg)

	// Producer
	brokerProducer := kafkabroker.NewProducer(kafkabroker.ProducerConfig{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
	})
	defer brokerProducer.Close()

	// Fix generation
	var fixGenerator service.FixGenerator
	metricsCnt := metrics.New()
	if cfg.Gemini.APIKey != "" {
		gemini, err := fixer.NewGeminiClient(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			log.Fatal(errorsUtils.WrapPathErr(err))
		}
		fixGenerator = fixer.New(gemini, metricsCnt)
		log.Info("Gemini fix generation enabled")
	} else {
		log.Warn("GEMINI_API_KEY is not set, fix generation disabled")
	}

	// Services
	deps := service.ServicesDependencies{
		Repos:          repositories,
		Counters:       metricsCnt,
		BrokerProducer: brokerProducer,
		Fixer:          fixGenerator,
		Scanner:        extract.NewScanner(extract.NewPatterns()),
		ReportDir:      cfg.Report.OutputDir,
	}
	services := service.NewServices(deps)

	// HTTP Server
	log.Infof("Starting HTTP server...")
	log.Debugf("HTTP server port: %s", cfg.HTTP.Port)
	appHandler := echo.New()
	httpv1.ConfigureRouter(appHandler, services, metricsCnt)
	appServer := httpserver.New(appHandler, httpserver.Port(cfg.HTTP.Port))

	// Prometheus server
	log.Infof("Starting metrics server...")
	log.Debugf("Metrics server port: %s", cfg.Prometheus.Port)
	metricsHandler := echo.New()
	metrics.ConfigureRouter(metricsHandler)
	metricsServer := httpserver.New(metricsHandler, httpserver.Port(cfg.Prometheus.Port))

	log.Info("Configuring graceful shutdown...")

	// Waiting signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info(errorsUtils.WrapPathErr(errors.New(s.String())))
	case err := <-appServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	case err := <-metricsServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	}

	// Graceful shutdown
	shutdownApp(appServer, metricsServer)
}

func shutdownApp(appServer, metricsServer *httpserver.Server) {
	log.Info("Shutting down...")
	if err := appServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
	if err := metricsServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
}
