package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	api "taskapp/internal/adapter/http"
	"taskapp/internal/adapter/telemetry"
	"taskapp/pkg/config"
)

const (
	serviceName    = "taskapp"
	serviceVersion = "1.0.0"
)

func main() {
	cfg, err := config.Load()

	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()

	if cfg.Environment == "development" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	log.Logger = logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tele, err := telemetry.NewContainer(telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: serviceVersion,
		Environment:    cfg.Environment,
		MetricsPort:    cfg.Telemetry.MetricsPort,
		OTLPEndpoint:   cfg.Telemetry.OTLPEndpoint,
		TracingEnabled: cfg.Telemetry.TracingEnabled,
	}, logger)

	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize telemetry")
	}

	tele.AppMetrics.StartSystemMetrics(ctx)

	if err := api.StartServer(ctx, cfg, logger, tele.AppMetrics); err != nil {
		logger.Error().Err(err).Msg("server stopped with error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := tele.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("telemetry shutdown failed")
	}
}
