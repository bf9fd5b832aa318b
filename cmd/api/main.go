package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/adstudio/ads-report-api/infrastructure/integrator/cafe24"
	"github.com/adstudio/ads-report-api/infrastructure/integrator/cafe24/cafe24client"
	"github.com/adstudio/ads-report-api/infrastructure/integrator/meta"
	"github.com/adstudio/ads-report-api/infrastructure/integrator/meta/metaclient"
	"github.com/adstudio/ads-report-api/internal/api"
	"github.com/adstudio/ads-report-api/internal/config"
	"github.com/adstudio/ads-report-api/internal/usecases/analyzing"
	"github.com/adstudio/ads-report-api/internal/usecases/reporting"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)

	tokenManager := cafe24client.NewTokenManager(cfg)
	cafe24Client := cafe24client.NewClient(cfg, tokenManager)
	cafe24Integrator := cafe24.New(cfg, cafe24Client)

	reportService := reporting.NewService(cfg, metaIntegrator)
	analyticsService := analyzing.NewService(cfg, cafe24Integrator)

	if !cfg.Cafe24.Enabled() {
		logrus.Warn("Cafe24 credentials are not configured, analytics endpoint will be unavailable")
	}

	server, err := api.New(cfg, reportService, analyticsService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
