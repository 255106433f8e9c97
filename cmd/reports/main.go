package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-reports/infrastructure/chart"
	"github.com/vfg2006/restaurant-reports/infrastructure/export"
	"github.com/vfg2006/restaurant-reports/infrastructure/repository"
	"github.com/vfg2006/restaurant-reports/internal/config"
	"github.com/vfg2006/restaurant-reports/internal/scheduler"
	"github.com/vfg2006/restaurant-reports/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"driver":     cfg.Database.Driver,
		"database":   cfg.Database.Path,
		"output_dir": cfg.Chart.OutputDir,
	}).Debug("Configuração carregada")

	store := repository.NewRestaurantStore(cfg.Database)
	renderer := chart.NewRenderer(cfg.Chart)
	reportService := reporting.NewService(store, renderer)
	summaryWriter := export.NewSummaryWriter(cfg.Summary)

	reportsSyncService := scheduler.NewReportsSyncService(
		reportService,
		summaryWriter,
		os.Stdout,
		cfg,
	)

	if _, err := reportsSyncService.RunReports(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao executar os relatórios")
		os.Exit(1)
	}

	if !reportsSyncService.Enabled() {
		return
	}

	if err := reportsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador dos relatórios")
		os.Exit(1)
	}
	logrus.Info("Agendador dos relatórios iniciado com sucesso")

	<-ctx.Done()
	logrus.WithFields(logrus.Fields(reportsSyncService.GetStatus())).Info("Encerrando")
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
