// Package scheduler contém a execução sequencial dos relatórios e o agendamento periódico
package scheduler

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-reports/internal/config"
	"github.com/vfg2006/restaurant-reports/internal/domain"
	"github.com/vfg2006/restaurant-reports/internal/usecases/reporting"
	"github.com/vfg2006/restaurant-reports/pkg/log"
	"github.com/vfg2006/restaurant-reports/pkg/utils"
)

type ReportsSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type SummaryExporter interface {
	Write(summary domain.ReportSummary) error
}

// ReportsSyncService roda os três relatórios em sequência, uma vez pela CLI
// e, se habilitado, novamente a cada disparo do cron
type ReportsSyncService struct {
	scheduler           *gocron.Scheduler
	reports             reporting.ReportService
	summary             SummaryExporter
	out                 io.Writer
	config              ReportsSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewReportsSyncService(
	reports reporting.ReportService,
	summary SummaryExporter,
	out io.Writer,
	cfg *config.Config,
) *ReportsSyncService {
	syncConfig := ReportsSyncConfig{
		CronSchedule: cfg.ReportsSync.CronSchedule,
		SyncEnabled:  cfg.ReportsSync.Enabled,
	}

	return &ReportsSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		reports:   reports,
		summary:   summary,
		out:       out,
		config:    syncConfig,
	}
}

func (s *ReportsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Debug("Regeração periódica dos relatórios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de regeração dos relatórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunReports(ctx); err != nil {
			logrus.WithError(err).Error("Erro na regeração dos relatórios")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar regeração dos relatórios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron dos relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// Enabled indica se a regeração periódica está configurada
func (s *ReportsSyncService) Enabled() bool {
	return s.config.SyncEnabled
}

// RunReports executa listagem, contagem e ranking nessa ordem, imprimindo um
// rótulo antes de cada um. Para no primeiro erro. Se já houver uma execução
// em andamento, retorna sem fazer nada.
func (s *ReportsSyncService) RunReports(ctx context.Context) (*domain.ReportSummary, error) {
	if !s.tryStart() {
		logrus.Warn("Execução dos relatórios já está em andamento")
		return nil, nil
	}
	defer s.finish()

	ctx, correlationID := log.WithCorrelationID(ctx)
	logger := log.ForContext(ctx)
	logger.Info("Iniciando execução dos relatórios")

	summary := &domain.ReportSummary{CorrelationID: correlationID}

	fmt.Fprintln(s.out, reporting.ReportListRestaurants)
	records, err := s.reports.ListRestaurants(ctx)
	if err != nil {
		return nil, err
	}
	summary.RestaurantsCount = len(records)
	fmt.Fprintf(s.out, "  %d restaurantes\n", len(records))

	fmt.Fprintln(s.out, reporting.ReportCountByCategory)
	counts, err := s.reports.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}
	summary.CategoryCounts = counts
	fmt.Fprintf(s.out, "  %d categorias, %d restaurantes\n", len(counts), counts.Total())

	fmt.Fprintln(s.out, reporting.ReportHighestRatedCategory)
	ranking, err := s.reports.RankCategories(ctx)
	if err != nil {
		return nil, err
	}
	if err := reporting.RequireRatedCategories(ranking); err != nil {
		return nil, err
	}
	summary.CategoryAverages = ranking.Averages
	summary.TopCategory = ranking.Top
	fmt.Fprintf(s.out, "  %s (%v)\n", ranking.Top.Category, utils.Round(ranking.Top.Average, 2))

	if err := s.summary.Write(*summary); err != nil {
		return nil, err
	}

	logger.WithField("top_category", summary.TopCategory.Category).Info("Execução dos relatórios concluída")
	return summary, nil
}

func (s *ReportsSyncService) tryStart() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

func (s *ReportsSyncService) finish() {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
}

// GetStatus retorna o estado da última execução
func (s *ReportsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"running":           s.syncRunning,
		"last_started_at":   s.lastSyncStartedAt,
		"last_completed_at": s.lastSyncCompletedAt,
		"cron_schedule":     s.config.CronSchedule,
		"enabled":           s.config.SyncEnabled,
	}
}
