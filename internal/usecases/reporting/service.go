// Package reporting contém os relatórios agregados sobre a base de restaurantes
package reporting

import (
	"context"
	"time"

	"github.com/vfg2006/restaurant-reports/infrastructure/chart"
	"github.com/vfg2006/restaurant-reports/infrastructure/repository"
	"github.com/vfg2006/restaurant-reports/internal/domain"
	"github.com/vfg2006/restaurant-reports/pkg/log"
)

const (
	ReportListRestaurants      = "list_restaurants"
	ReportCountByCategory      = "count_by_category"
	ReportHighestRatedCategory = "highest_rated_category"

	ChartRestaurantCategories   = "restaurant_categories"
	ChartHighestRatedCategories = "highest_rated_categories"
)

type ReportService interface {
	ListRestaurants(ctx context.Context) ([]domain.RestaurantRecord, error)
	CountByCategory(ctx context.Context) (domain.CategoryCounts, error)
	RankCategories(ctx context.Context) (*domain.CategoryRanking, error)
	HighestRatedCategory(ctx context.Context) (domain.TopCategory, error)
}

// Service executa cada relatório de forma independente: abre a própria
// conexão, consulta, fecha e só então desenha o gráfico
type Service struct {
	store    repository.RestaurantStore
	renderer chart.Renderer
}

func NewService(store repository.RestaurantStore, renderer chart.Renderer) *Service {
	return &Service{
		store:    store,
		renderer: renderer,
	}
}

// ListRestaurants retorna um registro por restaurante com categoria e prédio válidos
func (s *Service) ListRestaurants(ctx context.Context) ([]domain.RestaurantRecord, error) {
	start := time.Now()

	var records []domain.RestaurantRecord
	err := s.withRepository(ctx, ReportListRestaurants, func(repo repository.RestaurantRepository) (err error) {
		records, err = repo.ListRestaurants(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"report":      ReportListRestaurants,
		"rows":        len(records),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Relatório concluído")

	return records, nil
}

// CountByCategory conta os restaurantes por categoria e desenha o gráfico
// "Restaurant Categories". Se apenas o gráfico falhar, o mapa completo é
// retornado junto com um erro ErrRender.
func (s *Service) CountByCategory(ctx context.Context) (domain.CategoryCounts, error) {
	start := time.Now()

	var rows []domain.CategoryCount
	err := s.withRepository(ctx, ReportCountByCategory, func(repo repository.RestaurantRepository) (err error) {
		rows, err = repo.CountByCategory(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	counts := make(domain.CategoryCounts, len(rows))
	bars := make([]domain.Bar, 0, len(rows))
	for _, row := range rows {
		counts[row.Category] = row.Count
		bars = append(bars, domain.Bar{Label: row.Category, Value: float64(row.Count)})
	}

	err = s.render(ctx, ReportCountByCategory, domain.BarChart{
		Name:   ChartRestaurantCategories,
		Title:  "Restaurant Categories",
		XLabel: "Count",
		YLabel: "Category",
		Bars:   sortBarsAscending(bars),
	})
	if err != nil {
		return counts, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"report":      ReportCountByCategory,
		"categories":  len(counts),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Relatório concluído")

	return counts, nil
}

// RankCategories calcula a média das notas por categoria, desenha o gráfico
// "Highest Rated Categories" e escolhe a categoria de maior média
func (s *Service) RankCategories(ctx context.Context) (*domain.CategoryRanking, error) {
	start := time.Now()

	var rows []domain.CategoryRating
	err := s.withRepository(ctx, ReportHighestRatedCategory, func(repo repository.RestaurantRepository) (err error) {
		rows, err = repo.ListCategoryRatings(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	averages := averageByCategory(rows)

	ranking := &domain.CategoryRanking{
		Averages: make(map[string]float64, len(averages)),
		Top:      topCategory(averages),
	}
	bars := make([]domain.Bar, 0, len(averages))
	for _, item := range averages {
		ranking.Averages[item.Category] = item.Average
		bars = append(bars, domain.Bar{Label: item.Category, Value: item.Average})
	}

	// Mesmo sendo o gráfico das melhores categorias, a ordem é crescente
	err = s.render(ctx, ReportHighestRatedCategory, domain.BarChart{
		Name:   ChartHighestRatedCategories,
		Title:  "Highest Rated Categories",
		XLabel: "Average Rating",
		YLabel: "Category",
		Bars:   sortBarsAscending(bars),
	})
	if err != nil {
		return ranking, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"report":       ReportHighestRatedCategory,
		"categories":   len(ranking.Averages),
		"top_category": ranking.Top.Category,
		"duration_ms":  time.Since(start).Milliseconds(),
	}).Info("Relatório concluído")

	return ranking, nil
}

// HighestRatedCategory retorna apenas a categoria de maior média e sua média
func (s *Service) HighestRatedCategory(ctx context.Context) (domain.TopCategory, error) {
	ranking, err := s.RankCategories(ctx)
	if ranking == nil {
		return domain.TopCategory{}, err
	}

	if err == nil {
		err = RequireRatedCategories(ranking)
	}

	return ranking.Top, err
}

// RequireRatedCategories falha com ErrNoRatedCategories quando nenhuma
// categoria tem nota, pois então não existe melhor categoria
func RequireRatedCategories(ranking *domain.CategoryRanking) error {
	if ranking == nil || len(ranking.Averages) == 0 {
		return NewReportError(ErrNoRatedCategories, ReportHighestRatedCategory, nil)
	}

	return nil
}

// withRepository abre uma conexão só para este relatório e garante o
// fechamento em todos os caminhos, antes de qualquer renderização
func (s *Service) withRepository(
	ctx context.Context,
	report string,
	fn func(repository.RestaurantRepository) error,
) error {
	repo, err := s.store.Open(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("report", report).Error("Erro ao abrir a base de dados")
		return NewReportError(ErrDataSource, report, err)
	}

	defer func() {
		if err := repo.Close(); err != nil {
			log.ForContext(ctx).WithError(err).WithField("report", report).Warn("Erro ao fechar conexão com a base de dados")
		}
	}()

	if err := fn(repo); err != nil {
		log.ForContext(ctx).WithError(err).WithField("report", report).Error("Erro ao consultar a base de dados")
		return NewReportError(ErrDataSource, report, err)
	}

	return nil
}

func (s *Service) render(ctx context.Context, report string, barChart domain.BarChart) error {
	path, err := s.renderer.RenderBarChart(ctx, barChart)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("report", report).Error("Erro ao gerar o gráfico")
		return NewReportError(ErrRender, report, err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"report": report,
		"path":   path,
	}).Debug("Gráfico salvo")

	return nil
}
