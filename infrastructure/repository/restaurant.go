// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/restaurant-reports/infrastructure/database"
	"github.com/vfg2006/restaurant-reports/internal/config"
	"github.com/vfg2006/restaurant-reports/internal/domain"
)

const (
	restaurantsTable = "restaurants r"
	categoriesJoin   = "categories c ON r.category_id = c.id"
	buildingsJoin    = "buildings b ON r.building_id = b.id"
)

//go:generate mockgen -source=restaurant.go -destination=mocks/restaurant_mock.go -package=mocks

// RestaurantStore abre um repositório com conexão própria para cada relatório
type RestaurantStore interface {
	Open(ctx context.Context) (RestaurantRepository, error)
}

type RestaurantRepository interface {
	ListRestaurants(ctx context.Context) ([]domain.RestaurantRecord, error)
	CountByCategory(ctx context.Context) ([]domain.CategoryCount, error)
	ListCategoryRatings(ctx context.Context) ([]domain.CategoryRating, error)
	Close() error
}

type restaurantStore struct {
	cfg config.Database
}

func NewRestaurantStore(cfg config.Database) RestaurantStore {
	return &restaurantStore{cfg: cfg}
}

func (s *restaurantStore) Open(ctx context.Context) (RestaurantRepository, error) {
	conn, err := database.NewConnection(ctx, s.cfg)
	if err != nil {
		return nil, err
	}

	return NewRestaurantRepository(conn, s.cfg.Driver), nil
}

type restaurantRepository struct {
	conn        database.Conn
	placeholder squirrel.PlaceholderFormat
}

func NewRestaurantRepository(conn database.Conn, driver string) RestaurantRepository {
	var placeholder squirrel.PlaceholderFormat = squirrel.Question
	if driver == config.DriverPostgres {
		placeholder = squirrel.Dollar
	}

	return &restaurantRepository{
		conn:        conn,
		placeholder: placeholder,
	}
}

func (r *restaurantRepository) Close() error {
	return r.conn.Close()
}

// joined monta a junção interna das três tabelas; restaurantes com
// categoria ou prédio inexistente ficam de fora
func (r *restaurantRepository) joined(columns ...string) squirrel.SelectBuilder {
	return squirrel.
		Select(columns...).
		From(restaurantsTable).
		Join(categoriesJoin).
		Join(buildingsJoin).
		PlaceholderFormat(r.placeholder)
}

func (r *restaurantRepository) ListRestaurants(ctx context.Context) ([]domain.RestaurantRecord, error) {
	query, args, err := r.joined(
		"r.name",
		"c.category",
		"b.building",
		"r.rating",
	).
		OrderBy("r.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.RestaurantRecord, 0)
	for rows.Next() {
		record, err := r.scanRestaurantRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear restaurante: %w", err)
		}
		records = append(records, *record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *restaurantRepository) CountByCategory(ctx context.Context) ([]domain.CategoryCount, error) {
	query, args, err := r.joined("c.category", "COUNT(*)").
		GroupBy("c.category").
		OrderBy("c.category ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	counts := make([]domain.CategoryCount, 0)
	for rows.Next() {
		var item domain.CategoryCount
		if err := rows.Scan(&item.Category, &item.Count); err != nil {
			return nil, fmt.Errorf("erro ao escanear contagem da categoria: %w", err)
		}
		counts = append(counts, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return counts, nil
}

// ListCategoryRatings retorna as notas não nulas ordenadas por categoria,
// na mesma ordem em que o AVG do banco as consideraria
func (r *restaurantRepository) ListCategoryRatings(ctx context.Context) ([]domain.CategoryRating, error) {
	query, args, err := r.joined("c.category", "r.rating").
		Where(squirrel.NotEq{"r.rating": nil}).
		OrderBy("c.category ASC", "r.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	ratings := make([]domain.CategoryRating, 0)
	for rows.Next() {
		var item domain.CategoryRating
		if err := rows.Scan(&item.Category, &item.Rating); err != nil {
			return nil, fmt.Errorf("erro ao escanear nota da categoria: %w", err)
		}
		ratings = append(ratings, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ratings, nil
}

func (r *restaurantRepository) scanRestaurantRecord(rows *sql.Rows) (*domain.RestaurantRecord, error) {
	record := &domain.RestaurantRecord{}
	var rating sql.NullFloat64

	err := rows.Scan(
		&record.Name,
		&record.Category,
		&record.Building,
		&rating,
	)
	if err != nil {
		return nil, err
	}

	if rating.Valid {
		record.Rating = domain.NewRating(rating.Float64)
	}

	return record, nil
}
