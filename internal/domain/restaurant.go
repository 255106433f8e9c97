// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "github.com/shopspring/decimal"

// RestaurantRecord é uma linha da junção restaurants × categories × buildings.
// Rating é nil quando o restaurante não tem nota.
type RestaurantRecord struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Building int      `json:"building"`
	Rating   *float64 `json:"rating"`
}

// NewRating devolve a nota como ponteiro para RestaurantRecord
func NewRating(value float64) *float64 {
	return &value
}

// CategoryRating é a nota de um restaurante junto do rótulo da sua categoria
type CategoryRating struct {
	Category string
	Rating   decimal.Decimal
}
