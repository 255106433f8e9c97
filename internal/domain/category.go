package domain

// CategoryCount é uma linha do agrupamento por categoria, na ordem da consulta
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CategoryCounts mapeia o rótulo da categoria para o número de restaurantes
type CategoryCounts map[string]int

// Total soma as contagens de todas as categorias
func (c CategoryCounts) Total() int {
	total := 0
	for _, count := range c {
		total += count
	}
	return total
}

type CategoryAverage struct {
	Category string  `json:"category"`
	Average  float64 `json:"average"`
	Count    int     `json:"count"`
}

type TopCategory struct {
	Category string  `json:"category"`
	Average  float64 `json:"average"`
}

type CategoryRanking struct {
	Averages map[string]float64 `json:"averages"`
	Top      TopCategory        `json:"top"`
}
