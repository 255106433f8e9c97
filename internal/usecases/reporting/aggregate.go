package reporting

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/restaurant-reports/internal/domain"
	"github.com/vfg2006/restaurant-reports/pkg/utils"
)

// averageByCategory acumula soma e quantidade por rótulo e divide no final.
// A ordem de saída é a ordem em que cada categoria aparece pela primeira vez.
func averageByCategory(rows []domain.CategoryRating) []domain.CategoryAverage {
	type running struct {
		sum   decimal.Decimal
		count int
	}

	order := make([]string, 0)
	totals := make(map[string]*running)

	for _, row := range rows {
		total, exists := totals[row.Category]
		if !exists {
			total = &running{sum: decimal.Zero}
			totals[row.Category] = total
			order = append(order, row.Category)
		}
		total.sum = total.sum.Add(row.Rating)
		total.count++
	}

	averages := make([]domain.CategoryAverage, 0, len(order))
	for _, category := range order {
		total := totals[category]
		averages = append(averages, domain.CategoryAverage{
			Category: category,
			Average:  utils.Average(total.sum, total.count),
			Count:    total.count,
		})
	}

	return averages
}

// topCategory percorre as médias em ordem e fica com a primeira de maior valor;
// em empate exato vence a que apareceu antes
func topCategory(averages []domain.CategoryAverage) domain.TopCategory {
	var top domain.TopCategory
	for i, item := range averages {
		if i == 0 || item.Average > top.Average {
			top = domain.TopCategory{Category: item.Category, Average: item.Average}
		}
	}
	return top
}

// sortBarsAscending ordena pelo valor crescente mantendo a ordem original nos empates
func sortBarsAscending(bars []domain.Bar) []domain.Bar {
	sort.SliceStable(bars, func(i, j int) bool {
		return bars[i].Value < bars[j].Value
	})
	return bars
}
