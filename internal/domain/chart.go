package domain

// BarChart descreve um gráfico de barras horizontais já ordenado pelo chamador.
// Name é o nome base do arquivo gerado, sem extensão.
type BarChart struct {
	Name   string
	Title  string
	XLabel string
	YLabel string
	Bars   []Bar
}

type Bar struct {
	Label string
	Value float64
}

// ReportSummary agrega o resultado de uma execução completa dos relatórios
type ReportSummary struct {
	CorrelationID    string             `json:"correlation_id"`
	RestaurantsCount int                `json:"restaurants_count"`
	CategoryCounts   CategoryCounts     `json:"category_counts"`
	CategoryAverages map[string]float64 `json:"category_averages"`
	TopCategory      TopCategory        `json:"top_category"`
}
