package chart

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-reports/internal/config"
	"github.com/vfg2006/restaurant-reports/internal/domain"
)

func newTestRenderer(dir string) *PlotRenderer {
	return NewRenderer(config.Chart{
		OutputDir: dir,
		WidthCm:   12,
		HeightCm:  8,
	})
}

func sampleChart() domain.BarChart {
	return domain.BarChart{
		Name:   "restaurant_categories",
		Title:  "Restaurant Categories",
		XLabel: "Count",
		YLabel: "Category",
		Bars: []domain.Bar{
			{Label: "Deli", Value: 1},
			{Label: "Cafe", Value: 3},
			{Label: "Bar", Value: 4},
		},
	}
}

func TestPlotRenderer_RenderBarChart(t *testing.T) {
	dir := t.TempDir()
	renderer := newTestRenderer(dir)

	path, err := renderer.RenderBarChart(context.Background(), sampleChart())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "restaurant_categories.png"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = png.Decode(bytes.NewReader(data))
	assert.NoError(t, err, "arquivo gerado deve ser um PNG válido")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "nenhum arquivo temporário deve sobrar")
}

func TestPlotRenderer_RenderBarChart_EmptyBars(t *testing.T) {
	renderer := newTestRenderer(t.TempDir())

	chart := sampleChart()
	chart.Bars = nil

	path, err := renderer.RenderBarChart(context.Background(), chart)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestPlotRenderer_RenderBarChart_Errors(t *testing.T) {
	tests := []struct {
		name  string
		ctx   func() context.Context
		dir   func(t *testing.T) string
		chart domain.BarChart
	}{
		{
			name: "Diretório de saída inexistente",
			ctx:  context.Background,
			dir: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing")
			},
			chart: sampleChart(),
		},
		{
			name: "Contexto cancelado",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			dir: func(t *testing.T) string {
				return t.TempDir()
			},
			chart: sampleChart(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := tt.dir(t)
			renderer := newTestRenderer(dir)

			path, err := renderer.RenderBarChart(tt.ctx(), tt.chart)
			assert.Error(t, err)
			assert.Empty(t, path)
			assert.NoFileExists(t, filepath.Join(dir, "restaurant_categories.png"))
		})
	}
}

func TestPlotRenderer_RenderBarChart_Display(t *testing.T) {
	dir := t.TempDir()
	renderer := newTestRenderer(dir)
	renderer.display = true

	var opened []string
	renderer.open = func(path string) error {
		opened = append(opened, path)
		return errors.New("sem visualizador")
	}

	path, err := renderer.RenderBarChart(context.Background(), sampleChart())
	require.NoError(t, err, "falha ao exibir não deve falhar a renderização")
	assert.Equal(t, []string{path}, opened)
	assert.FileExists(t, path)
}
