// Package chart desenha e persiste os gráficos de barras dos relatórios
package chart

import (
	"context"
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/pkg/browser"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-reports/internal/config"
	"github.com/vfg2006/restaurant-reports/internal/domain"
	"github.com/vfg2006/restaurant-reports/pkg/utils"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//go:generate mockgen -source=renderer.go -destination=mocks/renderer_mock.go -package=mocks

const imageFormat = "png"

var barColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}

type Renderer interface {
	// RenderBarChart grava o gráfico no diretório de saída e retorna o caminho do arquivo
	RenderBarChart(ctx context.Context, chart domain.BarChart) (string, error)
}

type PlotRenderer struct {
	outputDir string
	width     vg.Length
	height    vg.Length
	display   bool
	open      func(path string) error
}

func NewRenderer(cfg config.Chart) *PlotRenderer {
	return &PlotRenderer{
		outputDir: cfg.OutputDir,
		width:     vg.Length(cfg.WidthCm) * vg.Centimeter,
		height:    vg.Length(cfg.HeightCm) * vg.Centimeter,
		display:   cfg.Display,
		open:      browser.OpenFile,
	}
}

func (r *PlotRenderer) RenderBarChart(ctx context.Context, chart domain.BarChart) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p, err := newHorizontalBarPlot(chart)
	if err != nil {
		return "", err
	}

	content, err := p.WriterTo(r.width, r.height, imageFormat)
	if err != nil {
		return "", fmt.Errorf("erro ao desenhar o gráfico: %w", err)
	}

	path := filepath.Join(r.outputDir, fmt.Sprintf("%s.%s", chart.Name, imageFormat))
	if err := utils.WriteFileAtomic(path, content); err != nil {
		return "", fmt.Errorf("erro ao salvar o gráfico em %s: %w", path, err)
	}

	if r.display {
		// O arquivo já foi salvo; falha ao exibir não invalida o relatório
		if err := r.open(path); err != nil {
			logrus.WithError(err).WithField("path", path).Warn("Não foi possível exibir o gráfico")
		}
	}

	return path, nil
}

// newHorizontalBarPlot monta uma barra por rótulo, na ordem recebida, de baixo para cima
func newHorizontalBarPlot(chart domain.BarChart) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = chart.Title
	p.X.Label.Text = chart.XLabel
	p.Y.Label.Text = chart.YLabel
	p.X.Min = 0

	if len(chart.Bars) == 0 {
		return p, nil
	}

	values := make(plotter.Values, len(chart.Bars))
	labels := make([]string, len(chart.Bars))
	for i, bar := range chart.Bars {
		values[i] = bar.Value
		labels[i] = bar.Label
	}

	bars, err := plotter.NewBarChart(values, vg.Points(10))
	if err != nil {
		return nil, fmt.Errorf("erro ao montar as barras: %w", err)
	}

	bars.Horizontal = true
	bars.Color = barColor
	bars.LineStyle.Width = 0

	p.Add(bars)
	p.NominalY(labels...)

	return p, nil
}
