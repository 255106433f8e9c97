// Package export grava o resumo das execuções dos relatórios em JSON
package export

import (
	"fmt"

	"github.com/vfg2006/restaurant-reports/internal/config"
	"github.com/vfg2006/restaurant-reports/internal/domain"
	"github.com/vfg2006/restaurant-reports/pkg/utils"
)

type SummaryWriter struct {
	path string
}

func NewSummaryWriter(cfg config.Summary) *SummaryWriter {
	return &SummaryWriter{path: cfg.File}
}

// Enabled indica se há um arquivo de resumo configurado
func (w *SummaryWriter) Enabled() bool {
	return w.path != ""
}

func (w *SummaryWriter) Write(summary domain.ReportSummary) error {
	if !w.Enabled() {
		return nil
	}

	content, err := utils.JSONWriter(summary)
	if err != nil {
		return fmt.Errorf("erro ao serializar o resumo: %w", err)
	}

	if err := utils.WriteFileAtomic(w.path, content); err != nil {
		return fmt.Errorf("erro ao gravar o resumo em %s: %w", w.path, err)
	}

	return nil
}
