package export

import (
	"os"
	"path/filepath"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-reports/internal/config"
	"github.com/vfg2006/restaurant-reports/internal/domain"
)

func TestSummaryWriter_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.json")
	writer := NewSummaryWriter(config.Summary{File: path})
	require.True(t, writer.Enabled())

	summary := domain.ReportSummary{
		CorrelationID:    "abc",
		RestaurantsCount: 25,
		CategoryCounts:   domain.CategoryCounts{"Bar": 4, "Deli": 1},
		CategoryAverages: map[string]float64{"Bar": 3.775, "Deli": 4.6},
		TopCategory:      domain.TopCategory{Category: "Deli", Average: 4.6},
	}

	require.NoError(t, writer.Write(summary))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got domain.ReportSummary
	require.NoError(t, jsoniter.Unmarshal(data, &got))
	assert.Equal(t, summary, got)
	assert.Contains(t, string(data), "\"top_category\"")
}

func TestSummaryWriter_Disabled(t *testing.T) {
	writer := NewSummaryWriter(config.Summary{})

	assert.False(t, writer.Enabled())
	assert.NoError(t, writer.Write(domain.ReportSummary{}))
}

func TestSummaryWriter_InvalidPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "summary.json")
	writer := NewSummaryWriter(config.Summary{File: path})

	err := writer.Write(domain.ReportSummary{})
	assert.ErrorContains(t, err, "erro ao gravar o resumo")
	assert.NoFileExists(t, path)
}
