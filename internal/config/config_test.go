package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "South_U_Restaurants.db", cfg.Database.Path)
	assert.Equal(t, "file:South_U_Restaurants.db?mode=ro", cfg.Database.DSN)
	assert.Equal(t, ".", cfg.Chart.OutputDir)
	assert.Equal(t, 16.0, cfg.Chart.WidthCm)
	assert.Equal(t, 10.0, cfg.Chart.HeightCm)
	assert.False(t, cfg.Chart.Display)
	assert.Empty(t, cfg.Summary.File)
	assert.False(t, cfg.ReportsSync.Enabled)
	assert.Equal(t, "0 * * * *", cfg.ReportsSync.CronSchedule)
}

func TestNewConfig_FromEnv(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		wantErr  bool
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name: "Caminho e diretório de saída customizados",
			env: map[string]string{
				"DATABASE_PATH": "data/reports.db",
				"OUTPUT_DIR":    "/tmp/charts",
				"CHART_DISPLAY": "true",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "file:data/reports.db?mode=ro", cfg.Database.DSN)
				assert.Equal(t, "/tmp/charts", cfg.Chart.OutputDir)
				assert.True(t, cfg.Chart.Display)
			},
		},
		{
			name: "Driver postgres monta DSN com credenciais",
			env: map[string]string{
				"DATABASE_DRIVER":   "Postgres",
				"DATABASE_URL":      "db:5432/restaurants?sslmode=disable",
				"DATABASE_USER":     "report",
				"DATABASE_PASSWORD": "secret",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DriverPostgres, cfg.Database.Driver)
				assert.Equal(t, "postgres://report:secret@db:5432/restaurants?sslmode=disable", cfg.Database.DSN)
			},
		},
		{
			name:    "Driver desconhecido é rejeitado",
			env:     map[string]string{"DATABASE_DRIVER": "mysql"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Chdir(t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := NewConfig()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}
