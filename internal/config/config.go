package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Chart       Chart       `mapstructure:",squash"`
	Summary     Summary     `mapstructure:",squash"`
	ReportsSync ReportsSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Database descreve a fonte de dados somente leitura dos relatórios.
// Para sqlite o DSN é derivado do Path; para postgres, de URL/User/Password.
type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Path     string `mapstructure:"database_path"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	Password string `mapstructure:"database_password"`
}

type Chart struct {
	OutputDir string  `mapstructure:"output_dir"`
	WidthCm   float64 `mapstructure:"chart_width_cm"`
	HeightCm  float64 `mapstructure:"chart_height_cm"`
	Display   bool    `mapstructure:"chart_display"`
}

type Summary struct {
	File string `mapstructure:"summary_file"`
}

type ReportsSync struct {
	CronSchedule string `mapstructure:"reports_sync_cron"`
	Enabled      bool   `mapstructure:"reports_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("DATABASE_DRIVER", DriverSQLite)
	viper.SetDefault("DATABASE_PATH", "South_U_Restaurants.db")
	viper.SetDefault("DATABASE_URL", "localhost:5432/restaurants")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("OUTPUT_DIR", ".")
	viper.SetDefault("CHART_WIDTH_CM", 16)
	viper.SetDefault("CHART_HEIGHT_CM", 10)
	viper.SetDefault("CHART_DISPLAY", false) // Abre os gráficos no visualizador padrão

	viper.SetDefault("SUMMARY_FILE", "")

	viper.SetDefault("REPORTS_SYNC_CRON", "0 * * * *") // A cada hora cheia
	viper.SetDefault("REPORTS_SYNC_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Database.resolveDSN(); err != nil {
		return nil, err
	}

	return config, nil
}

// resolveDSN monta a string de conexão de acordo com o driver configurado
func (d *Database) resolveDSN() error {
	d.Driver = strings.ToLower(strings.TrimSpace(d.Driver))

	switch d.Driver {
	case DriverSQLite:
		d.DSN = SQLiteDSN(d.Path)
	case DriverPostgres:
		d.DSN = fmt.Sprintf(
			"%s://%s:%s@%s",
			d.Driver,
			d.User,
			d.Password,
			d.URL,
		)
	default:
		return fmt.Errorf("config: driver de banco de dados não suportado: %q", d.Driver)
	}

	return nil
}

// SQLiteDSN abre o arquivo em modo somente leitura, sem criá-lo caso não exista.
func SQLiteDSN(path string) string {
	return fmt.Sprintf("file:%s?mode=ro", filepath.ToSlash(path))
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de:", location)
			return
		}
	}
}
