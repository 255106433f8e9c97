// Package database abre conexões somente leitura com a base de restaurantes
package database

import (
	"context"
	"database/sql"
	"os"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/restaurant-reports/internal/config"
	_ "modernc.org/sqlite"
)

// ErrDatabaseNotFound indica que o arquivo sqlite configurado não existe
var ErrDatabaseNotFound = errors.New("database file not found")

// Conn é o que os repositórios precisam de uma conexão aberta
type Conn interface {
	Queryer
	Close() error
}

type Connection struct {
	*sql.DB
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	if cfg.Driver == config.DriverSQLite {
		// Com mode=ro o sqlite não cria o arquivo, mas só falha no primeiro uso
		if _, err := os.Stat(cfg.Path); err != nil {
			return nil, errors.Wrapf(ErrDatabaseNotFound, "%s", cfg.Path)
		}
	}

	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir a base de dados")
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "erro ao testar conexão com a base de dados")
	}

	return &Connection{DB: db}, nil
}

func (c *Connection) Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return c.DB.QueryContext(ctx, query, args...)
}
