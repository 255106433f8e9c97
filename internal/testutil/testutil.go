// Package testutil monta bases sqlite de teste com o conjunto de referência
package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-reports/internal/config"
	_ "modernc.org/sqlite"
)

// ReferenceSchema é o esquema normalizado de três tabelas
const ReferenceSchema = `
CREATE TABLE categories (
    id INTEGER PRIMARY KEY,
    category TEXT NOT NULL UNIQUE
);

CREATE TABLE buildings (
    id INTEGER PRIMARY KEY,
    building INTEGER NOT NULL UNIQUE
);

CREATE TABLE restaurants (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    rating REAL,
    category_id INTEGER,
    building_id INTEGER
);
`

// ReferenceData tem 25 restaurantes válidos em 14 categorias.
// "Bakery" e o prédio 9999 não são referenciados; os dois últimos
// restaurantes apontam para categoria e prédio inexistentes.
const ReferenceData = `
INSERT INTO categories (id, category) VALUES
    (1, 'Cafe'),
    (2, 'Bar'),
    (3, 'Asian Cuisine '),
    (4, 'Bubble Tea Shop'),
    (5, 'Cookie Shop'),
    (6, 'Deli'),
    (7, 'Japanese Restaurant'),
    (8, 'Juice Shop'),
    (9, 'Korean Restaurant'),
    (10, 'Mediterranean Restaurant'),
    (11, 'Mexican Restaurant'),
    (12, 'Pizzeria'),
    (13, 'Sandwich Shop'),
    (14, 'Thai Restaurant'),
    (15, 'Bakery');

INSERT INTO buildings (id, building) VALUES
    (1, 1101),
    (2, 1111),
    (3, 1200),
    (4, 1210),
    (5, 1220),
    (6, 1235),
    (7, 1300),
    (8, 1310),
    (9, 9999);

INSERT INTO restaurants (id, name, rating, category_id, building_id) VALUES
    (1, 'M-36 Coffee Roasters Cafe', 3.8, 1, 1),
    (2, 'Bubble Island', 4.2, 4, 1),
    (3, 'Good Time Charley''s', 3.9, 2, 2),
    (4, 'Rick''s American Cafe', 3.7, 2, 2),
    (5, 'Cafe Zola', 4.4, 1, 3),
    (6, 'Espresso Royale', 4.0, 1, 3),
    (7, 'Pizza House', 4.3, 12, 4),
    (8, 'Pizza Bob''s', 4.1, 12, 4),
    (9, 'Zingerman''s Delicatessen', 4.6, 6, 5),
    (10, 'Insomnia Cookies', 4.5, 5, 5),
    (11, 'Ashley''s', 4.0, 2, 6),
    (12, 'Scorekeepers', 3.5, 2, 6),
    (13, 'Kang''s', 4.1, 9, 7),
    (14, 'Seoul Street', 4.4, 9, 7),
    (15, 'Panda Express', 3.2, 3, 8),
    (16, 'Tomukun', 4.2, 3, 8),
    (17, 'Sadako', 4.3, 7, 1),
    (18, 'Jamba Juice', 4.0, 8, 2),
    (19, 'Jimmy John''s', 3.9, 13, 3),
    (20, 'Potbelly', 4.1, 13, 3),
    (21, 'Jerusalem Garden', 4.5, 10, 4),
    (22, 'Chipotle', 4.0, 11, 5),
    (23, 'BTB Burrito', 4.1, 11, 6),
    (24, 'Coco Tea', 4.4, 4, 7),
    (25, 'Tuptim Thai', 4.1, 14, 8),
    (26, 'Ghost Kitchen', 5.0, 99, 1),
    (27, 'Nowhere Diner', 5.0, 6, 42);
`

// ReferenceCounts é a contagem esperada de restaurantes por categoria
var ReferenceCounts = map[string]int{
	"Asian Cuisine ":           2,
	"Bar":                      4,
	"Bubble Tea Shop":          2,
	"Cafe":                     3,
	"Cookie Shop":              1,
	"Deli":                     1,
	"Japanese Restaurant":      1,
	"Juice Shop":               1,
	"Korean Restaurant":        2,
	"Mediterranean Restaurant": 1,
	"Mexican Restaurant":       2,
	"Pizzeria":                 2,
	"Sandwich Shop":            2,
	"Thai Restaurant":          1,
}

// SeedReferenceDB cria a base de referência em um diretório temporário e
// retorna a configuração sqlite apontando para ela
func SeedReferenceDB(t *testing.T) config.Database {
	t.Helper()

	path := filepath.Join(t.TempDir(), "South_U_Restaurants.db")
	Exec(t, path, ReferenceSchema+ReferenceData)

	return DatabaseConfig(path)
}

// DatabaseConfig monta a configuração sqlite somente leitura para o caminho
func DatabaseConfig(path string) config.Database {
	return config.Database{
		Driver: config.DriverSQLite,
		Path:   path,
		DSN:    config.SQLiteDSN(path),
	}
}

// Exec executa comandos em modo leitura e escrita na base do caminho informado
func Exec(t *testing.T, path string, statements string) {
	t.Helper()

	db, err := sql.Open(config.DriverSQLite, path)
	require.NoError(t, err, "erro ao abrir a base de teste")
	defer db.Close()

	_, err = db.Exec(statements)
	require.NoError(t, err, "erro ao executar os comandos na base de teste")
}
