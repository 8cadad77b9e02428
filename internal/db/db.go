package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"festivalapi/internal/config"
)

// OpenPostgres connects using the individual config parts.
func OpenPostgres(conf *config.PostgresConfig) (*gorm.DB, error) {
	return open(postgres.Open(conf.DSN()))
}

// OpenPostgresWithURL connects using a full DATABASE_URL.
func OpenPostgresWithURL(url string) (*gorm.DB, error) {
	return open(postgres.Open(url))
}

// OpenSQLite opens a file-backed (or :memory:) sqlite database. Used by
// the CSV loader and by tests.
func OpenSQLite(path string) (*gorm.DB, error) {
	return open(sqlite.Open(path))
}

func open(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	return db, nil
}
