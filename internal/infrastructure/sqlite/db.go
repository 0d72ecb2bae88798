// Package sqlite implements the persistence ports on an embedded SQLite
// database via GORM. The schema is managed by explicit, versioned SQL
// migrations applied once at open; there is no runtime trial-and-error
// schema patching.
package sqlite

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	migrate "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jhoicas/invoice-desk/internal/domain"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Open runs pending migrations against the database file and returns a GORM
// handle bound to it. The file is created when missing.
func Open(path string) (*gorm.DB, error) {
	if err := runMigrations(path); err != nil {
		return nil, fmt.Errorf("migrate %s: %w", path, err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return db, nil
}

// runMigrations applies the embedded versioned migrations in order.
func runMigrations(path string) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, "sqlite3://"+path)
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// translateError maps driver errors onto domain sentinels.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrAlreadyExists
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case strings.Contains(err.Error(), "UNIQUE constraint failed"):
		return domain.ErrAlreadyExists
	default:
		return err
	}
}
