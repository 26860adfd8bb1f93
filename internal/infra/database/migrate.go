package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"net/http"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/httpfs"
)

//go:embed migrations
var migrations embed.FS

// Migrate lleva el esquema de la base al día con las migraciones
// embebidas en este paquete.
func Migrate(ctx context.Context, db *sql.DB) error {
	if err := StatusCheck(ctx, db); err != nil {
		return fmt.Errorf("db status check: %w", err)
	}

	source, err := httpfs.New(http.FS(migrations), "migrations")
	if err != nil {
		return fmt.Errorf("invalid source instance: %w", err)
	}

	target, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("invalid target postgres instance: %w", err)
	}

	m, err := migrate.NewWithInstance("httpfs", source, "postgres", target)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
