// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the goose migrations of the server database
// (postgres/) and of the client snapshot (sqlite/).
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql
var postgresMigrations embed.FS

//go:embed sqlite/*.sql
var sqliteMigrations embed.FS

var errNilDB = errors.New("db is nil")

// MigratePostgres applies the change-feed schema.
func MigratePostgres(db *sql.DB) error {
	return migrate(db, goose.DialectPostgres, postgresMigrations, "postgres")
}

// MigrateSQLite applies the client snapshot schema.
func MigrateSQLite(db *sql.DB) error {
	return migrate(db, goose.DialectSQLite3, sqliteMigrations, "sqlite")
}

func migrate(db *sql.DB, dialect goose.Dialect, fsys embed.FS, dir string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return fmt.Errorf("migration error opening %s migrations: %w", dir, err)
	}

	provider, err := goose.NewProvider(dialect, db, sub)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	if _, err := provider.Up(context.Background()); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
