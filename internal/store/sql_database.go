package store

import (
	"database/sql"

	"github.com/MKhiriev/go-share-cache/internal/logger"
	"github.com/MKhiriev/go-share-cache/migrations"
)

type dialect int

const (
	dialectPostgres dialect = iota
	dialectSQLite
)

// DB wraps a connection with the error classifier and schema of its dialect.
type DB struct {
	*sql.DB
	dialect            dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the schema that matches the connection dialect.
func (db *DB) Migrate() error {
	if db == nil || db.DB == nil {
		return ErrNilDB
	}

	if db.dialect == dialectSQLite {
		return migrations.MigrateSQLite(db.DB)
	}
	return migrations.MigratePostgres(db.DB)
}

// retryable reports whether err is worth another attempt.
func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
