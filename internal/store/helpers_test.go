package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-share-cache/internal/logger"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db, mock
}

func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:                 db,
		dialect:            dialectPostgres,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}
}

func testContext() context.Context {
	return logger.Nop().WithContext(context.Background())
}
