package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-share-cache/internal/config"
	"github.com/MKhiriev/go-share-cache/internal/logger"
)

// Storages groups the server repositories.
type Storages struct {
	DB       *DB
	Zones    ZoneRepository
	Records  RecordRepository
	Accounts AccountRepository
}

// NewStorages connects to PostgreSQL, applies migrations and builds the
// repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		DB:       db,
		Zones:    NewZoneRepository(db, log),
		Records:  NewRecordRepository(db, log),
		Accounts: NewAccountRepository(db, log),
	}
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	return s.DB.Close()
}
