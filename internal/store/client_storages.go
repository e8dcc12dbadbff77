package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-share-cache/internal/config"
	"github.com/MKhiriev/go-share-cache/internal/logger"
)

// ClientStorages groups the client-side persistence.
type ClientStorages struct {
	DB *DB
	// Snapshot backs the zone and topic caches.
	Snapshot *SnapshotStore
}

// NewClientStorages opens the SQLite snapshot at cfg.Path, creating it when
// missing, and applies pending migrations.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.Path, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		DB:       db,
		Snapshot: NewSnapshotStore(db, logger),
	}, nil
}

// Close releases the database.
func (s *ClientStorages) Close() error {
	return s.DB.Close()
}
