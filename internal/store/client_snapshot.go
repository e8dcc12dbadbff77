package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-share-cache/internal/logger"
	"github.com/MKhiriev/go-share-cache/models"
)

// SnapshotStore keeps the client's cached zones, records and change tokens
// in SQLite. It satisfies cache.RecordStore, cache.ZoneStore and
// cache.TokenStore.
type SnapshotStore struct {
	*DB
	logger *logger.Logger
}

func NewSnapshotStore(db *DB, logger *logger.Logger) *SnapshotStore {
	return &SnapshotStore{
		DB:     db,
		logger: logger,
	}
}

func (s *SnapshotStore) LoadRecords(ctx context.Context, zoneID models.ZoneID) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLoadCachedRecordsQuery(zoneID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "SnapshotStore.LoadRecords").
			Str("zone_id", string(zoneID)).
			Msg("failed to load cached records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.Record, 0, 32)
	for rows.Next() {
		var (
			record     models.Record
			permission string
		)
		if err := rows.Scan(&record.ID, &record.Type, &record.ParentID, &record.Name,
			&record.ShareID, &permission, &record.ChangeTag); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if record.Permission, err = models.ParsePermission(permission); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		record.ZoneID = zoneID
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

// SaveRecords upserts save and removes deleted in one transaction.
func (s *SnapshotStore) SaveRecords(ctx context.Context, zoneID models.ZoneID, save []models.Record, deleted []models.RecordID) error {
	if len(save) == 0 && len(deleted) == 0 {
		return nil
	}

	return s.inTx(ctx, "SnapshotStore.SaveRecords", func(tx *sql.Tx) error {
		for _, record := range save {
			query, args, err := buildUpsertCachedRecordQuery(zoneID, record)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}

		if len(deleted) == 0 {
			return nil
		}

		query, args, err := buildDeleteCachedRecordsQuery(zoneID, deleted)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
}

func (s *SnapshotStore) DeleteZoneRecords(ctx context.Context, zoneID models.ZoneID) error {
	query, args, err := buildDeleteCachedRecordsQuery(zoneID, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "SnapshotStore.DeleteZoneRecords").
			Str("zone_id", string(zoneID)).
			Msg("failed to delete cached records")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *SnapshotStore) LoadZones(ctx context.Context, scope models.Scope) ([]models.Zone, error) {
	query, args, err := buildLoadCachedZonesQuery(scope)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "SnapshotStore.LoadZones").
			Str("scope", string(scope)).
			Msg("failed to load cached zones")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	zones := make([]models.Zone, 0, 8)
	for rows.Next() {
		zone := models.Zone{Scope: scope}
		if err := rows.Scan(&zone.ID, &zone.Name, &zone.Owner); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		zones = append(zones, zone)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return zones, nil
}

func (s *SnapshotStore) SaveZones(ctx context.Context, scope models.Scope, save []models.Zone, deleted []models.ZoneID) error {
	if len(save) == 0 && len(deleted) == 0 {
		return nil
	}

	return s.inTx(ctx, "SnapshotStore.SaveZones", func(tx *sql.Tx) error {
		for _, zone := range save {
			query, args, err := buildUpsertCachedZoneQuery(scope, zone)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}

		if len(deleted) == 0 {
			return nil
		}

		query, args, err := buildDeleteCachedZonesQuery(deleted)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
}

// LoadToken returns the saved token of key, or an empty token.
func (s *SnapshotStore) LoadToken(ctx context.Context, key string) (models.ChangeToken, error) {
	query, args, err := buildLoadTokenQuery(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var token []byte
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "SnapshotStore.LoadToken").
			Str("key", key).
			Msg("failed to load change token")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return models.ChangeToken(token), nil
}

// SaveToken stores token under key. An empty token forgets the key.
func (s *SnapshotStore) SaveToken(ctx context.Context, key string, token models.ChangeToken) error {
	var (
		query string
		args  []any
		err   error
	)
	if token.IsZero() {
		query, args, err = buildDeleteTokenQuery(key)
	} else {
		query, args, err = buildSaveTokenQuery(key, token)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "SnapshotStore.SaveToken").
			Str("key", key).
			Msg("failed to save change token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *SnapshotStore) inTx(ctx context.Context, funcName string, fn func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		log.Err(err).Str("func", funcName).Msg("transaction rolled back")
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
