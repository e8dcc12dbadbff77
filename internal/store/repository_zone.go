package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-share-cache/internal/logger"
	"github.com/MKhiriev/go-share-cache/models"
)

// zoneRepository is the PostgreSQL-backed [ZoneRepository].
type zoneRepository struct {
	*DB
	logger *logger.Logger
}

func NewZoneRepository(db *DB, logger *logger.Logger) ZoneRepository {
	return &zoneRepository{
		DB:     db,
		logger: logger,
	}
}

func (z *zoneRepository) SaveZone(ctx context.Context, zone models.Zone) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveZoneQuery(zone)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var seq int64
	if err := z.DB.QueryRowContext(ctx, query, args...).Scan(&seq); err != nil {
		log.Err(err).
			Str("func", "zoneRepository.SaveZone").
			Str("zone_id", string(zone.ID)).
			Str("pg_code", postgresError(err)).
			Msg("failed to save zone")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return seq, nil
}

func (z *zoneRepository) DeleteZone(ctx context.Context, zoneID models.ZoneID) (models.Zone, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteZoneQuery(zoneID)
	if err != nil {
		return models.Zone{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var zone models.Zone
	err = z.DB.QueryRowContext(ctx, query, args...).Scan(&zone.ID, &zone.Name, &zone.Owner, &zone.Scope)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Zone{}, models.ErrZoneNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "zoneRepository.DeleteZone").
			Str("zone_id", string(zoneID)).
			Msg("failed to delete zone")
		return models.Zone{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return zone, nil
}

func (z *zoneRepository) GetZone(ctx context.Context, zoneID models.ZoneID) (models.Zone, error) {
	query, args, err := buildGetZoneQuery(zoneID)
	if err != nil {
		return models.Zone{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	zone, _, _, err := scanZone(z.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Zone{}, models.ErrZoneNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "zoneRepository.GetZone").
			Str("zone_id", string(zoneID)).
			Msg("failed to get zone")
		return models.Zone{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return zone, nil
}

// ZoneChanges reads the zone feed of scope after since. Tombstones are
// skipped when since is zero.
func (z *zoneRepository) ZoneChanges(ctx context.Context, scope models.Scope, since int64) (ZoneChanges, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildZoneChangesQuery(scope, since)
	if err != nil {
		return ZoneChanges{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := z.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "zoneRepository.ZoneChanges").
			Str("scope", string(scope)).
			Int64("since", since).
			Msg("failed to execute zone changes query")
		return ZoneChanges{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	changes := ZoneChanges{Seq: since}
	for rows.Next() {
		zone, deleted, seq, err := scanZone(rows)
		if err != nil {
			log.Err(err).Str("func", "zoneRepository.ZoneChanges").Msg("failed to scan zone row")
			return ZoneChanges{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		if deleted {
			changes.Deleted = append(changes.Deleted, zone.ID)
		} else {
			changes.Changed = append(changes.Changed, zone)
		}
		changes.Seq = max(changes.Seq, seq)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "zoneRepository.ZoneChanges").Msg("error occurred during rows iteration")
		return ZoneChanges{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return changes, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanZone(row rowScanner) (zone models.Zone, deleted bool, seq int64, err error) {
	err = row.Scan(&zone.ID, &zone.Name, &zone.Owner, &zone.Scope, &deleted, &seq)
	return zone, deleted, seq, err
}
