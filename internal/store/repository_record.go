package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-share-cache/internal/logger"
	"github.com/MKhiriev/go-share-cache/models"
)

const maxModifyAttempts = 3

// recordRepository is the PostgreSQL-backed [RecordRepository]. Every
// change takes the next value of change_seq, so reading rows with a
// sequence greater than a token's replays exactly what the token missed.
type recordRepository struct {
	*DB
	logger *logger.Logger
}

func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	return &recordRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *recordRepository) RecordChanges(ctx context.Context, zoneID models.ZoneID, since int64, limit int) (RecordChanges, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildRecordChangesQuery(zoneID, since, limit)
	if err != nil {
		return RecordChanges{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.RecordChanges").
			Str("zone_id", string(zoneID)).
			Int64("since", since).
			Msg("failed to execute record changes query")
		return RecordChanges{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	changes := RecordChanges{Seq: since}
	n := 0
	for rows.Next() {
		n++
		if n > limit {
			changes.MoreComing = true
			break
		}

		record, deleted, seq, err := scanRecord(rows)
		if err != nil {
			log.Err(err).
				Str("func", "recordRepository.RecordChanges").
				Str("zone_id", string(zoneID)).
				Msg("failed to scan record row")
			return RecordChanges{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		record.ZoneID = zoneID

		if deleted {
			changes.Deleted = append(changes.Deleted, record.ID)
		} else {
			changes.Upserted = append(changes.Upserted, record)
		}
		changes.Seq = max(changes.Seq, seq)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "recordRepository.RecordChanges").Msg("error occurred during rows iteration")
		return RecordChanges{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return changes, nil
}

// ModifyRecords saves and deletes records of one zone atomically. Deleting
// a topic also deletes its notes. Deleting an unknown record rolls the whole
// request back with models.ErrRecordNotFound. Serialization failures and
// deadlocks are retried.
func (r *recordRepository) ModifyRecords(ctx context.Context, zoneID models.ZoneID, save []models.Record, del []models.RecordID) (ModifiedRecords, error) {
	log := logger.FromContext(ctx)

	var (
		result ModifiedRecords
		err    error
	)
	for attempt := 1; attempt <= maxModifyAttempts; attempt++ {
		result, err = r.modifyOnce(ctx, zoneID, save, del)
		if err == nil || !r.retryable(err) {
			break
		}
		log.Warn().Err(err).
			Str("func", "recordRepository.ModifyRecords").
			Int("attempt", attempt).
			Msg("retrying modify records")
	}

	return result, err
}

func (r *recordRepository) modifyOnce(ctx context.Context, zoneID models.ZoneID, save []models.Record, del []models.RecordID) (result ModifiedRecords, err error) {
	log := logger.FromContext(ctx).With().Str("func", "recordRepository.ModifyRecords").Str("zone_id", string(zoneID)).Logger()

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return ModifiedRecords{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = lockZone(ctx, tx, zoneID); err != nil {
		return ModifiedRecords{}, err
	}

	result.Saved = make([]models.Record, 0, len(save))
	for _, record := range save {
		query, args, buildErr := buildUpsertRecordQuery(zoneID, record)
		if buildErr != nil {
			return ModifiedRecords{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		var modifiedAt time.Time
		if err = tx.QueryRowContext(ctx, query, args...).Scan(&modifiedAt); err != nil {
			log.Err(err).Str("record_id", string(record.ID)).Msg("failed to upsert record")
			return ModifiedRecords{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		record.ZoneID = zoneID
		record.ModifiedAt = &modifiedAt
		result.Saved = append(result.Saved, record)
	}

	result.Deleted = make([]models.RecordID, 0, len(del))
	for _, id := range del {
		var deleted []models.RecordID
		deleted, err = deleteRecord(ctx, tx, zoneID, id)
		if err != nil {
			if !errors.Is(err, models.ErrRecordNotFound) {
				log.Err(err).Str("record_id", string(id)).Msg("failed to delete record")
			}
			return ModifiedRecords{}, err
		}
		result.Deleted = append(result.Deleted, deleted...)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("failed to commit transaction")
		return ModifiedRecords{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return result, nil
}

// lockZone holds the zone row for the rest of the transaction so a
// concurrent zone delete cannot interleave.
func lockZone(ctx context.Context, tx *sql.Tx, zoneID models.ZoneID) error {
	query, args, err := buildGetZoneQuery(zoneID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	_, _, _, err = scanZone(tx.QueryRowContext(ctx, query+" FOR UPDATE", args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrZoneNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// deleteRecord tombstones id and, for topics, the notes under it. It
// returns every tombstoned ID, id first.
func deleteRecord(ctx context.Context, tx *sql.Tx, zoneID models.ZoneID, id models.RecordID) ([]models.RecordID, error) {
	query, args, err := buildDeleteRecordQuery(zoneID, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var recordType models.RecordType
	err = tx.QueryRowContext(ctx, query, args...).Scan(&recordType)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", models.ErrRecordNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted := []models.RecordID{id}
	if recordType != models.RecordTypeTopic {
		return deleted, nil
	}

	query, args, err = buildDeleteChildrenQuery(zoneID, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	defer rows.Close()

	for rows.Next() {
		var child models.RecordID
		if err := rows.Scan(&child); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		deleted = append(deleted, child)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return deleted, nil
}

func (r *recordRepository) PurgeTombstones(ctx context.Context, before time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	var purged int64
	for _, build := range []func(any) (string, []any, error){buildPurgeRecordsQuery, buildPurgeZonesQuery} {
		query, args, err := build(before)
		if err != nil {
			return purged, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		res, err := r.DB.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).Str("func", "recordRepository.PurgeTombstones").Msg("failed to purge tombstones")
			return purged, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return purged, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		purged += n
	}

	return purged, nil
}

func scanRecord(row rowScanner) (record models.Record, deleted bool, seq int64, err error) {
	var (
		permission string
		modifiedAt time.Time
	)
	err = row.Scan(
		&record.ID,
		&record.Type,
		&record.ParentID,
		&record.Name,
		&record.ShareID,
		&permission,
		&record.ChangeTag,
		&deleted,
		&seq,
		&modifiedAt,
	)
	if err != nil {
		return models.Record{}, false, 0, err
	}

	record.Permission, err = models.ParsePermission(permission)
	if err != nil {
		return models.Record{}, false, 0, err
	}
	record.ModifiedAt = &modifiedAt

	return record, deleted, seq, nil
}
