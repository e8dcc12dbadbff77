package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-share-cache/internal/logger"
	"github.com/MKhiriev/go-share-cache/internal/store"
	"github.com/MKhiriev/go-share-cache/internal/workers"
)

// NewPurgeJob returns a worker removing tombstones older than tokenTTL every
// interval. A token issued before the cutoff has expired by then, so every
// valid token can still be answered incrementally.
func NewPurgeJob(records store.RecordRepository, tokenTTL, interval time.Duration, log *logger.Logger) *workers.Periodic {
	return workers.NewPeriodic("tombstone-purge", interval, purgeFunc(records, tokenTTL, time.Now, log), log)
}

func purgeFunc(records store.RecordRepository, tokenTTL time.Duration, now func() time.Time, log *logger.Logger) func(context.Context) error {
	return func(ctx context.Context) error {
		purged, err := records.PurgeTombstones(ctx, now().Add(-tokenTTL))
		if err != nil {
			return fmt.Errorf("error purging tombstones: %w", err)
		}
		if purged > 0 {
			log.Info().Int64("purged", purged).Msg("tombstones purged")
		}
		return nil
	}
}
