package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-share-cache/internal/logger"
	"github.com/MKhiriev/go-share-cache/internal/workers"
	"github.com/MKhiriev/go-share-cache/models"
)

// pendingFetch accumulates what the next debounced run has to fetch.
type pendingFetch struct {
	all   bool
	zones bool
	ids   map[models.ZoneID]struct{}
}

type clientSyncJob struct {
	syncService ClientSyncService
	periodic    *workers.Periodic
	debouncer   *workers.Debouncer

	mu      sync.Mutex
	pending pendingFetch

	logger *logger.Logger
}

// NewClientSyncJob creates a job that calls syncService.FetchAll every
// interval and runs triggered fetches after debounce. The job is idle until
// Start is called.
func NewClientSyncJob(syncService ClientSyncService, interval, debounce time.Duration, log *logger.Logger) ClientSyncJob {
	if log == nil {
		log = logger.Nop()
	}
	j := &clientSyncJob{
		syncService: syncService,
		logger:      log.WithComponent("sync-job"),
	}
	j.periodic = workers.NewPeriodic("client-sync", interval, syncService.FetchAll, j.logger)
	j.debouncer = workers.NewDebouncer(debounce, j.runPending)
	return j
}

func (j *clientSyncJob) Start(ctx context.Context) {
	j.periodic.Start(ctx)
}

// Stop halts the ticker and any scheduled triggered fetch. Triggers after
// Stop are ignored.
func (j *clientSyncJob) Stop() {
	j.periodic.Stop()
	j.debouncer.Stop()
}

func (j *clientSyncJob) Trigger(sig models.Signal) {
	j.mu.Lock()
	switch sig.Kind {
	case models.SignalRecords:
		if sig.ZoneID == "" {
			j.pending.all = true
			break
		}
		if j.pending.ids == nil {
			j.pending.ids = make(map[models.ZoneID]struct{})
		}
		j.pending.ids[sig.ZoneID] = struct{}{}
	case models.SignalZones:
		j.pending.zones = true
	default:
		j.mu.Unlock()
		return
	}
	j.mu.Unlock()

	j.debouncer.Signal()
}

func (j *clientSyncJob) SyncNow() {
	j.mu.Lock()
	j.pending.all = true
	j.mu.Unlock()

	j.debouncer.Signal()
}

func (j *clientSyncJob) runPending(ctx context.Context) {
	j.mu.Lock()
	pending := j.pending
	j.pending = pendingFetch{}
	j.mu.Unlock()

	var err error
	switch {
	case pending.all:
		err = j.syncService.FetchAll(ctx)
	default:
		var errs []error
		fetchZones := pending.zones
		for id := range pending.ids {
			e := j.syncService.FetchZone(ctx, id)
			switch {
			case errors.Is(e, ErrUnknownZone):
				// records of a zone we have not seen yet: the zone list is stale
				fetchZones = true
			case e != nil:
				errs = append(errs, e)
			}
		}
		if fetchZones {
			errs = append(errs, j.syncService.FetchZones(ctx))
		}
		err = errors.Join(errs...)
	}

	if err != nil {
		j.logger.Err(err).Msg("triggered sync failed")
	}
}
