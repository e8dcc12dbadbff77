package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-share-cache/internal/adapter"
	"github.com/MKhiriev/go-share-cache/internal/cache"
	"github.com/MKhiriev/go-share-cache/internal/config"
	"github.com/MKhiriev/go-share-cache/internal/logger"
	"github.com/MKhiriev/go-share-cache/internal/notify"
	"github.com/MKhiriev/go-share-cache/internal/registry"
	"github.com/MKhiriev/go-share-cache/internal/service"
	"github.com/MKhiriev/go-share-cache/internal/store"
	"github.com/MKhiriev/go-share-cache/internal/tui"
	"github.com/MKhiriev/go-share-cache/internal/utils"
	"github.com/MKhiriev/go-share-cache/internal/workers"
	"github.com/MKhiriev/go-share-cache/models"
)

type App struct {
	storages *store.ClientStorages
	services *service.ClientServices
	registry *registry.Registry
	workers  *workers.Workers
	ui       *tui.TUI

	zonesBus   *notify.Bus[models.ZonesChanged]
	recordsBus *notify.Bus[models.RecordsChanged]
	currentBus *notify.Bus[models.CurrentZoneChanged]

	logger *logger.Logger
}

func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	a := &App{
		storages:   storages,
		zonesBus:   notify.NewBus[models.ZonesChanged](log),
		recordsBus: notify.NewBus[models.RecordsChanged](log),
		currentBus: notify.NewBus[models.CurrentZoneChanged](log),
		logger:     log,
	}

	snapshot := storages.Snapshot
	zoneCaches := make([]*cache.ZoneCache, 0, 2)
	for _, scope := range []models.Scope{models.ScopePrivate, models.ScopeShared} {
		zoneCaches = append(zoneCaches, cache.NewZoneCache(scope, cache.ZoneCacheDeps{
			Remote:    serverAdapter,
			Zones:     snapshot,
			Tokens:    snapshot,
			Publisher: a.zonesBus,
			Logger:    log,
		}))
	}

	a.services = service.NewClientServices(service.ClientSyncDeps{
		ZoneCaches:     zoneCaches,
		ZonesBus:       a.zonesBus,
		Remote:         serverAdapter,
		Records:        snapshot,
		Tokens:         snapshot,
		IDs:            utils.NewUUIDGenerator(),
		RecordsChanged: a.recordsBus,
		CurrentChanged: a.currentBus,
		Logger:         log,
	}, cfg.Workers.SyncInterval, cfg.Workers.DebounceInterval, log)

	var (
		watcher workers.Worker
		reg     registrySignaler
	)
	if cfg.Registry.DomainsDir != "" {
		domains, err := registry.NewFileDomainManager(cfg.Registry.DomainsDir, log)
		if err != nil {
			a.closeResources()
			return nil, fmt.Errorf("open domains directory: %w", err)
		}
		a.registry = registry.NewRegistry(domains, serverAdapter, cfg.Workers.DebounceInterval, log)
		watcher = registry.NewDirWatcher(domains.Dir(), a.registry.Signal, log)
		reg = a.registry
	}

	listener, err := adapter.NewSignalListener(cfg.Adapter, newSignalRouter(reg, a.services.SyncJob), log)
	if err != nil {
		a.closeResources()
		return nil, fmt.Errorf("create signal listener: %w", err)
	}

	a.workers = workers.NewWorkers(a.services.SyncJob, watcher, listener)
	a.ui = tui.New(a.services, a.recordsBus, a.currentBus, log)

	return a, nil
}

// Run restores the cached state, starts the background workers and blocks
// in the terminal UI.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	if err := a.services.SyncService.Start(ctx); err != nil {
		return fmt.Errorf("start sync: %w", err)
	}

	a.workers.Start(ctx)
	a.services.SyncJob.SyncNow()
	if a.registry != nil {
		a.registry.Signal()
	}

	return a.ui.Run(ctx)
}

func (a *App) close() {
	a.workers.Stop()
	if a.registry != nil {
		a.registry.Stop()
	}
	a.services.SyncService.Close()
	a.closeResources()

	a.logger.Info().Msg("client stopped")
}

func (a *App) closeResources() {
	a.zonesBus.Close()
	a.recordsBus.Close()
	a.currentBus.Close()

	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Msg("close local storage")
	}
}

type registrySignaler interface {
	Signal()
}

type syncTrigger interface {
	Trigger(sig models.Signal)
}

// newSignalRouter sends account signals to the registry and everything else
// to the sync job. reg may be nil.
func newSignalRouter(reg registrySignaler, job syncTrigger) func(models.Signal) {
	return func(sig models.Signal) {
		if sig.Kind == models.SignalAccounts {
			if reg != nil {
				reg.Signal()
			}
			return
		}
		job.Trigger(sig)
	}
}
