package service

import (
	"fmt"

	"github.com/MKhiriev/go-share-cache/internal/config"
	"github.com/MKhiriev/go-share-cache/internal/logger"
	"github.com/MKhiriev/go-share-cache/internal/notify"
	"github.com/MKhiriev/go-share-cache/internal/store"
	"github.com/MKhiriev/go-share-cache/internal/workers"
	"github.com/MKhiriev/go-share-cache/models"
)

// Services groups the server-side services and the signal bus they publish to.
type Services struct {
	ChangeFeed ChangeFeedService
	Accounts   AccountService
	AppInfo    AppInfoService

	// Signals fans committed changes out to websocket listeners.
	Signals *notify.Bus[models.Signal]

	// Purge removes expired tombstones in the background.
	Purge *workers.Periodic
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	signals := notify.NewBus[models.Signal](logger)

	changeFeed, err := NewChangeFeedService(storages.Zones, storages.Records, signals, cfg.App, cfg.Server.PageSize, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating change feed service: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		ChangeFeed: NewChangeFeedValidationService().Wrap(changeFeed),
		Accounts:   NewAccountService(storages.Accounts, signals, logger),
		AppInfo:    appInfo,
		Signals:    signals,
		Purge:      NewPurgeJob(storages.Records, cfg.App.TokenTTL, cfg.Workers.PurgeInterval, logger),
	}, nil
}

// Close stops the purge worker and the signal bus.
func (s *Services) Close() {
	s.Purge.Stop()
	s.Signals.Close()
}
