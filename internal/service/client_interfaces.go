package service

import (
	"context"

	"github.com/MKhiriev/go-share-cache/internal/cache"
	"github.com/MKhiriev/go-share-cache/internal/workers"
	"github.com/MKhiriev/go-share-cache/models"
)

// ClientSyncService coordinates the zone caches of a client with one topic
// cache per known zone.
type ClientSyncService interface {
	// Start subscribes to zone notifications and restores the stored zone
	// lists, which in turn restores every topic cache.
	Start(ctx context.Context) error

	// FetchAll pulls zone changes of every scope, then record changes of
	// every cached zone. Errors of individual zones are joined.
	FetchAll(ctx context.Context) error

	// FetchZones pulls zone changes of every scope.
	FetchZones(ctx context.Context) error

	// FetchZone pulls record changes of one cached zone. Unknown zones yield
	// ErrUnknownZone.
	FetchZone(ctx context.Context, zoneID models.ZoneID) error

	// CurrentZone returns the zone observers should display.
	CurrentZone() (models.Zone, bool)

	// SelectZone makes zoneID current and notifies observers.
	SelectZone(ctx context.Context, zoneID models.ZoneID) error

	// Current returns the topic cache of the current zone.
	Current() (*cache.TopicCache, bool)

	// Zones returns every cached zone, ordered by name.
	Zones() []models.Zone

	// Close stops the notification loop and closes every cache.
	Close()
}

// ClientSyncJob runs ClientSyncService fetches periodically and on demand.
type ClientSyncJob interface {
	workers.Worker

	// Trigger schedules a debounced fetch for the list sig names. Bursts
	// of signals collapse into one fetch per debounce window.
	Trigger(sig models.Signal)

	// SyncNow schedules a debounced full fetch.
	SyncNow()
}
