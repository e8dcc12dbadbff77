package cache

import (
	"context"

	"github.com/MKhiriev/go-share-cache/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/cache_mock.go -package=mock

// RecordSource is the remote side of a topic cache.
type RecordSource interface {
	// FetchRecordChanges returns the changes of zoneID since token. An expired
	// token yields models.ErrChangeTokenExpired.
	FetchRecordChanges(ctx context.Context, zoneID models.ZoneID, token models.ChangeToken) (models.ChangeBatch, error)

	// ModifyRecords pushes local saves and deletes of one zone.
	ModifyRecords(ctx context.Context, req models.ModifyRecordsRequest) (models.ModifyRecordsResponse, error)
}

// ZoneSource is the remote side of a zone cache.
type ZoneSource interface {
	FetchZoneChanges(ctx context.Context, scope models.Scope, token models.ChangeToken) (models.ZoneChangeBatch, error)
}

// RecordStore persists topic cache snapshots.
type RecordStore interface {
	LoadRecords(ctx context.Context, zoneID models.ZoneID) ([]models.Record, error)
	SaveRecords(ctx context.Context, zoneID models.ZoneID, save []models.Record, deleted []models.RecordID) error
	DeleteZoneRecords(ctx context.Context, zoneID models.ZoneID) error
}

// ZoneStore persists zone cache snapshots.
type ZoneStore interface {
	LoadZones(ctx context.Context, scope models.Scope) ([]models.Zone, error)
	SaveZones(ctx context.Context, scope models.Scope, save []models.Zone, deleted []models.ZoneID) error
}

// TokenStore persists change tokens by scope key (see TopicTokenKey and
// ZoneTokenKey).
type TokenStore interface {
	LoadToken(ctx context.Context, key string) (models.ChangeToken, error)
	SaveToken(ctx context.Context, key string, token models.ChangeToken) error
}

// Publisher delivers cache notifications. *notify.Bus satisfies it.
type Publisher[T any] interface {
	Publish(ctx context.Context, event T) error
}

// IDGenerator creates identifiers for records created locally.
type IDGenerator interface {
	Generate() string
}
