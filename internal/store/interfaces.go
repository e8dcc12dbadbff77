package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-share-cache/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator decides whether a failed statement may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// ZoneRepository keeps the zones of the change feed.
type ZoneRepository interface {
	// SaveZone creates or renames a zone and bumps its sequence number.
	SaveZone(ctx context.Context, zone models.Zone) (int64, error)
	// DeleteZone tombstones a zone. Unknown zones yield models.ErrZoneNotFound.
	DeleteZone(ctx context.Context, zoneID models.ZoneID) (models.Zone, error)
	// ZoneChanges returns the zones of scope changed after since.
	ZoneChanges(ctx context.Context, scope models.Scope, since int64) (ZoneChanges, error)
	// GetZone returns a live zone or models.ErrZoneNotFound.
	GetZone(ctx context.Context, zoneID models.ZoneID) (models.Zone, error)
}

// RecordRepository keeps the records of every zone.
type RecordRepository interface {
	// RecordChanges returns at most limit records of zoneID changed after
	// since, ordered by sequence number.
	RecordChanges(ctx context.Context, zoneID models.ZoneID, since int64, limit int) (RecordChanges, error)
	// ModifyRecords applies saves and deletes in one transaction.
	ModifyRecords(ctx context.Context, zoneID models.ZoneID, save []models.Record, del []models.RecordID) (ModifiedRecords, error)
	// PurgeTombstones drops deleted rows last modified before the cutoff.
	PurgeTombstones(ctx context.Context, before time.Time) (int64, error)
}

// AccountRepository keeps the accounts served to client registries.
type AccountRepository interface {
	ListAccounts(ctx context.Context) ([]models.Account, error)
	SaveAccount(ctx context.Context, account models.Account) error
}

// ZoneChanges is one page of the zone feed.
type ZoneChanges struct {
	Changed []models.Zone
	Deleted []models.ZoneID
	// Seq is the highest sequence number covered by this page.
	Seq int64
}

// RecordChanges is one page of a zone's record feed.
type RecordChanges struct {
	Upserted   []models.Record
	Deleted    []models.RecordID
	Seq        int64
	MoreComing bool
}

// ModifiedRecords is the committed result of ModifyRecords. Deleted includes
// notes removed together with their topic.
type ModifiedRecords struct {
	Saved   []models.Record
	Deleted []models.RecordID
}
