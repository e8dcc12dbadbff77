package service

import (
	"context"

	"github.com/MKhiriev/go-share-cache/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ChangeFeedService serves zone and record changes to clients.
type ChangeFeedService interface {
	// ZoneChanges returns the zones of a database scope changed since the
	// request token. An empty token returns every live zone.
	ZoneChanges(ctx context.Context, req models.ZoneChangesRequest) (models.ZoneChangeBatch, error)
	SaveZone(ctx context.Context, zone models.Zone) (models.Zone, error)
	DeleteZone(ctx context.Context, zoneID models.ZoneID) error

	// RecordChanges returns one page of a zone's record changes.
	// Expired or foreign tokens yield models.ErrChangeTokenExpired.
	RecordChanges(ctx context.Context, req models.RecordChangesRequest) (models.ChangeBatch, error)
	ModifyRecords(ctx context.Context, req models.ModifyRecordsRequest) (models.ModifyRecordsResponse, error)
}

// AccountService lists and registers the accounts client registries mirror.
type AccountService interface {
	ListAccounts(ctx context.Context) ([]models.Account, error)
	SaveAccount(ctx context.Context, account models.Account) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// SignalPublisher fans change signals out to connected clients.
// *notify.Bus[models.Signal] satisfies it.
type SignalPublisher interface {
	Publish(ctx context.Context, signal models.Signal) error
}

// ChangeFeedServiceWrapper decorates a ChangeFeedService, e.g. with
// validation.
type ChangeFeedServiceWrapper interface {
	Wrap(ChangeFeedService) ChangeFeedService
}
