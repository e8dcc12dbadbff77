package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-share-cache/internal/cache"
	"github.com/MKhiriev/go-share-cache/internal/service"
	"github.com/MKhiriev/go-share-cache/models"
)

var errNoZone = errors.New("no zone selected")

// zoneView is what the model reads, switches and edits.
type zoneView interface {
	CurrentZone() (models.Zone, bool)
	Zones() []models.Zone
	Topics() []models.Topic
	SelectZone(ctx context.Context, zoneID models.ZoneID) error
	editor
}

// editor changes records of the current zone.
type editor interface {
	AddTopic(ctx context.Context, name string) error
	RenameTopic(ctx context.Context, id models.RecordID, name string) error
	DeleteTopic(ctx context.Context, id models.RecordID) error
	AddNote(ctx context.Context, topicID models.RecordID, title string) error
	UpdateNote(ctx context.Context, id models.RecordID, title string) error
	DeleteNote(ctx context.Context, id models.RecordID) error
}

// syncer schedules a full fetch.
type syncer interface {
	SyncNow()
}

// syncServiceView reads and edits the coordinator's current topic cache.
type syncServiceView struct {
	service.ClientSyncService
}

func (v syncServiceView) topicCache() (*cache.TopicCache, error) {
	tc, ok := v.Current()
	if !ok {
		return nil, errNoZone
	}
	return tc, nil
}

func (v syncServiceView) Topics() []models.Topic {
	tc, err := v.topicCache()
	if err != nil {
		return nil
	}
	return tc.Topics()
}

func (v syncServiceView) AddTopic(ctx context.Context, name string) error {
	tc, err := v.topicCache()
	if err != nil {
		return err
	}
	_, err = tc.AddTopic(ctx, name)
	return err
}

func (v syncServiceView) RenameTopic(ctx context.Context, id models.RecordID, name string) error {
	tc, err := v.topicCache()
	if err != nil {
		return err
	}
	return tc.RenameTopic(ctx, id, name)
}

func (v syncServiceView) DeleteTopic(ctx context.Context, id models.RecordID) error {
	tc, err := v.topicCache()
	if err != nil {
		return err
	}
	return tc.DeleteTopic(ctx, id)
}

func (v syncServiceView) AddNote(ctx context.Context, topicID models.RecordID, title string) error {
	tc, err := v.topicCache()
	if err != nil {
		return err
	}
	_, err = tc.AddNote(ctx, topicID, title)
	return err
}

func (v syncServiceView) UpdateNote(ctx context.Context, id models.RecordID, title string) error {
	tc, err := v.topicCache()
	if err != nil {
		return err
	}
	return tc.UpdateNote(ctx, id, title)
}

func (v syncServiceView) DeleteNote(ctx context.Context, id models.RecordID) error {
	tc, err := v.topicCache()
	if err != nil {
		return err
	}
	return tc.DeleteNote(ctx, id)
}
