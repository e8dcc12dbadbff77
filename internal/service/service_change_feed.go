package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-share-cache/internal/config"
	"github.com/MKhiriev/go-share-cache/internal/logger"
	"github.com/MKhiriev/go-share-cache/internal/store"
	"github.com/MKhiriev/go-share-cache/models"
)

const defaultPageSize = 200

type changeFeedService struct {
	zones   store.ZoneRepository
	records store.RecordRepository
	signals SignalPublisher
	tokens  *changeTokenIssuer

	pageSize int
	now      func() time.Time

	logger *logger.Logger
}

// NewChangeFeedService serves the change feed from the repositories and
// publishes a signal after every committed change. signals may be nil.
func NewChangeFeedService(zones store.ZoneRepository, records store.RecordRepository, signals SignalPublisher,
	cfg config.App, pageSize int, logger *logger.Logger) (ChangeFeedService, error) {
	tokens, err := newChangeTokenIssuer(cfg.TokenSignKey, cfg.TokenTTL)
	if err != nil {
		return nil, err
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	return &changeFeedService{
		zones:    zones,
		records:  records,
		signals:  signals,
		tokens:   tokens,
		pageSize: pageSize,
		now:      time.Now,
		logger:   logger,
	}, nil
}

func (s *changeFeedService) ZoneChanges(ctx context.Context, req models.ZoneChangesRequest) (models.ZoneChangeBatch, error) {
	stream := zoneStream(req.Scope)
	since, err := s.tokens.parse(stream, req.Token)
	if err != nil {
		return models.ZoneChangeBatch{}, err
	}

	changes, err := s.zones.ZoneChanges(ctx, req.Scope, since)
	if err != nil {
		return models.ZoneChangeBatch{}, fmt.Errorf("error reading zone changes of %s: %w", req.Scope, err)
	}

	token, err := s.tokens.issue(stream, changes.Seq)
	if err != nil {
		return models.ZoneChangeBatch{}, err
	}

	return models.ZoneChangeBatch{
		Changed: changes.Changed,
		Deleted: changes.Deleted,
		Token:   token,
	}, nil
}

func (s *changeFeedService) SaveZone(ctx context.Context, zone models.Zone) (models.Zone, error) {
	if _, err := s.zones.SaveZone(ctx, zone); err != nil {
		return models.Zone{}, fmt.Errorf("error saving zone %s: %w", zone.ID, err)
	}

	s.signal(ctx, models.Signal{Kind: models.SignalZones, Scope: zone.Scope})
	return zone, nil
}

func (s *changeFeedService) DeleteZone(ctx context.Context, zoneID models.ZoneID) error {
	zone, err := s.zones.DeleteZone(ctx, zoneID)
	if err != nil {
		return fmt.Errorf("error deleting zone %s: %w", zoneID, err)
	}

	s.signal(ctx, models.Signal{Kind: models.SignalZones, Scope: zone.Scope})
	return nil
}

func (s *changeFeedService) RecordChanges(ctx context.Context, req models.RecordChangesRequest) (models.ChangeBatch, error) {
	stream := recordStream(req.ZoneID)
	since, err := s.tokens.parse(stream, req.Token)
	if err != nil {
		return models.ChangeBatch{}, err
	}

	// an unknown zone is reported as such rather than as an empty page
	if _, err = s.zones.GetZone(ctx, req.ZoneID); err != nil {
		return models.ChangeBatch{}, fmt.Errorf("error reading zone %s: %w", req.ZoneID, err)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = s.pageSize
	}

	changes, err := s.records.RecordChanges(ctx, req.ZoneID, since, limit)
	if err != nil {
		return models.ChangeBatch{}, fmt.Errorf("error reading record changes of %s: %w", req.ZoneID, err)
	}

	token, err := s.tokens.issue(stream, changes.Seq)
	if err != nil {
		return models.ChangeBatch{}, err
	}

	return models.ChangeBatch{
		ZoneID:     req.ZoneID,
		Upserted:   changes.Upserted,
		Deleted:    changes.Deleted,
		Token:      token,
		MoreComing: changes.MoreComing,
	}, nil
}

func (s *changeFeedService) ModifyRecords(ctx context.Context, req models.ModifyRecordsRequest) (models.ModifyRecordsResponse, error) {
	now := s.now()
	save := make([]models.Record, len(req.Save))
	for i, r := range req.Save {
		r.ZoneID = req.ZoneID
		r.ChangeTag = computeChangeTag(r, now)
		save[i] = r
	}

	modified, err := s.records.ModifyRecords(ctx, req.ZoneID, save, req.Delete)
	if err != nil {
		return models.ModifyRecordsResponse{}, fmt.Errorf("error modifying records of %s: %w", req.ZoneID, err)
	}

	s.logger.Debug().
		Str("zone_id", string(req.ZoneID)).
		Int("saved", len(modified.Saved)).
		Int("deleted", len(modified.Deleted)).
		Msg("records modified")

	s.signal(ctx, models.Signal{Kind: models.SignalRecords, ZoneID: req.ZoneID})

	return models.ModifyRecordsResponse{
		Saved:   modified.Saved,
		Deleted: modified.Deleted,
	}, nil
}

// signal is best effort: the change is committed and clients still catch
// up on their next periodic fetch.
func (s *changeFeedService) signal(ctx context.Context, sig models.Signal) {
	if s.signals == nil {
		return
	}
	if err := s.signals.Publish(ctx, sig); err != nil {
		s.logger.Warn().Err(err).Str("kind", string(sig.Kind)).Msg("change signal not published")
	}
}
