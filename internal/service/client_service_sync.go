// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-share-cache/internal/cache"
	"github.com/MKhiriev/go-share-cache/internal/logger"
	"github.com/MKhiriev/go-share-cache/internal/notify"
	"github.com/MKhiriev/go-share-cache/models"
)

// ClientSyncDeps wires a ClientSyncService.
type ClientSyncDeps struct {
	// ZoneCaches holds one cache per database scope. They must publish to
	// ZonesBus.
	ZoneCaches []*cache.ZoneCache
	ZonesBus   *notify.Bus[models.ZonesChanged]

	Remote  cache.RecordSource
	Records cache.RecordStore
	Tokens  cache.TokenStore
	IDs     cache.IDGenerator

	// RecordsChanged receives the notifications of every topic cache.
	RecordsChanged cache.Publisher[models.RecordsChanged]
	// CurrentChanged receives current zone switches.
	CurrentChanged cache.Publisher[models.CurrentZoneChanged]

	Logger *logger.Logger
}

type clientSyncService struct {
	deps ClientSyncDeps
	sub  *notify.Subscription[models.ZonesChanged]

	mu      sync.RWMutex
	topics  map[models.ZoneID]*cache.TopicCache
	current models.ZoneID
	closed  bool

	logger *logger.Logger
}

func NewClientSyncService(deps ClientSyncDeps) ClientSyncService {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &clientSyncService{
		deps:   deps,
		topics: make(map[models.ZoneID]*cache.TopicCache),
		logger: log.WithComponent("sync-coordinator"),
	}
}

func (s *clientSyncService) Start(ctx context.Context) error {
	sub, err := s.deps.ZonesBus.Subscribe(notify.SubscriptionSpec{
		Name:         "sync-coordinator",
		Backpressure: notify.BackpressureBlock,
	}, s.onZonesChanged)
	if err != nil {
		return fmt.Errorf("subscribe to zone changes: %w", err)
	}
	s.sub = sub

	for _, zc := range s.deps.ZoneCaches {
		if err := zc.Load(ctx); err != nil {
			return fmt.Errorf("restore zones: %w", err)
		}
	}
	return nil
}

func (s *clientSyncService) FetchAll(ctx context.Context) error {
	errs := []error{s.FetchZones(ctx)}

	for _, tc := range s.topicCaches() {
		if err := tc.FetchChanges(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *clientSyncService) FetchZones(ctx context.Context) error {
	var errs []error
	for _, zc := range s.deps.ZoneCaches {
		if err := zc.FetchChanges(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *clientSyncService) FetchZone(ctx context.Context, zoneID models.ZoneID) error {
	s.mu.RLock()
	tc, ok := s.topics[zoneID]
	s.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownZone, zoneID)
	}
	return tc.FetchChanges(ctx)
}

func (s *clientSyncService) CurrentZone() (models.Zone, bool) {
	tc, ok := s.Current()
	if !ok {
		return models.Zone{}, false
	}
	return tc.Zone(), true
}

func (s *clientSyncService) SelectZone(ctx context.Context, zoneID models.ZoneID) error {
	s.mu.Lock()
	if _, ok := s.topics[zoneID]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrUnknownZone, zoneID)
	}
	changed := s.current != zoneID
	s.current = zoneID
	s.mu.Unlock()

	if changed {
		s.publishCurrent(ctx, zoneID)
	}
	return nil
}

func (s *clientSyncService) Current() (*cache.TopicCache, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tc, ok := s.topics[s.current]
	return tc, ok
}

func (s *clientSyncService) Zones() []models.Zone {
	var zones []models.Zone
	for _, zc := range s.deps.ZoneCaches {
		zones = append(zones, zc.Zones()...)
	}
	slices.SortStableFunc(zones, func(a, b models.Zone) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return zones
}

func (s *clientSyncService) Close() {
	if s.sub != nil {
		s.sub.Close()
	}
	for _, zc := range s.deps.ZoneCaches {
		zc.Close()
	}

	s.mu.Lock()
	s.closed = true
	topics := s.topics
	s.topics = make(map[models.ZoneID]*cache.TopicCache)
	s.mu.Unlock()

	for _, tc := range topics {
		tc.Close()
	}
}

// onZonesChanged runs on the single subscription worker, so cache creation
// and removal never race with each other.
func (s *clientSyncService) onZonesChanged(ctx context.Context, event models.ZonesChanged) error {
	var errs []error

	for _, id := range event.ZoneIDsDeleted {
		if err := s.dropZone(ctx, id); err != nil {
			errs = append(errs, err)
		}
	}

	zc := s.zoneCache(event.Scope)
	for _, id := range event.ZoneIDsChanged {
		if zc == nil {
			break
		}
		zone, ok := zc.Zone(id)
		if !ok {
			continue
		}
		if err := s.addZone(ctx, zone); err != nil {
			errs = append(errs, err)
		}
	}

	s.ensureCurrent(ctx)
	return errors.Join(errs...)
}

func (s *clientSyncService) addZone(ctx context.Context, zone models.Zone) error {
	s.mu.RLock()
	_, exists := s.topics[zone.ID]
	closed := s.closed
	s.mu.RUnlock()
	if exists || closed {
		return nil
	}

	tc := cache.NewTopicCache(zone, cache.TopicCacheDeps{
		Remote:    s.deps.Remote,
		Records:   s.deps.Records,
		Tokens:    s.deps.Tokens,
		Publisher: s.deps.RecordsChanged,
		IDs:       s.deps.IDs,
		Logger:    s.logger,
	})
	if err := tc.Load(ctx); err != nil {
		tc.Close()
		return fmt.Errorf("restore zone %s: %w", zone.ID, err)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		tc.Close()
		return nil
	}
	s.topics[zone.ID] = tc
	s.mu.Unlock()

	s.logger.Info().Str("zone_id", string(zone.ID)).Msg("zone cache created")

	if err := tc.FetchChanges(ctx); err != nil {
		return fmt.Errorf("initial fetch of zone %s: %w", zone.ID, err)
	}
	return nil
}

func (s *clientSyncService) dropZone(ctx context.Context, id models.ZoneID) error {
	s.mu.Lock()
	tc, ok := s.topics[id]
	delete(s.topics, id)
	s.mu.Unlock()

	if ok {
		tc.Close()
		s.logger.Info().Str("zone_id", string(id)).Msg("zone cache dropped")
	}

	var errs []error
	if s.deps.Records != nil {
		if err := s.deps.Records.DeleteZoneRecords(ctx, id); err != nil {
			errs = append(errs, fmt.Errorf("delete records of zone %s: %w", id, err))
		}
	}
	if s.deps.Tokens != nil {
		if err := s.deps.Tokens.SaveToken(ctx, cache.TopicTokenKey(id), nil); err != nil {
			errs = append(errs, fmt.Errorf("clear token of zone %s: %w", id, err))
		}
	}
	return errors.Join(errs...)
}

// ensureCurrent falls back to the first zone by name when the current zone
// is gone or none was chosen yet.
func (s *clientSyncService) ensureCurrent(ctx context.Context) {
	s.mu.RLock()
	_, ok := s.topics[s.current]
	s.mu.RUnlock()
	if ok {
		return
	}

	zones := s.Zones()

	var next models.ZoneID
	s.mu.RLock()
	for _, z := range zones {
		if _, cached := s.topics[z.ID]; cached {
			next = z.ID
			break
		}
	}
	s.mu.RUnlock()

	s.mu.Lock()
	changed := s.current != next
	s.current = next
	s.mu.Unlock()

	if changed {
		s.publishCurrent(ctx, next)
	}
}

func (s *clientSyncService) publishCurrent(ctx context.Context, id models.ZoneID) {
	if s.deps.CurrentChanged == nil {
		return
	}
	if err := s.deps.CurrentChanged.Publish(ctx, models.CurrentZoneChanged{ZoneID: id}); err != nil {
		s.logger.Err(err).Msg("publishing current zone failed")
	}
}

func (s *clientSyncService) zoneCache(scope models.Scope) *cache.ZoneCache {
	for _, zc := range s.deps.ZoneCaches {
		if zc.Scope() == scope {
			return zc
		}
	}
	return nil
}

func (s *clientSyncService) topicCaches() []*cache.TopicCache {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*cache.TopicCache, 0, len(s.topics))
	for _, tc := range s.topics {
		out = append(out, tc)
	}
	return out
}
