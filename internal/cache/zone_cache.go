// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-share-cache/internal/gate"
	"github.com/MKhiriev/go-share-cache/internal/logger"
	"github.com/MKhiriev/go-share-cache/models"
)

// ZoneCacheDeps wires a ZoneCache. Zones, Tokens and Publisher are optional.
type ZoneCacheDeps struct {
	Remote    ZoneSource
	Zones     ZoneStore
	Tokens    TokenStore
	Publisher Publisher[models.ZonesChanged]
	Logger    *logger.Logger
}

// ZoneCache mirrors the zone list of one database scope.
type ZoneCache struct {
	scope models.Scope

	gate   *gate.Gate
	outbox *gate.Gate
	zones  []models.Zone
	token  models.ChangeToken

	fetchMu sync.Mutex

	remote    ZoneSource
	store     ZoneStore
	tokens    TokenStore
	publisher Publisher[models.ZonesChanged]
	logger    *logger.Logger
}

// NewZoneCache creates an empty zone cache for scope.
func NewZoneCache(scope models.Scope, deps ZoneCacheDeps) *ZoneCache {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	log = log.WithComponent("zone-cache")
	log.Logger = log.With().Str("scope", string(scope)).Logger()

	onPanic := func(err error) {
		log.Error().Err(err).Msg("recovered from panic")
	}

	return &ZoneCache{
		scope:     scope,
		gate:      gate.New(gate.WithPanicHandler(onPanic)),
		outbox:    gate.New(gate.WithPanicHandler(onPanic)),
		remote:    deps.Remote,
		store:     deps.Zones,
		tokens:    deps.Tokens,
		publisher: deps.Publisher,
		logger:    log,
	}
}

// Scope returns the database scope of the cache.
func (c *ZoneCache) Scope() models.Scope {
	return c.scope
}

// Load restores the stored zone list and token. It publishes the restored
// zones as changed so observers can build their per-zone caches.
func (c *ZoneCache) Load(ctx context.Context) error {
	if c.store == nil || c.tokens == nil {
		return nil
	}

	zones, err := c.store.LoadZones(ctx, c.scope)
	if err != nil {
		return fmt.Errorf("load zones of %s: %w", c.scope, err)
	}
	token, err := c.tokens.LoadToken(ctx, ZoneTokenKey(c.scope))
	if err != nil {
		return fmt.Errorf("load zone token of %s: %w", c.scope, err)
	}

	var event models.ZonesChanged
	c.gate.PerformWriteThen(func() {
		c.zones = slices.Clone(zones)
		sortZones(c.zones)
		c.token = token
		event = models.ZonesChanged{Scope: c.scope, ZoneIDsChanged: zoneIDs(c.zones)}
	}, func() {
		c.publish(event)
	})
	c.gate.Wait()

	return nil
}

// Zones returns the cached zones sorted by name.
func (c *ZoneCache) Zones() []models.Zone {
	return gate.ReadAndWait(c.gate, func() []models.Zone {
		return slices.Clone(c.zones)
	})
}

// Zone returns one cached zone.
func (c *ZoneCache) Zone(id models.ZoneID) (models.Zone, bool) {
	type result struct {
		zone models.Zone
		ok   bool
	}
	r := gate.ReadAndWait(c.gate, func() result {
		if i := c.index(id); i >= 0 {
			return result{c.zones[i], true}
		}
		return result{}
	})
	return r.zone, r.ok
}

// Token returns the change token of the last applied zone batch.
func (c *ZoneCache) Token() models.ChangeToken {
	return gate.ReadAndWait(c.gate, func() models.ChangeToken { return c.token })
}

// FetchChanges pulls zone changes of the scope and reconciles them. An
// expired token triggers one refetch from scratch that prunes zones the
// server no longer reports.
func (c *ZoneCache) FetchChanges(ctx context.Context) error {
	c.fetchMu.Lock()
	defer c.fetchMu.Unlock()

	token := c.Token()
	fromScratch := false

	for {
		batch, err := c.remote.FetchZoneChanges(ctx, c.scope, token)
		switch {
		case err == nil:
		case errors.Is(err, models.ErrChangeTokenExpired) && !fromScratch:
			c.logger.Info().Msg("zone token expired, refetching from scratch")
			fromScratch = true
			token = nil
			continue
		case errors.Is(err, models.ErrZoneNotFound):
			return nil
		default:
			return fmt.Errorf("fetch zone changes of %s: %w", c.scope, err)
		}

		c.apply(batch, fromScratch)
		c.gate.Wait()
		return nil
	}
}

func (c *ZoneCache) apply(batch models.ZoneChangeBatch, prune bool) {
	var (
		event   models.ZonesChanged
		changed []models.Zone
	)

	c.gate.PerformWriteThen(func() {
		event, changed = c.applyLocked(batch, prune)
		if !batch.Token.IsZero() {
			c.token = batch.Token
		}
	}, func() {
		c.persist(changed, event.ZoneIDsDeleted, !batch.Token.IsZero())
		c.publish(event)
	})
}

// applyLocked runs on the writer goroutine.
func (c *ZoneCache) applyLocked(batch models.ZoneChangeBatch, prune bool) (models.ZonesChanged, []models.Zone) {
	event := models.ZonesChanged{Scope: c.scope}

	deleted := make(map[models.ZoneID]struct{}, len(batch.Deleted))
	for _, id := range batch.Deleted {
		deleted[id] = struct{}{}
		if i := c.index(id); i >= 0 {
			c.zones = slices.Delete(c.zones, i, i+1)
			event.ZoneIDsDeleted = append(event.ZoneIDsDeleted, id)
		}
	}

	if prune {
		seen := make(map[models.ZoneID]struct{}, len(batch.Changed))
		for _, z := range batch.Changed {
			seen[z.ID] = struct{}{}
		}
		c.zones = slices.DeleteFunc(c.zones, func(z models.Zone) bool {
			if _, ok := seen[z.ID]; ok {
				return false
			}
			event.ZoneIDsDeleted = append(event.ZoneIDsDeleted, z.ID)
			return true
		})
	}

	var changed []models.Zone
	dirty := false
	for _, zone := range batch.Changed {
		if _, gone := deleted[zone.ID]; gone {
			continue
		}
		if zone.Scope == "" {
			zone.Scope = c.scope
		}
		if i := c.index(zone.ID); i >= 0 {
			if c.zones[i].Name != zone.Name {
				dirty = true
			}
			c.zones[i] = zone
		} else {
			c.zones = append(c.zones, zone)
			dirty = true
		}
		changed = append(changed, zone)
		event.ZoneIDsChanged = append(event.ZoneIDsChanged, zone.ID)
	}

	if dirty {
		sortZones(c.zones)
	}

	return event, changed
}

func (c *ZoneCache) persist(changed []models.Zone, deleted []models.ZoneID, tokenChanged bool) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if c.store != nil && (len(changed) > 0 || len(deleted) > 0) {
		if err := c.store.SaveZones(ctx, c.scope, changed, deleted); err != nil {
			c.logger.Err(err).Msg("saving zones failed, token kept back")
			return
		}
	}
	if c.tokens != nil && tokenChanged {
		if err := c.tokens.SaveToken(ctx, ZoneTokenKey(c.scope), c.token); err != nil {
			c.logger.Err(err).Msg("saving zone token failed")
		}
	}
}

func (c *ZoneCache) publish(event models.ZonesChanged) {
	if c.publisher == nil {
		return
	}
	c.outbox.PerformWrite(func() {
		if err := c.publisher.Publish(context.Background(), event); err != nil {
			c.logger.Err(err).Msg("publishing zones changed failed")
		}
	})
}

// Close drains pending writes and notifications.
func (c *ZoneCache) Close() {
	c.gate.Close()
	c.outbox.Close()
}

func (c *ZoneCache) index(id models.ZoneID) int {
	return slices.IndexFunc(c.zones, func(z models.Zone) bool { return z.ID == id })
}

func sortZones(zones []models.Zone) {
	slices.SortStableFunc(zones, func(a, b models.Zone) int {
		return compareNames(a.Name, b.Name)
	})
}

func zoneIDs(zones []models.Zone) []models.ZoneID {
	out := make([]models.ZoneID, len(zones))
	for i, z := range zones {
		out[i] = z.ID
	}
	return out
}
