// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache keeps local, thread-safe mirrors of remote record zones.
//
// A TopicCache mirrors the topics and notes of one zone; a ZoneCache mirrors
// the zone list of one database scope. Both apply remote change batches
// through a gate.Gate, persist the result before the change token, and emit
// exactly one notification per applied batch.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-share-cache/internal/gate"
	"github.com/MKhiriev/go-share-cache/internal/logger"
	"github.com/MKhiriev/go-share-cache/models"
)

const persistTimeout = 5 * time.Second

// TopicCacheDeps wires a TopicCache. Records, Tokens and Publisher are
// optional.
type TopicCacheDeps struct {
	Remote    RecordSource
	Records   RecordStore
	Tokens    TokenStore
	Publisher Publisher[models.RecordsChanged]
	IDs       IDGenerator
	Logger    *logger.Logger
}

// TopicCache is the local mirror of one record zone.
type TopicCache struct {
	zone models.Zone

	gate  *gate.Gate
	state *topicState

	// outbox delivers notifications in apply order without holding up the
	// writer goroutine.
	outbox *gate.Gate

	// fetchMu serializes FetchChanges so two fetches never race on the token.
	fetchMu sync.Mutex

	remote    RecordSource
	records   RecordStore
	tokens    TokenStore
	publisher Publisher[models.RecordsChanged]
	ids       IDGenerator
	logger    *logger.Logger
}

// NewTopicCache creates an empty cache for zone. Call Load to restore the
// stored snapshot and Close to release its goroutines.
func NewTopicCache(zone models.Zone, deps TopicCacheDeps) *TopicCache {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	log = log.WithComponent("topic-cache")
	log.Logger = log.With().Str("zone_id", string(zone.ID)).Logger()

	onPanic := func(err error) {
		log.Error().Err(err).Msg("recovered from panic")
	}

	return &TopicCache{
		zone:      zone,
		gate:      gate.New(gate.WithPanicHandler(onPanic)),
		state:     newTopicState(zone.ID, zone.Scope),
		outbox:    gate.New(gate.WithPanicHandler(onPanic)),
		remote:    deps.Remote,
		records:   deps.Records,
		tokens:    deps.Tokens,
		publisher: deps.Publisher,
		ids:       deps.IDs,
		logger:    log,
	}
}

// Zone returns the zone this cache mirrors.
func (c *TopicCache) Zone() models.Zone {
	return c.zone
}

// Load replaces the in-memory state with the stored snapshot and token.
func (c *TopicCache) Load(ctx context.Context) error {
	if c.records == nil || c.tokens == nil {
		return nil
	}

	records, err := c.records.LoadRecords(ctx, c.zone.ID)
	if err != nil {
		return fmt.Errorf("load records of zone %s: %w", c.zone.ID, err)
	}
	token, err := c.tokens.LoadToken(ctx, TopicTokenKey(c.zone.ID))
	if err != nil {
		return fmt.Errorf("load token of zone %s: %w", c.zone.ID, err)
	}

	c.gate.PerformWrite(func() {
		c.state.load(records, token)
	})
	c.gate.Wait()

	c.logger.Debug().Int("records", len(records)).Msg("snapshot loaded")
	return nil
}

// Topics returns a copy of the cached topics, sorted by name.
func (c *TopicCache) Topics() []models.Topic {
	return gate.ReadAndWait(c.gate, c.state.snapshot)
}

// Topic returns a copy of one cached topic.
func (c *TopicCache) Topic(id models.RecordID) (models.Topic, bool) {
	type result struct {
		topic models.Topic
		ok    bool
	}
	r := gate.ReadAndWait(c.gate, func() result {
		if i := c.state.topicIndex(id); i >= 0 {
			return result{c.state.topics[i].Clone(), true}
		}
		return result{}
	})
	return r.topic, r.ok
}

// Token returns the change token of the last applied batch.
func (c *TopicCache) Token() models.ChangeToken {
	return gate.ReadAndWait(c.gate, func() models.ChangeToken {
		return c.state.token
	})
}

// FetchChanges pulls every pending change of the zone and reconciles it.
// A fetch that starts without a token is a refetch from scratch: its page
// tokens are committed only with the last page, and entries it does not
// report are pruned then. An interrupted refetch therefore starts over on
// the next call. An expired token is reset once and leads to such a
// refetch. Missing zone or record errors are ignored.
func (c *TopicCache) FetchChanges(ctx context.Context) error {
	c.fetchMu.Lock()
	defer c.fetchMu.Unlock()

	token := c.Token()
	reset := false

	var seen map[models.RecordID]struct{}
	if token.IsZero() {
		seen = make(map[models.RecordID]struct{})
	}

	for {
		batch, err := c.remote.FetchRecordChanges(ctx, c.zone.ID, token)
		switch {
		case err == nil:
		case errors.Is(err, models.ErrChangeTokenExpired) && !reset:
			c.logger.Info().Msg("change token expired, refetching zone from scratch")
			c.resetToken()
			reset = true
			token = nil
			seen = make(map[models.RecordID]struct{})
			continue
		case errors.Is(err, models.ErrZoneNotFound), errors.Is(err, models.ErrRecordNotFound):
			c.logger.Debug().Err(err).Msg("ignoring fetch error")
			return nil
		default:
			return fmt.Errorf("fetch changes of zone %s: %w", c.zone.ID, err)
		}

		last := !batch.MoreComing
		if seen != nil {
			for _, rec := range batch.Upserted {
				seen[rec.ID] = struct{}{}
			}
		}

		var prune map[models.RecordID]struct{}
		if last {
			prune = seen
		}
		c.applyRemote(batch, prune, last || seen == nil)

		if last {
			break
		}
		token = batch.Token
	}

	c.gate.Wait()
	return nil
}

func (c *TopicCache) resetToken() {
	c.gate.PerformWriteThen(func() {
		c.state.token = nil
	}, func() {
		c.persist(applyResult{}, true)
	})
}

// applyRemote applies one fetched batch. When prune is not nil, entries not
// in it are removed afterwards in the same write. The batch token replaces
// the cached one only when commitToken is set.
func (c *TopicCache) applyRemote(batch models.ChangeBatch, prune map[models.RecordID]struct{}, commitToken bool) {
	var res applyResult
	tokenChanged := false

	c.gate.PerformWriteThen(func() {
		res = c.state.apply(batch, c.logger)
		if prune != nil {
			res.deleted = append(res.deleted, c.state.prune(prune)...)
		}
		if commitToken && !batch.Token.IsZero() {
			c.state.token = batch.Token
			tokenChanged = true
		}
	}, func() {
		c.persist(res, tokenChanged)
		c.publish(res)
	})

	c.logger.Debug().
		Int("upserted", len(batch.Upserted)).
		Int("deleted", len(batch.Deleted)).
		Bool("more_coming", batch.MoreComing).
		Msg("batch submitted")
}

// persist runs on the writer goroutine: records first, then the token, so a
// stored token never runs ahead of the stored data.
func (c *TopicCache) persist(res applyResult, tokenChanged bool) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if c.records != nil && (len(res.changed) > 0 || len(res.deleted) > 0) {
		if err := c.records.SaveRecords(ctx, c.zone.ID, res.changed, res.deleted); err != nil {
			c.logger.Err(err).Msg("saving snapshot failed, token kept back")
			return
		}
	}
	if c.tokens != nil && tokenChanged {
		if err := c.tokens.SaveToken(ctx, TopicTokenKey(c.zone.ID), c.state.token); err != nil {
			c.logger.Err(err).Msg("saving change token failed")
		}
	}
}

func (c *TopicCache) publish(res applyResult) {
	if c.publisher == nil {
		return
	}
	event := res.notification(c.zone.ID)
	c.outbox.PerformWrite(func() {
		if err := c.publisher.Publish(context.Background(), event); err != nil {
			c.logger.Err(err).Msg("publishing records changed failed")
		}
	})
}

// Close waits for pending writes and notifications and stops the cache.
func (c *TopicCache) Close() {
	c.gate.Close()
	c.outbox.Close()
}

// AddTopic creates a topic locally and pushes it to the server.
func (c *TopicCache) AddTopic(ctx context.Context, name string) (models.Topic, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Topic{}, ErrEmptyName
	}
	if !c.zone.Scope.DefaultPermission().CanWrite() {
		return models.Topic{}, fmt.Errorf("add topic to %s zone: %w", c.zone.Scope, ErrPermissionDenied)
	}

	rec := models.Record{
		ID:     models.RecordID(c.ids.Generate()),
		ZoneID: c.zone.ID,
		Type:   models.RecordTypeTopic,
		Name:   name,
	}
	if err := c.applyLocal(func(*topicState) error { return nil }, models.ChangeBatch{Upserted: []models.Record{rec}}); err != nil {
		return models.Topic{}, err
	}

	topic, _ := c.Topic(rec.ID)
	return topic, c.push(ctx, models.ModifyRecordsRequest{ZoneID: c.zone.ID, Save: []models.Record{rec}})
}

// RenameTopic renames a writable topic.
func (c *TopicCache) RenameTopic(ctx context.Context, id models.RecordID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	var rec models.Record
	check := func(s *topicState) error {
		i := s.topicIndex(id)
		if i < 0 {
			return ErrTopicNotFound
		}
		if !s.topics[i].Permission.CanWrite() {
			return ErrPermissionDenied
		}
		rec = s.topics[i].Record(c.zone.ID)
		rec.Name = name
		return nil
	}
	batch := func(*topicState) models.ChangeBatch {
		return models.ChangeBatch{Upserted: []models.Record{rec}}
	}
	if err := c.applyLocalFunc(check, batch); err != nil {
		return fmt.Errorf("rename topic %s: %w", id, err)
	}

	return c.push(ctx, models.ModifyRecordsRequest{ZoneID: c.zone.ID, Save: []models.Record{rec}})
}

// DeleteTopic removes a writable topic and its notes.
func (c *TopicCache) DeleteTopic(ctx context.Context, id models.RecordID) error {
	check := func(s *topicState) error {
		i := s.topicIndex(id)
		if i < 0 {
			return ErrTopicNotFound
		}
		if !s.topics[i].Permission.CanWrite() {
			return ErrPermissionDenied
		}
		return nil
	}
	if err := c.applyLocal(check, models.ChangeBatch{Deleted: []models.RecordID{id}}); err != nil {
		return fmt.Errorf("delete topic %s: %w", id, err)
	}

	return c.push(ctx, models.ModifyRecordsRequest{ZoneID: c.zone.ID, Delete: []models.RecordID{id}})
}

// AddNote creates a note under a writable topic.
func (c *TopicCache) AddNote(ctx context.Context, topicID models.RecordID, title string) (models.Note, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Note{}, ErrEmptyName
	}

	rec := models.Record{
		ID:       models.RecordID(c.ids.Generate()),
		ZoneID:   c.zone.ID,
		Type:     models.RecordTypeNote,
		ParentID: topicID,
		Name:     title,
	}
	check := func(s *topicState) error {
		i := s.topicIndex(topicID)
		if i < 0 {
			return ErrTopicNotFound
		}
		if !s.topics[i].Permission.CanWrite() {
			return ErrPermissionDenied
		}
		return nil
	}
	if err := c.applyLocal(check, models.ChangeBatch{Upserted: []models.Record{rec}}); err != nil {
		return models.Note{}, fmt.Errorf("add note to topic %s: %w", topicID, err)
	}

	note := gate.ReadAndWait(c.gate, func() models.Note {
		if topic, j := c.state.findNote(rec.ID); topic != nil {
			return topic.Notes[j]
		}
		return models.Note{}
	})
	return note, c.push(ctx, models.ModifyRecordsRequest{ZoneID: c.zone.ID, Save: []models.Record{rec}})
}

// UpdateNote changes the title of a writable note.
func (c *TopicCache) UpdateNote(ctx context.Context, id models.RecordID, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyName
	}

	var rec models.Record
	check := func(s *topicState) error {
		topic, j := s.findNote(id)
		if topic == nil {
			return ErrNoteNotFound
		}
		if !topic.Notes[j].Permission.CanWrite() {
			return ErrPermissionDenied
		}
		rec = topic.Notes[j].Record(c.zone.ID)
		rec.Name = title
		return nil
	}
	batch := func(*topicState) models.ChangeBatch {
		return models.ChangeBatch{Upserted: []models.Record{rec}}
	}
	if err := c.applyLocalFunc(check, batch); err != nil {
		return fmt.Errorf("update note %s: %w", id, err)
	}

	return c.push(ctx, models.ModifyRecordsRequest{ZoneID: c.zone.ID, Save: []models.Record{rec}})
}

// DeleteNote removes a writable note.
func (c *TopicCache) DeleteNote(ctx context.Context, id models.RecordID) error {
	check := func(s *topicState) error {
		topic, j := s.findNote(id)
		if topic == nil {
			return ErrNoteNotFound
		}
		if !topic.Notes[j].Permission.CanWrite() {
			return ErrPermissionDenied
		}
		return nil
	}
	if err := c.applyLocal(check, models.ChangeBatch{Deleted: []models.RecordID{id}}); err != nil {
		return fmt.Errorf("delete note %s: %w", id, err)
	}

	return c.push(ctx, models.ModifyRecordsRequest{ZoneID: c.zone.ID, Delete: []models.RecordID{id}})
}

func (c *TopicCache) applyLocal(check func(*topicState) error, batch models.ChangeBatch) error {
	return c.applyLocalFunc(check, func(*topicState) models.ChangeBatch { return batch })
}

// applyLocalFunc runs check and the resulting batch in one gate write, so the
// permission seen by check is the one the batch is applied against.
func (c *TopicCache) applyLocalFunc(check func(*topicState) error, build func(*topicState) models.ChangeBatch) error {
	var (
		res     applyResult
		checked error
	)

	accepted := c.gate.PerformWriteThen(func() {
		if checked = check(c.state); checked != nil {
			return
		}
		res = c.state.apply(build(c.state), c.logger)
	}, func() {
		if checked != nil {
			return
		}
		c.persist(res, false)
		c.publish(res)
	})
	if !accepted {
		return ErrCacheClosed
	}

	return gate.ReadAndWait(c.gate, func() error { return checked })
}

// push sends a local change to the server. Missing record or zone errors are
// benign: the entry is already gone remotely.
func (c *TopicCache) push(ctx context.Context, req models.ModifyRecordsRequest) error {
	_, err := c.remote.ModifyRecords(ctx, req)
	if err == nil {
		return nil
	}
	if errors.Is(err, models.ErrRecordNotFound) || errors.Is(err, models.ErrZoneNotFound) {
		c.logger.Debug().Err(err).Msg("ignoring push error")
		return nil
	}
	return fmt.Errorf("push changes of zone %s: %w", c.zone.ID, err)
}
