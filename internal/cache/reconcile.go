// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-share-cache/internal/logger"
	"github.com/MKhiriev/go-share-cache/models"
)

// topicState is the data guarded by a TopicCache gate. Every method must run
// inside a gate write (mutators) or read (accessors).
type topicState struct {
	zoneID models.ZoneID
	scope  models.Scope
	topics []*models.Topic
	// shares remembers share permissions so a topic that arrives after its
	// share record still gets the right permission.
	shares map[models.RecordID]models.Permission
	token  models.ChangeToken
}

func newTopicState(zoneID models.ZoneID, scope models.Scope) *topicState {
	return &topicState{
		zoneID: zoneID,
		scope:  scope,
		shares: make(map[models.RecordID]models.Permission),
	}
}

// applyResult describes what one apply changed. It feeds both the snapshot
// store and the RecordsChanged notification.
type applyResult struct {
	deleted []models.RecordID
	changed []models.Record
}

func (r *applyResult) notification(zoneID models.ZoneID) models.RecordsChanged {
	return models.RecordsChanged{
		ZoneID:           zoneID,
		RecordIDsDeleted: r.deleted,
		RecordsChanged:   r.changed,
	}
}

// changeSet collects touched IDs in first-touch order.
type changeSet struct {
	order []models.RecordID
	seen  map[models.RecordID]struct{}
}

func newChangeSet() *changeSet {
	return &changeSet{seen: make(map[models.RecordID]struct{})}
}

func (c *changeSet) add(id models.RecordID) {
	if _, ok := c.seen[id]; ok {
		return
	}
	c.seen[id] = struct{}{}
	c.order = append(c.order, id)
}

// apply merges batch into the state. Deletes run first, upserts of IDs
// deleted in the same batch are skipped, then topics, notes and shares are
// upserted in that order. Only containers that changed are re-sorted.
// Applying the same batch twice leaves the state as applying it once.
func (s *topicState) apply(batch models.ChangeBatch, log *logger.Logger) applyResult {
	var res applyResult

	deleted := make(map[models.RecordID]struct{}, len(batch.Deleted))
	for _, id := range batch.Deleted {
		deleted[id] = struct{}{}
		res.deleted = append(res.deleted, s.remove(id)...)
	}

	var topicRecords, noteRecords, shareRecords []models.Record
	for _, rec := range batch.Upserted {
		if _, gone := deleted[rec.ID]; gone {
			continue
		}
		switch rec.Type {
		case models.RecordTypeTopic:
			topicRecords = append(topicRecords, rec)
		case models.RecordTypeNote:
			noteRecords = append(noteRecords, rec)
		case models.RecordTypeShare:
			shareRecords = append(shareRecords, rec)
		default:
			log.Warn().Str("record_id", string(rec.ID)).Str("type", string(rec.Type)).Msg("skipping record of unknown type")
		}
	}

	changed := newChangeSet()
	topicsDirty := false
	dirtyNotes := make(map[*models.Topic]struct{})

	batchTopics := make(map[models.RecordID][]*models.Topic)
	for _, rec := range topicRecords {
		topic, inserted, renamed := s.upsertTopic(rec)
		if inserted || renamed {
			topicsDirty = true
		}
		if topic.ShareID != "" {
			batchTopics[topic.ShareID] = append(batchTopics[topic.ShareID], topic)
		}
		changed.add(topic.ID)
	}

	for _, rec := range noteRecords {
		touched, ok := s.upsertNote(rec)
		if !ok {
			log.Warn().
				Str("record_id", string(rec.ID)).
				Str("parent_id", string(rec.ParentID)).
				Msg("skipping note whose topic is not cached")
			continue
		}
		for _, topic := range touched {
			dirtyNotes[topic] = struct{}{}
		}
		changed.add(rec.ID)
	}

	for _, rec := range shareRecords {
		s.shares[rec.ID] = rec.Permission
		changed.add(rec.ID)

		targets, ok := batchTopics[rec.ID]
		if !ok {
			targets = s.topicsByShare(rec.ID)
		}
		for _, topic := range targets {
			if topic.Permission != rec.Permission {
				topic.Permission = rec.Permission
				changed.add(topic.ID)
			}
		}
	}

	if topicsDirty {
		sortTopics(s.topics)
	}
	for topic := range dirtyNotes {
		sortNotes(topic.Notes)
	}

	res.changed = s.records(changed.order)

	return res
}

// remove deletes the entry with id and reports every ID that left the cache.
func (s *topicState) remove(id models.RecordID) []models.RecordID {
	if i := s.topicIndex(id); i >= 0 {
		topic := s.topics[i]
		removed := make([]models.RecordID, 0, len(topic.Notes)+1)
		removed = append(removed, topic.ID)
		for _, note := range topic.Notes {
			removed = append(removed, note.ID)
		}
		s.topics = slices.Delete(s.topics, i, i+1)
		return removed
	}

	if topic, j := s.findNote(id); topic != nil {
		topic.Notes = slices.Delete(topic.Notes, j, j+1)
		return []models.RecordID{id}
	}

	if _, ok := s.shares[id]; ok {
		delete(s.shares, id)
		fallback := s.scope.DefaultPermission()
		for _, topic := range s.topicsByShare(id) {
			topic.Permission = fallback
		}
		return []models.RecordID{id}
	}

	return nil
}

func (s *topicState) upsertTopic(rec models.Record) (topic *models.Topic, inserted, renamed bool) {
	if i := s.topicIndex(rec.ID); i >= 0 {
		topic = s.topics[i]
		renamed = topic.Name != rec.Name
		topic.Name = rec.Name
		topic.ShareID = rec.ShareID
		return topic, false, renamed
	}

	perm := s.scope.DefaultPermission()
	if known, ok := s.shares[rec.ShareID]; ok && rec.ShareID != "" {
		perm = known
	}
	if rec.Permission != models.PermissionUnknown {
		perm = rec.Permission
	}

	topic = &models.Topic{
		ID:         rec.ID,
		Name:       rec.Name,
		ShareID:    rec.ShareID,
		Permission: perm,
	}
	s.topics = append(s.topics, topic)

	return topic, true, false
}

// upsertNote returns the topics whose note lists need sorting, or false when
// the note cannot be placed because its topic is not cached.
func (s *topicState) upsertNote(rec models.Record) ([]*models.Topic, bool) {
	parentIdx := s.topicIndex(rec.ParentID)

	current, j := s.findNote(rec.ID)
	if current == nil {
		if parentIdx < 0 {
			return nil, false
		}
		parent := s.topics[parentIdx]
		perm := parent.Permission
		if rec.Permission != models.PermissionUnknown {
			perm = rec.Permission
		}
		parent.Notes = append(parent.Notes, models.Note{
			ID:         rec.ID,
			TopicID:    parent.ID,
			Title:      rec.Name,
			Permission: perm,
		})
		return []*models.Topic{parent}, true
	}

	note := current.Notes[j]
	note.Title = rec.Name
	if rec.Permission != models.PermissionUnknown {
		note.Permission = rec.Permission
	}

	if parentIdx >= 0 && s.topics[parentIdx] != current {
		parent := s.topics[parentIdx]
		current.Notes = slices.Delete(current.Notes, j, j+1)
		note.TopicID = parent.ID
		parent.Notes = append(parent.Notes, note)
		return []*models.Topic{current, parent}, true
	}

	current.Notes[j] = note
	return []*models.Topic{current}, true
}

func (s *topicState) topicIndex(id models.RecordID) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(s.topics, func(t *models.Topic) bool { return t.ID == id })
}

func (s *topicState) findNote(id models.RecordID) (*models.Topic, int) {
	for _, topic := range s.topics {
		for j := range topic.Notes {
			if topic.Notes[j].ID == id {
				return topic, j
			}
		}
	}
	return nil, -1
}

// topicsByShare scans the whole cache. Shares are rare and caches small.
func (s *topicState) topicsByShare(shareID models.RecordID) []*models.Topic {
	var out []*models.Topic
	for _, topic := range s.topics {
		if topic.ShareID == shareID {
			out = append(out, topic)
		}
	}
	return out
}

// records returns the snapshot form of the entries with ids that are still
// cached, in ids order.
func (s *topicState) records(ids []models.RecordID) []models.Record {
	out := make([]models.Record, 0, len(ids))
	for _, id := range ids {
		if i := s.topicIndex(id); i >= 0 {
			out = append(out, topicRecord(s.zoneID, s.topics[i]))
			continue
		}
		if topic, j := s.findNote(id); topic != nil {
			out = append(out, noteRecord(s.zoneID, &topic.Notes[j]))
			continue
		}
		if perm, ok := s.shares[id]; ok {
			out = append(out, shareRecord(s.zoneID, id, perm))
		}
	}
	return out
}

// ids lists every cached identifier: topics, notes and shares.
func (s *topicState) ids() []models.RecordID {
	var out []models.RecordID
	for _, topic := range s.topics {
		out = append(out, topic.ID)
		for _, note := range topic.Notes {
			out = append(out, note.ID)
		}
	}
	for id := range s.shares {
		out = append(out, id)
	}
	return out
}

// prune removes every cached entry not listed in seen. It finishes a refetch
// from scratch, which only reports live records.
func (s *topicState) prune(seen map[models.RecordID]struct{}) []models.RecordID {
	var removed []models.RecordID
	for _, id := range s.ids() {
		if _, ok := seen[id]; ok {
			continue
		}
		removed = append(removed, s.remove(id)...)
	}
	return removed
}

// load replaces the state with a stored snapshot. Stored permissions are
// taken as they are: they already reflect what the cache decided.
func (s *topicState) load(records []models.Record, token models.ChangeToken) {
	s.topics = nil
	s.shares = make(map[models.RecordID]models.Permission)
	s.token = token

	byID := make(map[models.RecordID]*models.Topic)
	for _, rec := range records {
		switch rec.Type {
		case models.RecordTypeTopic:
			topic := &models.Topic{ID: rec.ID, Name: rec.Name, ShareID: rec.ShareID, Permission: rec.Permission}
			s.topics = append(s.topics, topic)
			byID[topic.ID] = topic
		case models.RecordTypeShare:
			s.shares[rec.ID] = rec.Permission
		}
	}
	for _, rec := range records {
		if rec.Type != models.RecordTypeNote {
			continue
		}
		if parent, ok := byID[rec.ParentID]; ok {
			parent.Notes = append(parent.Notes, models.Note{ID: rec.ID, TopicID: parent.ID, Title: rec.Name, Permission: rec.Permission})
		}
	}

	sortTopics(s.topics)
	for _, topic := range s.topics {
		sortNotes(topic.Notes)
	}
}

func (s *topicState) snapshot() []models.Topic {
	out := make([]models.Topic, len(s.topics))
	for i, topic := range s.topics {
		out[i] = topic.Clone()
	}
	return out
}

func compareNames(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func sortTopics(topics []*models.Topic) {
	slices.SortStableFunc(topics, func(a, b *models.Topic) int {
		return compareNames(a.Name, b.Name)
	})
}

func sortNotes(notes []models.Note) {
	slices.SortStableFunc(notes, func(a, b models.Note) int {
		return compareNames(a.Title, b.Title)
	})
}

func topicRecord(zoneID models.ZoneID, t *models.Topic) models.Record {
	rec := t.Record(zoneID)
	rec.Permission = t.Permission
	return rec
}

func noteRecord(zoneID models.ZoneID, n *models.Note) models.Record {
	rec := n.Record(zoneID)
	rec.Permission = n.Permission
	return rec
}

func shareRecord(zoneID models.ZoneID, id models.RecordID, perm models.Permission) models.Record {
	return models.Record{ID: id, ZoneID: zoneID, Type: models.RecordTypeShare, Permission: perm}
}
