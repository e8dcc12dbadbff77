// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Topic is a top-level cache entry. It owns an ordered list of notes.
type Topic struct {
	ID         RecordID
	Name       string
	ShareID    RecordID
	Permission Permission
	Notes      []Note
}

// Note is a child cache entry. Permission is captured from the topic when the
// note is first cached, unless the note record carried an explicit one.
type Note struct {
	ID         RecordID
	TopicID    RecordID
	Title      string
	Permission Permission
}

// Clone returns a deep copy of t, safe to hand to readers outside the cache.
func (t *Topic) Clone() Topic {
	out := *t
	if t.Notes != nil {
		out.Notes = make([]Note, len(t.Notes))
		copy(out.Notes, t.Notes)
	}
	return out
}

// Record converts the topic back to its remote representation.
func (t *Topic) Record(zoneID ZoneID) Record {
	return Record{
		ID:      t.ID,
		ZoneID:  zoneID,
		Type:    RecordTypeTopic,
		Name:    t.Name,
		ShareID: t.ShareID,
	}
}

// Record converts the note back to its remote representation.
func (n *Note) Record(zoneID ZoneID) Record {
	return Record{
		ID:       n.ID,
		ZoneID:   zoneID,
		Type:     RecordTypeNote,
		ParentID: n.TopicID,
		Name:     n.Title,
	}
}
