// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// RecordID identifies a remote record inside its zone.
type RecordID string

// RecordType tells how a [Record] maps onto the cache hierarchy.
type RecordType string

const (
	// RecordTypeTopic is a top-level entry.
	RecordTypeTopic RecordType = "topic"

	// RecordTypeNote is a child entry owned by a topic through ParentID.
	RecordTypeNote RecordType = "note"

	// RecordTypeShare carries the participant permission for the topic whose
	// ShareID points at it.
	RecordTypeShare RecordType = "share"
)

// Valid reports whether t is one of the known record types.
func (t RecordType) Valid() bool {
	switch t {
	case RecordTypeTopic, RecordTypeNote, RecordTypeShare:
		return true
	default:
		return false
	}
}

// ParseRecordType validates a record type name read from storage.
func ParseRecordType(s string) (RecordType, error) {
	t := RecordType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRecordType, s)
	}
	return t, nil
}

// Record is the transport and storage form of every remote entry.
//
// Only the fields relevant to Type are populated:
//   - topic: Name, ShareID (optional)
//   - note:  ParentID (topic ID), Name (note title), Permission (optional override)
//   - share: Permission
type Record struct {
	// ID is the record identifier, unique inside ZoneID.
	ID RecordID `json:"id"`

	// ZoneID is the zone the record belongs to.
	ZoneID ZoneID `json:"zone_id"`

	// Type selects how the record is reconciled into the cache.
	Type RecordType `json:"type"`

	// ParentID references the owning topic of a note.
	ParentID RecordID `json:"parent_id,omitempty"`

	// Name is the topic name or the note title.
	Name string `json:"name,omitempty"`

	// ShareID references the share record underlying a shared topic.
	ShareID RecordID `json:"share_id,omitempty"`

	// Permission is the participant permission on share records, or an
	// explicit override on note records.
	Permission Permission `json:"permission,omitempty"`

	// ChangeTag is a server-computed digest of the record content. It changes
	// whenever the server stores a new version.
	ChangeTag string `json:"change_tag,omitempty"`

	// ModifiedAt is the server modification time.
	ModifiedAt *time.Time `json:"modified_at,omitempty"`
}
