// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ZoneID identifies a remote partition of records sharing one change-token
// stream.
type ZoneID string

// Scope is the database a zone lives in. It decides the default permission of
// topics that do not (yet) have a share record.
type Scope string

const (
	// ScopePrivate holds zones owned by the current participant.
	ScopePrivate Scope = "private"

	// ScopeShared holds zones other participants shared with the current one.
	ScopeShared Scope = "shared"
)

// DefaultPermission returns the permission a topic gets before any share
// record says otherwise.
func (s Scope) DefaultPermission() Permission {
	if s == ScopePrivate {
		return PermissionReadWrite
	}
	return PermissionUnknown
}

// Zone is a remote record zone as seen by the zone cache.
type Zone struct {
	// ID is the zone identifier.
	ID ZoneID `json:"zone_id"`

	// Name is the display name used to order zones.
	Name string `json:"name"`

	// Owner is the participant that created the zone.
	Owner string `json:"owner,omitempty"`

	// Scope is the database the zone belongs to.
	Scope Scope `json:"scope"`
}
