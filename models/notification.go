// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RecordsChanged is published by a topic cache exactly once per applied batch
// (or local action).
type RecordsChanged struct {
	// ZoneID is the zone of the cache that changed.
	ZoneID ZoneID

	// RecordIDsDeleted lists entries removed from the cache.
	RecordIDsDeleted []RecordID

	// RecordsChanged lists records that were inserted or updated.
	RecordsChanged []Record
}

// ZonesChanged is published by a zone cache exactly once per applied batch.
type ZonesChanged struct {
	// Scope is the database the zones belong to.
	Scope Scope

	// ZoneIDsDeleted lists zones removed from the cache.
	ZoneIDsDeleted []ZoneID

	// ZoneIDsChanged lists zones inserted or renamed.
	ZoneIDsChanged []ZoneID
}

// CurrentZoneChanged is published when the coordinator switches the zone the
// observers should display. ZoneID is empty when no zone is left.
type CurrentZoneChanged struct {
	ZoneID ZoneID
}
