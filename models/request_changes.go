// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ZoneChangesRequest asks for zone changes of one database scope since Token.
type ZoneChangesRequest struct {
	// Scope is the database to read zones from.
	Scope Scope `json:"scope"`

	// Token is the cursor returned by the previous call, empty on first fetch.
	Token ChangeToken `json:"token,omitempty"`
}

// RecordChangesRequest asks for record changes of one zone since Token.
type RecordChangesRequest struct {
	// ZoneID is the zone to read.
	ZoneID ZoneID `json:"zone_id"`

	// Token is the cursor returned by the previous call, empty on first fetch.
	Token ChangeToken `json:"token,omitempty"`

	// Limit caps the number of records in one batch. Zero uses the server
	// default.
	Limit int `json:"limit,omitempty"`
}

// SaveZoneRequest creates or renames a zone.
type SaveZoneRequest struct {
	Zone Zone `json:"zone"`
}
