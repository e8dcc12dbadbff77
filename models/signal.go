// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SignalKind tells listeners which list changed on the server.
type SignalKind string

const (
	// SignalZones is sent when zones of a scope changed.
	SignalZones SignalKind = "zones"

	// SignalRecords is sent when records of ZoneID changed.
	SignalRecords SignalKind = "records"

	// SignalAccounts is sent when the account list changed.
	SignalAccounts SignalKind = "accounts"
)

// Signal is a lightweight change hint pushed over the signals websocket. It
// carries no data; receivers fetch changes themselves.
type Signal struct {
	Kind   SignalKind `json:"kind"`
	ZoneID ZoneID     `json:"zone_id,omitempty"`
	Scope  Scope      `json:"scope,omitempty"`
}
