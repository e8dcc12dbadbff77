// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ChangeToken is an opaque, server-issued cursor marking the last change batch
// the client applied. A nil token asks the server for everything.
type ChangeToken []byte

// IsZero reports whether the token is the initial "fetch everything" value.
func (t ChangeToken) IsZero() bool {
	return len(t) == 0
}

// String returns the token as text; tokens are printable on the wire.
func (t ChangeToken) String() string {
	return string(t)
}

// ChangeBatch is the result of one record-zone fetch cycle.
type ChangeBatch struct {
	// ZoneID is the zone the batch was fetched from.
	ZoneID ZoneID `json:"zone_id"`

	// Upserted holds created or modified records.
	Upserted []Record `json:"upserted"`

	// Deleted holds identifiers of records removed on the server.
	Deleted []RecordID `json:"deleted"`

	// Token is the cursor to persist once the batch is applied.
	Token ChangeToken `json:"token"`

	// MoreComing is set when the server truncated the batch; the client
	// fetches again with Token.
	MoreComing bool `json:"more_coming"`
}

// IsEmpty reports whether the batch carries no record changes.
func (b ChangeBatch) IsEmpty() bool {
	return len(b.Upserted) == 0 && len(b.Deleted) == 0
}

// ZoneChangeBatch is the result of one database fetch cycle.
type ZoneChangeBatch struct {
	// Changed holds zones created or renamed since the token.
	Changed []Zone `json:"zones_changed"`

	// Deleted holds identifiers of zones removed since the token.
	Deleted []ZoneID `json:"zone_ids_deleted"`

	// Token is the cursor to persist once the batch is applied.
	Token ChangeToken `json:"token"`
}
