// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ModifyRecordsRequest saves and deletes records of a single zone in one
// server transaction.
type ModifyRecordsRequest struct {
	// ZoneID is the zone every record belongs to.
	ZoneID ZoneID `json:"zone_id"`

	// Save holds records to create or overwrite.
	Save []Record `json:"save,omitempty"`

	// Delete holds identifiers of records to remove. Deleting a topic also
	// removes its notes.
	Delete []RecordID `json:"delete,omitempty"`
}

// ModifyRecordsResponse echoes the stored versions of saved records.
type ModifyRecordsResponse struct {
	// Saved holds the records as stored, with fresh change tags.
	Saved []Record `json:"saved"`

	// Deleted holds the identifiers that were tombstoned, including cascaded
	// notes.
	Deleted []RecordID `json:"deleted"`
}

// AccountsResponse lists remote accounts.
type AccountsResponse struct {
	Accounts []Account `json:"accounts"`
	Length   int       `json:"length"`
}
