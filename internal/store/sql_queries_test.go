// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-share-cache/models"
)

func Test_buildRecordChangesQuery(t *testing.T) {
	tests := []struct {
		name         string
		since        int64
		wantArgs     []any
		wantTombless bool
	}{
		{
			name:         "from scratch skips tombstones",
			since:        0,
			wantArgs:     []any{models.ZoneID("z1"), int64(0), false},
			wantTombless: true,
		},
		{
			name:     "incremental keeps tombstones",
			since:    42,
			wantArgs: []any{models.ZoneID("z1"), int64(42)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildRecordChangesQuery("z1", tt.since, 100)
			require.NoError(t, err)

			assert.Equal(t, tt.wantArgs, args)
			assert.Contains(t, query, "FROM records")
			assert.Contains(t, query, "zone_id = $1")
			assert.Contains(t, query, "seq > $2")
			assert.Contains(t, query, "ORDER BY seq")
			// one row more than asked for
			assert.Contains(t, query, "LIMIT 101")
			assert.Equal(t, tt.wantTombless, strings.Contains(query, "deleted = $3"))
		})
	}
}

func Test_buildZoneChangesQuery(t *testing.T) {
	query, args, err := buildZoneChangesQuery(models.ScopeShared, 7)
	require.NoError(t, err)

	assert.Equal(t, []any{models.ScopeShared, int64(7)}, args)
	assert.Contains(t, query, "FROM zones WHERE scope = $1 AND seq > $2 ORDER BY seq")
}

func Test_buildUpsertRecordQuery(t *testing.T) {
	record := models.Record{
		ID:         "r1",
		Type:       models.RecordTypeShare,
		Name:       "share",
		Permission: models.PermissionReadOnly,
		ChangeTag:  "tag",
	}

	query, args, err := buildUpsertRecordQuery("z1", record)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.True(t, strings.HasPrefix(q, "insert into records"))
	assert.Contains(t, q, "on conflict (zone_id, record_id) do update")
	assert.Contains(t, q, "deleted = false")
	assert.Contains(t, q, "nextval('change_seq')")
	assert.Contains(t, q, "returning modified_at")
	require.Len(t, args, 8)
	assert.Equal(t, "read_only", args[6])
}

func Test_buildDeleteRecordQuery_OnlyLiveRows(t *testing.T) {
	query, args, err := buildDeleteRecordQuery("z1", "r1")
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE records SET deleted = $1, seq = nextval('change_seq'), modified_at = NOW()")
	assert.Contains(t, query, "RETURNING record_type")
	assert.Equal(t, []any{true, false, models.RecordID("r1"), models.ZoneID("z1")}, args)
}

func Test_buildDeleteCachedRecordsQuery(t *testing.T) {
	query, args, err := buildDeleteCachedRecordsQuery("z1", nil)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM cached_records WHERE zone_id = ?", query)
	assert.Len(t, args, 1)

	query, args, err = buildDeleteCachedRecordsQuery("z1", []models.RecordID{"a", "b"})
	require.NoError(t, err)
	assert.Contains(t, query, "record_id IN (?,?)")
	assert.Len(t, args, 3)
}

func Test_permissionText(t *testing.T) {
	assert.Equal(t, "", permissionText(models.PermissionUnknown))
	assert.Equal(t, "read_write", permissionText(models.PermissionReadWrite))
}
