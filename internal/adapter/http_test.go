// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-share-cache/internal/config"
	"github.com/MKhiriev/go-share-cache/internal/logger"
	"github.com/MKhiriev/go-share-cache/internal/utils"
	"github.com/MKhiriev/go-share-cache/models"
)

func newTestAdapter(t *testing.T, handler http.HandlerFunc) ServerAdapter {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	assert.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: "https://cache.example.com/", want: "https://cache.example.com"},
		{raw: "  http://127.0.0.1:9000  ", want: "http://127.0.0.1:9000"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAddress)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFetchZoneChanges(t *testing.T) {
	want := models.ZoneChangeBatch{
		Changed: []models.Zone{{ID: "z1", Name: "Inbox", Scope: models.ScopeShared}},
		Token:   models.ChangeToken("tok"),
	}

	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/zones/changes", r.URL.Path)

		var req models.ZoneChangesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.ScopeShared, req.Scope)
		assert.Equal(t, models.ChangeToken("prev"), req.Token)

		writeJSON(t, w, want)
	})

	got, err := a.FetchZoneChanges(context.Background(), models.ScopeShared, models.ChangeToken("prev"))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFetchRecordChanges(t *testing.T) {
	want := models.ChangeBatch{
		ZoneID:     "z1",
		Upserted:   []models.Record{{ID: "t1", ZoneID: "z1", Type: models.RecordTypeTopic, Name: "Go"}},
		Deleted:    []models.RecordID{},
		Token:      models.ChangeToken("next"),
		MoreComing: true,
	}

	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/records/changes", r.URL.Path)

		var req models.RecordChangesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.ZoneID("z1"), req.ZoneID)
		assert.True(t, req.Token.IsZero())

		writeJSON(t, w, want)
	})

	got, err := a.FetchRecordChanges(context.Background(), "z1", nil)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFetchRecordChanges_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"expired token", http.StatusGone, "change token expired", models.ErrChangeTokenExpired},
		{"zone gone", http.StatusNotFound, "zone not found", models.ErrZoneNotFound},
		{"record missing", http.StatusNotFound, "record not found", models.ErrRecordNotFound},
		{"404 without sentinel", http.StatusNotFound, "404 page not found", ErrUnexpectedStatus},
		{"empty 404", http.StatusNotFound, "", ErrUnexpectedStatus},
		{"bad request", http.StatusBadRequest, "empty zone id", ErrBadRequest},
		{"server failure", http.StatusInternalServerError, "Internal Server Error", ErrInternalServerError},
		{"unexpected", http.StatusTeapot, "", ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, tt.body, tt.status)
			})

			_, err := a.FetchRecordChanges(context.Background(), "z1", models.ChangeToken("t"))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestModifyRecords(t *testing.T) {
	req := models.ModifyRecordsRequest{
		ZoneID: "z1",
		Save:   []models.Record{{ID: "n1", Type: models.RecordTypeNote, ParentID: "t1", Name: "first"}},
	}
	want := models.ModifyRecordsResponse{
		Saved:   []models.Record{{ID: "n1", ZoneID: "z1", Type: models.RecordTypeNote, ParentID: "t1", Name: "first", ChangeTag: "ct"}},
		Deleted: []models.RecordID{},
	}

	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/records/modify", r.URL.Path)

		var got models.ModifyRecordsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, req, got)

		writeJSON(t, w, want)
	})

	got, err := a.ModifyRecords(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveZone(t *testing.T) {
	zone := models.Zone{ID: "z1", Name: "Work", Scope: models.ScopePrivate}

	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/zones", r.URL.Path)

		var req models.SaveZoneRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		writeJSON(t, w, req.Zone)
	})

	got, err := a.SaveZone(context.Background(), zone)
	require.NoError(t, err)
	assert.Equal(t, zone, got)
}

func TestDeleteZone(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/zones/z-7", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, a.DeleteZone(context.Background(), "z-7"))
}

func TestDeleteZone_NotFound(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "zone not found", http.StatusNotFound)
	})

	assert.ErrorIs(t, a.DeleteZone(context.Background(), "z-7"), models.ErrZoneNotFound)
}

func TestAccounts(t *testing.T) {
	accounts := []models.Account{{ID: "a1", DisplayName: "Alice", DomainID: "d1"}}

	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/accounts", r.URL.Path)
		writeJSON(t, w, models.AccountsResponse{Accounts: accounts, Length: 1})
	})

	got, err := a.Accounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, accounts, got)
}

func TestVersion(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("v0.4.1\n"))
	})

	got, err := a.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v0.4.1", got)
}

func TestRequests_ForwardTraceID(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "trace-9", r.Header.Get(utils.TraceIDHeader))
		writeJSON(t, w, models.AccountsResponse{})
	})

	_, err := a.Accounts(utils.WithTraceID(context.Background(), "trace-9"))
	assert.NoError(t, err)
}
