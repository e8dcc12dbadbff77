package cache

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-share-cache/models"
)

type fetchResult struct {
	batch models.ChangeBatch
	err   error
}

// fakeRemote replays scripted fetch results and records every call.
type fakeRemote struct {
	mu       sync.Mutex
	fetches  []fetchResult
	tokens   []models.ChangeToken
	modified []models.ModifyRecordsRequest
	pushErr  error
}

func (f *fakeRemote) FetchRecordChanges(_ context.Context, _ models.ZoneID, token models.ChangeToken) (models.ChangeBatch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.tokens = append(f.tokens, token)
	if len(f.fetches) == 0 {
		return models.ChangeBatch{Token: token}, nil
	}
	next := f.fetches[0]
	f.fetches = f.fetches[1:]
	return next.batch, next.err
}

func (f *fakeRemote) ModifyRecords(_ context.Context, req models.ModifyRecordsRequest) (models.ModifyRecordsResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.modified = append(f.modified, req)
	return models.ModifyRecordsResponse{Saved: req.Save, Deleted: req.Delete}, f.pushErr
}

// memoryStore keeps snapshots in memory and logs the order of writes.
type memoryStore struct {
	mu      sync.Mutex
	records map[models.ZoneID]map[models.RecordID]models.Record
	zones   map[models.Scope]map[models.ZoneID]models.Zone
	tokens  map[string]models.ChangeToken
	calls   []string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		records: make(map[models.ZoneID]map[models.RecordID]models.Record),
		zones:   make(map[models.Scope]map[models.ZoneID]models.Zone),
		tokens:  make(map[string]models.ChangeToken),
	}
}

func (m *memoryStore) LoadRecords(_ context.Context, zoneID models.ZoneID) ([]models.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Record
	for _, r := range m.records[zoneID] {
		out = append(out, r)
	}
	return out, nil
}

func (m *memoryStore) SaveRecords(_ context.Context, zoneID models.ZoneID, save []models.Record, deleted []models.RecordID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, "records")
	if m.records[zoneID] == nil {
		m.records[zoneID] = make(map[models.RecordID]models.Record)
	}
	for _, id := range deleted {
		delete(m.records[zoneID], id)
	}
	for _, r := range save {
		m.records[zoneID][r.ID] = r
	}
	return nil
}

func (m *memoryStore) DeleteZoneRecords(_ context.Context, zoneID models.ZoneID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, zoneID)
	return nil
}

func (m *memoryStore) LoadZones(_ context.Context, scope models.Scope) ([]models.Zone, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Zone
	for _, z := range m.zones[scope] {
		out = append(out, z)
	}
	return out, nil
}

func (m *memoryStore) SaveZones(_ context.Context, scope models.Scope, save []models.Zone, deleted []models.ZoneID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, "zones")
	if m.zones[scope] == nil {
		m.zones[scope] = make(map[models.ZoneID]models.Zone)
	}
	for _, id := range deleted {
		delete(m.zones[scope], id)
	}
	for _, z := range save {
		m.zones[scope][z.ID] = z
	}
	return nil
}

func (m *memoryStore) LoadToken(_ context.Context, key string) (models.ChangeToken, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.tokens[key], nil
}

func (m *memoryStore) SaveToken(_ context.Context, key string, token models.ChangeToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, "token")
	if token.IsZero() {
		delete(m.tokens, key)
		return nil
	}
	m.tokens[key] = token
	return nil
}

func (m *memoryStore) callLog() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// eventLog is a synchronous Publisher.
type eventLog[T any] struct {
	mu     sync.Mutex
	events []T
}

func (e *eventLog[T]) Publish(_ context.Context, event T) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, event)
	return nil
}

func (e *eventLog[T]) all() []T {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]T(nil), e.events...)
}

type seqIDs struct {
	mu sync.Mutex
	n  int
}

func (s *seqIDs) Generate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return "local-" + string(rune('0'+s.n))
}
