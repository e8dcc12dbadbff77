// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-share-cache/internal/config"
	"github.com/MKhiriev/go-share-cache/internal/logger"
	"github.com/MKhiriev/go-share-cache/internal/mock"
	"github.com/MKhiriev/go-share-cache/internal/service"
	"github.com/MKhiriev/go-share-cache/internal/store"
	"github.com/MKhiriev/go-share-cache/internal/validators"
	"github.com/MKhiriev/go-share-cache/models"
)

var testApp = config.App{TokenSignKey: "test-key", TokenTTL: time.Hour, Version: "1.0.0"}

type changeFeedFixture struct {
	zones   *mock.MockZoneRepository
	records *mock.MockRecordRepository
	signals *mock.MockSignalPublisher
	svc     service.ChangeFeedService
}

func newChangeFeedFixture(t *testing.T, pageSize int) *changeFeedFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &changeFeedFixture{
		zones:   mock.NewMockZoneRepository(ctrl),
		records: mock.NewMockRecordRepository(ctrl),
		signals: mock.NewMockSignalPublisher(ctrl),
	}

	svc, err := service.NewChangeFeedService(f.zones, f.records, f.signals, testApp, pageSize, logger.Nop())
	require.NoError(t, err)
	f.svc = svc
	return f
}

func TestNewChangeFeedService_RequiresTokenConfig(t *testing.T) {
	_, err := service.NewChangeFeedService(nil, nil, nil, config.App{}, 10, logger.Nop())
	assert.ErrorIs(t, err, service.ErrInvalidTokenConfig)
}

func TestChangeFeedService_RecordChangesTokenCarriesSeq(t *testing.T) {
	f := newChangeFeedFixture(t, 50)
	ctx := context.Background()

	zone := models.Zone{ID: "z1", Name: "Home", Scope: models.ScopePrivate}
	f.zones.EXPECT().GetZone(gomock.Any(), models.ZoneID("z1")).Return(zone, nil).Times(2)

	first := store.RecordChanges{
		Upserted:   []models.Record{{ID: "t1", Type: models.RecordTypeTopic, Name: "A"}},
		Seq:        5,
		MoreComing: true,
	}
	gomock.InOrder(
		f.records.EXPECT().RecordChanges(gomock.Any(), models.ZoneID("z1"), int64(0), 50).Return(first, nil),
		f.records.EXPECT().RecordChanges(gomock.Any(), models.ZoneID("z1"), int64(5), 10).
			Return(store.RecordChanges{Deleted: []models.RecordID{"t1"}, Seq: 6}, nil),
	)

	batch, err := f.svc.RecordChanges(ctx, models.RecordChangesRequest{ZoneID: "z1"})
	require.NoError(t, err)
	assert.Equal(t, models.ZoneID("z1"), batch.ZoneID)
	assert.Len(t, batch.Upserted, 1)
	assert.True(t, batch.MoreComing)
	require.False(t, batch.Token.IsZero())

	next, err := f.svc.RecordChanges(ctx, models.RecordChangesRequest{ZoneID: "z1", Token: batch.Token, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []models.RecordID{"t1"}, next.Deleted)
	assert.False(t, next.MoreComing)
}

func TestChangeFeedService_RecordChangesInvalidToken(t *testing.T) {
	f := newChangeFeedFixture(t, 0)

	_, err := f.svc.RecordChanges(context.Background(), models.RecordChangesRequest{
		ZoneID: "z1",
		Token:  models.ChangeToken("garbage"),
	})
	assert.ErrorIs(t, err, models.ErrChangeTokenExpired)
}

func TestChangeFeedService_RecordChangesTokenOfOtherZone(t *testing.T) {
	f := newChangeFeedFixture(t, 0)
	ctx := context.Background()

	f.zones.EXPECT().GetZone(gomock.Any(), models.ZoneID("z1")).Return(models.Zone{ID: "z1"}, nil)
	f.records.EXPECT().RecordChanges(gomock.Any(), models.ZoneID("z1"), int64(0), gomock.Any()).
		Return(store.RecordChanges{Seq: 3}, nil)

	batch, err := f.svc.RecordChanges(ctx, models.RecordChangesRequest{ZoneID: "z1"})
	require.NoError(t, err)

	_, err = f.svc.RecordChanges(ctx, models.RecordChangesRequest{ZoneID: "z2", Token: batch.Token})
	assert.ErrorIs(t, err, models.ErrChangeTokenExpired)
}

func TestChangeFeedService_RecordChangesUnknownZone(t *testing.T) {
	f := newChangeFeedFixture(t, 0)

	f.zones.EXPECT().GetZone(gomock.Any(), models.ZoneID("gone")).Return(models.Zone{}, models.ErrZoneNotFound)

	_, err := f.svc.RecordChanges(context.Background(), models.RecordChangesRequest{ZoneID: "gone"})
	assert.ErrorIs(t, err, models.ErrZoneNotFound)
}

func TestChangeFeedService_ZoneChanges(t *testing.T) {
	f := newChangeFeedFixture(t, 0)
	ctx := context.Background()

	gomock.InOrder(
		f.zones.EXPECT().ZoneChanges(gomock.Any(), models.ScopeShared, int64(0)).
			Return(store.ZoneChanges{Changed: []models.Zone{{ID: "z1", Name: "A"}}, Seq: 9}, nil),
		f.zones.EXPECT().ZoneChanges(gomock.Any(), models.ScopeShared, int64(9)).
			Return(store.ZoneChanges{Deleted: []models.ZoneID{"z1"}, Seq: 10}, nil),
	)

	batch, err := f.svc.ZoneChanges(ctx, models.ZoneChangesRequest{Scope: models.ScopeShared})
	require.NoError(t, err)
	assert.Len(t, batch.Changed, 1)

	next, err := f.svc.ZoneChanges(ctx, models.ZoneChangesRequest{Scope: models.ScopeShared, Token: batch.Token})
	require.NoError(t, err)
	assert.Equal(t, []models.ZoneID{"z1"}, next.Deleted)

	// a token of the shared database is useless for the private one
	_, err = f.svc.ZoneChanges(ctx, models.ZoneChangesRequest{Scope: models.ScopePrivate, Token: batch.Token})
	assert.ErrorIs(t, err, models.ErrChangeTokenExpired)
}

func TestChangeFeedService_ModifyRecordsStampsTagsAndSignals(t *testing.T) {
	f := newChangeFeedFixture(t, 0)

	req := models.ModifyRecordsRequest{
		ZoneID: "z1",
		Save:   []models.Record{{ID: "t1", Type: models.RecordTypeTopic, Name: "A"}},
		Delete: []models.RecordID{"t0"},
	}

	f.records.EXPECT().
		ModifyRecords(gomock.Any(), models.ZoneID("z1"), gomock.Any(), []models.RecordID{"t0"}).
		DoAndReturn(func(_ context.Context, _ models.ZoneID, save []models.Record, del []models.RecordID) (store.ModifiedRecords, error) {
			require.Len(t, save, 1)
			assert.Equal(t, models.ZoneID("z1"), save[0].ZoneID)
			assert.NotEmpty(t, save[0].ChangeTag)
			return store.ModifiedRecords{Saved: save, Deleted: []models.RecordID{"t0", "n0"}}, nil
		})
	f.signals.EXPECT().Publish(gomock.Any(), models.Signal{Kind: models.SignalRecords, ZoneID: "z1"}).Return(nil)

	resp, err := f.svc.ModifyRecords(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []models.RecordID{"t0", "n0"}, resp.Deleted)
	require.Len(t, resp.Saved, 1)
	assert.NotEmpty(t, resp.Saved[0].ChangeTag)
	// the caller's slice is left untouched
	assert.Empty(t, req.Save[0].ChangeTag)
}

func TestChangeFeedService_ModifyRecordsErrorSkipsSignal(t *testing.T) {
	f := newChangeFeedFixture(t, 0)

	f.records.EXPECT().ModifyRecords(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(store.ModifiedRecords{}, models.ErrRecordNotFound)

	_, err := f.svc.ModifyRecords(context.Background(), models.ModifyRecordsRequest{
		ZoneID: "z1",
		Delete: []models.RecordID{"missing"},
	})
	assert.ErrorIs(t, err, models.ErrRecordNotFound)
}

func TestChangeFeedService_SignalFailureIsNotAnError(t *testing.T) {
	f := newChangeFeedFixture(t, 0)
	zone := models.Zone{ID: "z1", Name: "Home", Scope: models.ScopePrivate}

	f.zones.EXPECT().SaveZone(gomock.Any(), zone).Return(int64(1), nil)
	f.signals.EXPECT().Publish(gomock.Any(), models.Signal{Kind: models.SignalZones, Scope: models.ScopePrivate}).
		Return(errors.New("bus closed"))

	saved, err := f.svc.SaveZone(context.Background(), zone)
	require.NoError(t, err)
	assert.Equal(t, zone, saved)
}

func TestChangeFeedService_DeleteZone(t *testing.T) {
	f := newChangeFeedFixture(t, 0)

	f.zones.EXPECT().DeleteZone(gomock.Any(), models.ZoneID("z1")).
		Return(models.Zone{ID: "z1", Scope: models.ScopeShared}, nil)
	f.signals.EXPECT().Publish(gomock.Any(), models.Signal{Kind: models.SignalZones, Scope: models.ScopeShared}).Return(nil)

	require.NoError(t, f.svc.DeleteZone(context.Background(), "z1"))

	f.zones.EXPECT().DeleteZone(gomock.Any(), models.ZoneID("z2")).Return(models.Zone{}, models.ErrZoneNotFound)
	assert.ErrorIs(t, f.svc.DeleteZone(context.Background(), "z2"), models.ErrZoneNotFound)
}

func TestChangeFeedValidationService(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockChangeFeedService(ctrl)
	svc := service.NewChangeFeedValidationService().Wrap(inner)
	ctx := context.Background()

	tests := []struct {
		name    string
		call    func() error
		wantErr error
	}{
		{
			name: "bad scope",
			call: func() error {
				_, err := svc.ZoneChanges(ctx, models.ZoneChangesRequest{Scope: "public"})
				return err
			},
			wantErr: validators.ErrInvalidScope,
		},
		{
			name: "empty zone",
			call: func() error {
				_, err := svc.RecordChanges(ctx, models.RecordChangesRequest{})
				return err
			},
			wantErr: validators.ErrEmptyZoneID,
		},
		{
			name: "note without parent",
			call: func() error {
				_, err := svc.ModifyRecords(ctx, models.ModifyRecordsRequest{
					ZoneID: "z1",
					Save:   []models.Record{{ID: "n1", Type: models.RecordTypeNote}},
				})
				return err
			},
			wantErr: validators.ErrNoteWithoutParent,
		},
		{
			name: "zone without name",
			call: func() error {
				_, err := svc.SaveZone(ctx, models.Zone{ID: "z1", Scope: models.ScopePrivate})
				return err
			},
			wantErr: validators.ErrEmptyZoneName,
		},
		{
			name:    "delete empty zone",
			call:    func() error { return svc.DeleteZone(ctx, "") },
			wantErr: validators.ErrEmptyZoneID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestChangeFeedValidationService_PassesValidRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockChangeFeedService(ctrl)
	svc := service.NewChangeFeedValidationService().Wrap(inner)

	req := models.RecordChangesRequest{ZoneID: "z1", Limit: 10}
	inner.EXPECT().RecordChanges(gomock.Any(), req).Return(models.ChangeBatch{ZoneID: "z1"}, nil)

	batch, err := svc.RecordChanges(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.ZoneID("z1"), batch.ZoneID)
}
