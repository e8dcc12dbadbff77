// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package registry

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-share-cache/internal/logger"
	"github.com/MKhiriev/go-share-cache/internal/mock"
	"github.com/MKhiriev/go-share-cache/models"
)

func setupRegistry(t *testing.T) (*Registry, *mock.MockDomainManager, *mock.MockAccountSource) {
	t.Helper()

	ctrl := gomock.NewController(t)
	domains := mock.NewMockDomainManager(ctrl)
	accounts := mock.NewMockAccountSource(ctrl)
	r := NewRegistry(domains, accounts, 20*time.Millisecond, logger.Nop())
	t.Cleanup(r.Stop)

	return r, domains, accounts
}

func TestRegistry_Reconcile(t *testing.T) {
	r, domains, accounts := setupRegistry(t)
	ctx := context.Background()

	domains.EXPECT().Domains(ctx).Return([]models.Domain{
		{ID: "d-keep", DisplayName: "Alice", AccountID: "a1"},
		{ID: "d-orphan", DisplayName: "Gone", AccountID: "a9"},
	}, nil)
	accounts.EXPECT().Accounts(ctx).Return([]models.Account{
		{ID: "a1", DisplayName: "Alice", DomainID: "d-keep"},
		{ID: "a2", DisplayName: "Bob", DomainID: "d-new"},
	}, nil)

	gomock.InOrder(
		domains.EXPECT().RemoveDomain(ctx, models.DomainID("d-orphan")).Return(nil),
		domains.EXPECT().AddDomain(ctx, models.Domain{ID: "d-new", DisplayName: "Bob", AccountID: "a2"}).Return(nil),
	)

	require.NoError(t, r.Reconcile(ctx))

	states := r.Domains()
	require.Len(t, states, 2)
	assert.Equal(t, models.DomainID("d-keep"), states[0].Domain.ID)
	assert.Equal(t, models.DomainID("d-new"), states[1].Domain.ID)
	for _, s := range states {
		assert.NotNil(t, s.Progress)
	}
}

func TestRegistry_ReconcileIsIdempotent(t *testing.T) {
	r, domains, accounts := setupRegistry(t)
	ctx := context.Background()

	list := []models.Domain{{ID: "d1", DisplayName: "Alice", AccountID: "a1"}}
	domains.EXPECT().Domains(ctx).Return(list, nil).Times(2)
	accounts.EXPECT().Accounts(ctx).Return([]models.Account{{ID: "a1", DisplayName: "Alice", DomainID: "d1"}}, nil).Times(2)
	// no AddDomain / RemoveDomain calls are expected

	require.NoError(t, r.Reconcile(ctx))
	first, ok := r.Progress("d1")
	require.True(t, ok)

	require.NoError(t, r.Reconcile(ctx))
	second, ok := r.Progress("d1")
	require.True(t, ok)

	assert.Same(t, first, second, "progress handle survives reconciliation")
}

func TestRegistry_ReconcileUpdatesRenamedAccount(t *testing.T) {
	r, domains, accounts := setupRegistry(t)
	ctx := context.Background()

	domains.EXPECT().Domains(ctx).Return([]models.Domain{{ID: "d1", DisplayName: "Old", AccountID: "a1"}}, nil)
	accounts.EXPECT().Accounts(ctx).Return([]models.Account{{ID: "a1", DisplayName: "New", DomainID: "d1"}}, nil)
	domains.EXPECT().AddDomain(ctx, models.Domain{ID: "d1", DisplayName: "New", AccountID: "a1"}).Return(nil)

	require.NoError(t, r.Reconcile(ctx))
	assert.Equal(t, "New", r.Domains()[0].Domain.DisplayName)
}

func TestRegistry_ReconcileErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	t.Run("domains list fails", func(t *testing.T) {
		r, domains, _ := setupRegistry(t)
		domains.EXPECT().Domains(ctx).Return(nil, boom)

		assert.ErrorIs(t, r.Reconcile(ctx), boom)
	})

	t.Run("accounts list fails", func(t *testing.T) {
		r, domains, accounts := setupRegistry(t)
		domains.EXPECT().Domains(ctx).Return(nil, nil)
		accounts.EXPECT().Accounts(ctx).Return(nil, boom)

		assert.ErrorIs(t, r.Reconcile(ctx), boom)
	})

	t.Run("failed removal keeps going", func(t *testing.T) {
		r, domains, accounts := setupRegistry(t)
		domains.EXPECT().Domains(ctx).Return([]models.Domain{{ID: "d1"}}, nil)
		accounts.EXPECT().Accounts(ctx).Return([]models.Account{{ID: "a2", DomainID: "d2"}}, nil)
		domains.EXPECT().RemoveDomain(ctx, models.DomainID("d1")).Return(boom)
		domains.EXPECT().AddDomain(ctx, gomock.Any()).Return(nil)

		err := r.Reconcile(ctx)
		assert.ErrorIs(t, err, boom)
		require.Len(t, r.Domains(), 1)
		assert.Equal(t, "a2", r.Domains()[0].Domain.DisplayName)
	})
}

func TestRegistry_SignalsAreCoalesced(t *testing.T) {
	r, domains, accounts := setupRegistry(t)

	var runs atomic.Int32
	domains.EXPECT().Domains(gomock.Any()).DoAndReturn(func(context.Context) ([]models.Domain, error) {
		runs.Add(1)
		return nil, nil
	}).Times(1)
	accounts.EXPECT().Accounts(gomock.Any()).Return(nil, nil).Times(1)

	for range 5 {
		r.Signal()
	}

	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())
}
