package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-share-cache/internal/logger"
	"github.com/MKhiriev/go-share-cache/internal/mock"
	"github.com/MKhiriev/go-share-cache/internal/service"
	"github.com/MKhiriev/go-share-cache/internal/validators"
	"github.com/MKhiriev/go-share-cache/models"
)

func TestAccountService_ListAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAccountRepository(ctrl)
	svc := service.NewAccountService(repo, nil, logger.Nop())

	want := []models.Account{{ID: "a1", DisplayName: "Alice", DomainID: "d1"}}
	repo.EXPECT().ListAccounts(gomock.Any()).Return(want, nil)

	got, err := svc.ListAccounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	repo.EXPECT().ListAccounts(gomock.Any()).Return(nil, errors.New("boom"))
	_, err = svc.ListAccounts(context.Background())
	assert.Error(t, err)
}

func TestAccountService_SaveAccountSignals(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAccountRepository(ctrl)
	signals := mock.NewMockSignalPublisher(ctrl)
	svc := service.NewAccountService(repo, signals, logger.Nop())

	account := models.Account{ID: "a1", DisplayName: "Alice"}
	gomock.InOrder(
		repo.EXPECT().SaveAccount(gomock.Any(), account).Return(nil),
		signals.EXPECT().Publish(gomock.Any(), models.Signal{Kind: models.SignalAccounts}).Return(nil),
	)

	require.NoError(t, svc.SaveAccount(context.Background(), account))
}

func TestAccountService_SaveAccountInvalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.NewAccountService(mock.NewMockAccountRepository(ctrl), mock.NewMockSignalPublisher(ctrl), logger.Nop())

	err := svc.SaveAccount(context.Background(), models.Account{ID: "a1"})
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyDisplayName)
}
