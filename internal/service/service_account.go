package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-share-cache/internal/logger"
	"github.com/MKhiriev/go-share-cache/internal/store"
	"github.com/MKhiriev/go-share-cache/internal/validators"
	"github.com/MKhiriev/go-share-cache/models"
)

type accountService struct {
	accounts  store.AccountRepository
	signals   SignalPublisher
	validator validators.Validator

	logger *logger.Logger
}

func NewAccountService(accounts store.AccountRepository, signals SignalPublisher, logger *logger.Logger) AccountService {
	return &accountService{
		accounts:  accounts,
		signals:   signals,
		validator: validators.NewChangeFeedValidator(),
		logger:    logger,
	}
}

func (s *accountService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	accounts, err := s.accounts.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing accounts: %w", err)
	}
	return accounts, nil
}

// SaveAccount stores account and tells connected registries to reconcile.
func (s *accountService) SaveAccount(ctx context.Context, account models.Account) error {
	if err := s.validator.Validate(ctx, account); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := s.accounts.SaveAccount(ctx, account); err != nil {
		return fmt.Errorf("error saving account %s: %w", account.ID, err)
	}

	if s.signals != nil {
		if err := s.signals.Publish(ctx, models.Signal{Kind: models.SignalAccounts}); err != nil {
			s.logger.Warn().Err(err).Msg("accounts signal not published")
		}
	}
	return nil
}
