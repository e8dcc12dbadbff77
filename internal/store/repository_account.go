package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-share-cache/internal/logger"
	"github.com/MKhiriev/go-share-cache/models"
)

type accountRepository struct {
	*DB
	logger *logger.Logger
}

func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	return &accountRepository{
		DB:     db,
		logger: logger,
	}
}

func (a *accountRepository) ListAccounts(ctx context.Context) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAccountsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := a.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.ListAccounts").Msg("failed to list accounts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	accounts := make([]models.Account, 0, 8)
	for rows.Next() {
		var account models.Account
		if err := rows.Scan(&account.ID, &account.DisplayName, &account.DomainID); err != nil {
			log.Err(err).Str("func", "accountRepository.ListAccounts").Msg("failed to scan account row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return accounts, nil
}

func (a *accountRepository) SaveAccount(ctx context.Context, account models.Account) error {
	query, args, err := buildSaveAccountQuery(account)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := a.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "accountRepository.SaveAccount").
			Str("account_id", account.ID).
			Msg("failed to save account")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
