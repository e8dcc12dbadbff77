package store

import (
	"github.com/jackc/pgerrcode"
)

// ErrorClassification tells a writer whether to repeat a failed transaction.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// retryableCodes are the SQLSTATEs after which a record or zone write is
// repeated as a whole: lost connections and rolled back transactions.
var retryableCodes = map[string]struct{}{
	pgerrcode.ConnectionException:    {},
	pgerrcode.ConnectionDoesNotExist: {},
	pgerrcode.ConnectionFailure:      {},
	pgerrcode.TransactionRollback:    {},
	pgerrcode.SerializationFailure:   {},
	pgerrcode.DeadlockDetected:       {},
	pgerrcode.CannotConnectNow:       {},
}

// PostgresErrorClassifier sorts pgx errors by SQLSTATE. Errors without a
// code, constraint violations included, are never retried.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if _, ok := retryableCodes[postgresError(err)]; ok {
		return Retryable
	}
	return NonRetryable
}
