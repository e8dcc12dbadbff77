package store

import "errors"

// Sentinel errors returned by repositories. Missing zones and records are
// reported with models.ErrZoneNotFound and models.ErrRecordNotFound instead,
// since they cross the HTTP boundary.
var (
	// ErrNilDB is returned when migrating without a connection.
	ErrNilDB = errors.New("db is nil")
)

// Low-level database operation errors, wrapped by repository methods when a
// SQL-level operation fails before any domain logic can be applied.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
)
