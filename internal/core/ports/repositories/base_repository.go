package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager is embedded by repositories whose writes span several statements.
type TransactionManager interface {
	// Begin starts a new database transaction
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit commits a transaction
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback rolls back a transaction
	Rollback(ctx context.Context, tx pgx.Tx) error
}
