package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for every command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of a write operation.
// Callers Begin, defer Rollback and Commit on success.
type UnitOfWork interface {
	// Begin starts a transaction. Calling it twice is a no-op.
	Begin(ctx context.Context) error

	// Commit makes every change since Begin permanent.
	// Returns an error if no transaction is active.
	Commit(ctx context.Context) error

	// Rollback discards every change since Begin.
	// Returns an error if no transaction is active.
	Rollback(ctx context.Context) error

	// JobRepository returns a repository bound to the current transaction,
	// or to the plain connection when Begin has not been called.
	JobRepository() JobRepository
}
