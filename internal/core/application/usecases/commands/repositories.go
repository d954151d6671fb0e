// Package commands contains business operations that modify job listings.
// Every handler validates its command, opens a unit of work, applies the
// change through the job repository and commits.
package commands

import (
	"context"
	"time"

	"hiring/internal/core/ports"
)

type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// JobRepoFactory provides access to the job repository within a transaction.
	JobRepoFactory interface {
		JobRepository() ports.JobRepository
	}

	// JobUoW manages a transaction over job aggregates.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.JobRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	JobUoW interface {
		TxManager
		JobRepoFactory
	}

	// JobUoWFactory creates new job unit of work instances.
	JobUoWFactory interface {
		Create() JobUoW
	}
)

// Clock returns the current time. Handlers that stamp aggregates take one so
// tests can pin it.
type Clock func() time.Time

// SystemClock is UTC wall time truncated to the microsecond precision both
// supported databases store.
func SystemClock() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
