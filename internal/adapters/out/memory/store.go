// Package memory keeps job listings in process memory.
//
// It backs the service when the database is switched off (DB_ENABLED=false)
// and gives application tests a real, transactional store without Docker.
// A unit of work snapshots the committed state on Begin and publishes its
// working copy on Commit; writers are serialised, readers never block on an
// open transaction.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"hiring/internal/core/domain/model/job"
	"hiring/internal/core/ports"
	"hiring/internal/pkg/errs"
)

type row struct {
	details    job.Details
	applicants int
	createdAt  time.Time
	updatedAt  time.Time
}

type state struct {
	rows   map[job.ID]row
	lastID job.ID
}

func newState() *state {
	return &state{rows: make(map[job.ID]row)}
}

func (s *state) clone() *state {
	c := &state{rows: make(map[job.ID]row, len(s.rows)), lastID: s.lastID}
	for id, r := range s.rows {
		c.rows[id] = r
	}
	return c
}

// sorted returns the jobs accepted by keep in id order.
func (s *state) sorted(keep func(*job.Job) bool) ([]*job.Job, error) {
	ids := make([]job.ID, 0, len(s.rows))
	for id := range s.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, k int) bool { return ids[i] < ids[k] })

	jobs := make([]*job.Job, 0, len(ids))
	for _, id := range ids {
		j, err := s.restore(id)
		if err != nil {
			return nil, err
		}
		if keep == nil || keep(j) {
			jobs = append(jobs, j)
		}
	}
	return jobs, nil
}

func (s *state) restore(id job.ID) (*job.Job, error) {
	r, ok := s.rows[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("job", uint64(id))
	}
	return job.RestoreJob(id, r.details, r.applicants, r.createdAt, r.updatedAt)
}

// Store is the shared committed state.
type Store struct {
	mu        sync.RWMutex
	writerMu  sync.Mutex
	committed *state
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{committed: newState()}
}

// UnitOfWorkFactory implements ports.UnitOfWorkFactory over a Store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory sharing store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create returns a unit of work with no active transaction.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork is not safe for concurrent use; create one per operation.
type UnitOfWork struct {
	store   *Store
	working *state
}

// Begin takes the writer lock and snapshots the committed state.
// A second call while a transaction is active does nothing.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.working != nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	uow.store.writerMu.Lock()
	uow.store.mu.RLock()
	uow.working = uow.store.committed.clone()
	uow.store.mu.RUnlock()
	return nil
}

// Commit publishes the working copy and releases the writer lock.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.working == nil {
		return ErrNoTransaction
	}

	uow.store.mu.Lock()
	uow.store.committed = uow.working
	uow.store.mu.Unlock()

	uow.working = nil
	uow.store.writerMu.Unlock()
	return nil
}

// Rollback drops the working copy and releases the writer lock.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.working == nil {
		return ErrNoTransaction
	}

	uow.working = nil
	uow.store.writerMu.Unlock()
	return nil
}

// JobRepository returns a repository over the working copy, or over the
// committed state when no transaction is active.
func (uow *UnitOfWork) JobRepository() ports.JobRepository {
	if uow.working != nil {
		return &JobRepository{access: txAccess{working: uow.working}}
	}
	return &JobRepository{access: storeAccess{store: uow.store}}
}

// access hides whether a repository works on a transaction or on the store.
type access interface {
	read(fn func(*state) error) error
	write(fn func(*state) error) error
}

type txAccess struct {
	working *state
}

func (a txAccess) read(fn func(*state) error) error  { return fn(a.working) }
func (a txAccess) write(fn func(*state) error) error { return fn(a.working) }

// storeAccess auto-commits every write.
type storeAccess struct {
	store *Store
}

func (a storeAccess) read(fn func(*state) error) error {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()
	return fn(a.store.committed)
}

func (a storeAccess) write(fn func(*state) error) error {
	a.store.writerMu.Lock()
	defer a.store.writerMu.Unlock()

	working := a.store.committed.clone()
	if err := fn(working); err != nil {
		return err
	}

	a.store.mu.Lock()
	a.store.committed = working
	a.store.mu.Unlock()
	return nil
}
