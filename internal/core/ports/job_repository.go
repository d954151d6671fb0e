package ports

import (
	"context"

	"hiring/internal/core/domain/model/job"
)

// JobRepository is the persistence contract for job listings.
// List methods return an empty, non-nil slice when nothing matches;
// the order of results is chosen by the store.
type JobRepository interface {
	// Add persists a new job and assigns its identifier.
	Add(ctx context.Context, aggregate *job.Job) error

	// Update persists the current state of an existing job.
	// Returns errs.ObjectNotFoundError when the job is gone.
	Update(ctx context.Context, aggregate *job.Job) error

	// Delete removes the job with the given id. Deleting a missing id is not an error.
	Delete(ctx context.Context, id job.ID) error

	// Get returns the job with the given id or errs.ObjectNotFoundError.
	Get(ctx context.Context, id job.ID) (*job.Job, error)

	// Count returns the number of stored jobs.
	Count(ctx context.Context) (int64, error)

	// FindAll returns every job.
	FindAll(ctx context.Context) ([]*job.Job, error)

	// FindFeatured returns jobs flagged as featured.
	FindFeatured(ctx context.Context) ([]*job.Job, error)

	// FindByCategory returns jobs whose category equals category exactly.
	FindByCategory(ctx context.Context, category string) ([]*job.Job, error)

	// FindByLocationContaining returns jobs whose location contains fragment, ignoring case.
	FindByLocationContaining(ctx context.Context, fragment string) ([]*job.Job, error)

	// FindWithFilters returns jobs matching every non-empty criterion of filter.
	FindWithFilters(ctx context.Context, filter job.Filter) ([]*job.Job, error)

	// FindAllCategories returns the distinct non-empty categories in use.
	FindAllCategories(ctx context.Context) ([]string, error)

	// FindAllLocations returns the distinct non-empty locations in use.
	FindAllLocations(ctx context.Context) ([]string, error)
}
