package queries

import (
	"context"
	"fmt"

	"hiring/internal/core/domain/model/job"
	"hiring/internal/core/ports"
)

// ListJobsQueryHandler dispatches a ListJobsQuery to the matching repository finder.
type ListJobsQueryHandler struct {
	repo ports.JobRepository
}

func NewListJobsQueryHandler(repo ports.JobRepository) ListJobsQueryHandler {
	return ListJobsQueryHandler{repo: repo}
}

// Handle returns the matching jobs, never nil on success.
func (h ListJobsQueryHandler) Handle(ctx context.Context, query ListJobsQuery) ([]*job.Job, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		jobs []*job.Job
		err  error
	)

	switch query.Scope() {
	case ScopeAll:
		jobs, err = h.repo.FindAll(ctx)
	case ScopeFeatured:
		jobs, err = h.repo.FindFeatured(ctx)
	case ScopeCategory:
		jobs, err = h.repo.FindByCategory(ctx, query.Category())
	case ScopeLocation:
		jobs, err = h.repo.FindByLocationContaining(ctx, query.Location())
	case ScopeSearch:
		if query.Filter().IsEmpty() {
			jobs, err = h.repo.FindAll(ctx)
		} else {
			jobs, err = h.repo.FindWithFilters(ctx, query.Filter())
		}
	default:
		return nil, fmt.Errorf("unknown list scope %d", query.Scope())
	}
	if err != nil {
		return nil, err
	}

	if jobs == nil {
		jobs = make([]*job.Job, 0)
	}
	return jobs, nil
}
