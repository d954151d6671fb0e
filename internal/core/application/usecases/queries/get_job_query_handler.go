package queries

import (
	"context"

	"hiring/internal/core/domain/model/job"
	"hiring/internal/core/ports"
)

type GetJobQueryHandler struct {
	repo ports.JobRepository
}

func NewGetJobQueryHandler(repo ports.JobRepository) GetJobQueryHandler {
	return GetJobQueryHandler{repo: repo}
}

// Handle returns the job or the repository's errs.ObjectNotFoundError.
func (h GetJobQueryHandler) Handle(ctx context.Context, query GetJobQuery) (*job.Job, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.repo.Get(ctx, query.JobID())
}
