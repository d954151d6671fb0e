package commands

import (
	"context"
	"log/slog"

	"hiring/internal/core/domain/model/job"
)

// SeedDefaultJobsCommandHandler inserts DefaultJobs in one transaction when
// the store is empty.
//
// Example:
//
//	handler := NewSeedDefaultJobsCommandHandler(uowFactory, nil, logger)
//	seeded, err := handler.Handle(ctx, NewSeedDefaultJobsCommand())
//	if err != nil {
//	    return fmt.Errorf("seed jobs: %w", err)
//	}
type SeedDefaultJobsCommandHandler struct {
	uowFactory JobUoWFactory
	clock      Clock
	logger     *slog.Logger
}

func NewSeedDefaultJobsCommandHandler(
	uowFactory JobUoWFactory,
	clock Clock,
	logger *slog.Logger,
) SeedDefaultJobsCommandHandler {
	if clock == nil {
		clock = SystemClock
	}
	if logger == nil {
		logger = slog.Default()
	}
	return SeedDefaultJobsCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		logger:     logger.With("component", "job_seeder"),
	}
}

// Handle returns the number of jobs inserted: zero when the store already had jobs.
func (h SeedDefaultJobsCommandHandler) Handle(ctx context.Context, cmd SeedDefaultJobsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.JobRepository()

	count, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		h.logger.DebugContext(ctx, "Jobs already present, skipping seed", "count", count)
		return 0, nil
	}

	h.logger.InfoContext(ctx, "Initializing default jobs")

	now := h.clock()
	for _, d := range defaultJobs {
		seeded, newErr := job.NewJob(d.details, d.applicants, now)
		if newErr != nil {
			return 0, newErr
		}
		if err = repo.Add(ctx, seeded); err != nil {
			return 0, err
		}
	}

	if count, err = repo.Count(ctx); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.logger.InfoContext(ctx, "Created default jobs", "count", count)
	return len(defaultJobs), nil
}
