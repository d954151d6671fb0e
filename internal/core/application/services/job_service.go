// Package services exposes the job use cases as one facade for inbound adapters.
//
// The facade translates "not found" from the command and query handlers into
// absent results: GetByID and Update return a nil job and a nil error for an
// unknown id, and Delete of an unknown id succeeds.
package services

import (
	"context"
	"errors"
	"log/slog"

	"hiring/internal/core/application/usecases/commands"
	"hiring/internal/core/application/usecases/queries"
	"hiring/internal/core/domain/model/job"
	"hiring/internal/pkg/errs"
)

// JobService is the application facade over job commands and queries.
type JobService struct {
	createJob  commands.CreateJobCommandHandler
	updateJob  commands.UpdateJobCommandHandler
	deleteJob  commands.DeleteJobCommandHandler
	seedJobs   commands.SeedDefaultJobsCommandHandler
	listJobs   queries.ListJobsQueryHandler
	getJob     queries.GetJobQueryHandler
	getFilters queries.GetFilterOptionsQueryHandler

	logger *slog.Logger
}

// Handlers groups the use case handlers the service delegates to.
type Handlers struct {
	CreateJob        commands.CreateJobCommandHandler
	UpdateJob        commands.UpdateJobCommandHandler
	DeleteJob        commands.DeleteJobCommandHandler
	SeedJobs         commands.SeedDefaultJobsCommandHandler
	ListJobs         queries.ListJobsQueryHandler
	GetJob           queries.GetJobQueryHandler
	GetFilterOptions queries.GetFilterOptionsQueryHandler
}

func NewJobService(h Handlers, logger *slog.Logger) *JobService {
	if logger == nil {
		logger = slog.Default()
	}
	return &JobService{
		createJob:  h.CreateJob,
		updateJob:  h.UpdateJob,
		deleteJob:  h.DeleteJob,
		seedJobs:   h.SeedJobs,
		listJobs:   h.ListJobs,
		getJob:     h.GetJob,
		getFilters: h.GetFilterOptions,
		logger:     logger.With("component", "job_service"),
	}
}

// SeedIfEmpty inserts the default listings when the store has no jobs.
// It is the explicit startup hook and is safe to call on every start.
func (s *JobService) SeedIfEmpty(ctx context.Context) error {
	seeded, err := s.seedJobs.Handle(ctx, commands.NewSeedDefaultJobsCommand())
	if err != nil {
		return err
	}
	if seeded == 0 {
		s.logger.DebugContext(ctx, "Seed skipped")
	}
	return nil
}

func (s *JobService) ListAll(ctx context.Context) ([]*job.Job, error) {
	return s.listJobs.Handle(ctx, queries.NewListAllJobsQuery())
}

func (s *JobService) ListFeatured(ctx context.Context) ([]*job.Job, error) {
	return s.listJobs.Handle(ctx, queries.NewListFeaturedJobsQuery())
}

// ListByCategory returns jobs whose category equals category exactly.
// A blank category matches nothing.
func (s *JobService) ListByCategory(ctx context.Context, category string) ([]*job.Job, error) {
	query, err := queries.NewListJobsByCategoryQuery(category)
	if errors.Is(err, errs.ErrValueIsRequired) {
		return make([]*job.Job, 0), nil
	}
	if err != nil {
		return nil, err
	}
	return s.listJobs.Handle(ctx, query)
}

// ListByLocation returns jobs whose location contains fragment, ignoring case.
func (s *JobService) ListByLocation(ctx context.Context, fragment string) ([]*job.Job, error) {
	return s.listJobs.Handle(ctx, queries.NewListJobsByLocationQuery(fragment))
}

// Search combines the criteria with AND. Blank criteria and "all" are ignored.
func (s *JobService) Search(ctx context.Context, search, category, location string) ([]*job.Job, error) {
	return s.listJobs.Handle(ctx, queries.NewSearchJobsQuery(search, category, location))
}

// GetByID returns nil, nil when no job has the id.
func (s *JobService) GetByID(ctx context.Context, id job.ID) (*job.Job, error) {
	query, err := queries.NewGetJobQuery(id)
	if err != nil {
		return nil, absentOr(err)
	}

	found, err := s.getJob.Handle(ctx, query)
	if err != nil {
		return nil, absentOr(err)
	}
	return found, nil
}

func (s *JobService) Create(ctx context.Context, details job.Details, applicants int) (*job.Job, error) {
	cmd, err := commands.NewCreateJobCommand(details, applicants)
	if err != nil {
		return nil, err
	}
	return s.createJob.Handle(ctx, cmd)
}

// Update overwrites the listing fields of job id. It returns nil, nil and
// writes nothing when no job has the id.
func (s *JobService) Update(ctx context.Context, id job.ID, details job.Details) (*job.Job, error) {
	if id.IsZero() {
		return nil, nil
	}

	cmd, err := commands.NewUpdateJobCommand(id, details)
	if err != nil {
		return nil, err
	}

	updated, err := s.updateJob.Handle(ctx, cmd)
	if err != nil {
		return nil, absentOr(err)
	}
	return updated, nil
}

// Delete removes job id; an unknown id is not an error.
func (s *JobService) Delete(ctx context.Context, id job.ID) error {
	if id.IsZero() {
		return nil
	}

	cmd, err := commands.NewDeleteJobCommand(id)
	if err != nil {
		return err
	}
	return s.deleteJob.Handle(ctx, cmd)
}

func (s *JobService) GetFilterOptions(ctx context.Context) (queries.FilterOptions, error) {
	return s.getFilters.Handle(ctx, queries.NewGetFilterOptionsQuery())
}

// absentOr swallows lookup misses and returns every other error.
func absentOr(err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) || errors.Is(err, errs.ErrValueIsRequired) {
		return nil
	}
	return err
}
