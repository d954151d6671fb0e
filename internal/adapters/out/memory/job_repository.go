package memory

import (
	"context"
	"errors"
	"sort"

	"hiring/internal/core/domain/model/job"
	"hiring/internal/pkg/errs"
)

// ErrNoTransaction is returned by Commit and Rollback without a prior Begin.
var ErrNoTransaction = errors.New("no active transaction")

// JobRepository implements ports.JobRepository in memory.
type JobRepository struct {
	access access
}

func (r *JobRepository) Add(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !aggregate.ID().IsZero() {
		return job.ErrIDAlreadyAssigned
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var id job.ID
	err := r.access.write(func(s *state) error {
		s.lastID++
		id = s.lastID
		s.rows[id] = toRow(aggregate)
		return nil
	})
	if err != nil {
		return err
	}
	return aggregate.AssignID(id)
}

func (r *JobRepository) Update(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.access.write(func(s *state) error {
		current, ok := s.rows[aggregate.ID()]
		if !ok {
			return errs.NewObjectNotFoundError("job", uint64(aggregate.ID()))
		}
		updated := toRow(aggregate)
		updated.createdAt = current.createdAt
		s.rows[aggregate.ID()] = updated
		return nil
	})
}

func (r *JobRepository) Delete(ctx context.Context, id job.ID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.access.write(func(s *state) error {
		delete(s.rows, id)
		return nil
	})
}

func (r *JobRepository) Get(ctx context.Context, id job.ID) (*job.Job, error) {
	var found *job.Job
	err := r.read(ctx, func(s *state) (err error) {
		found, err = s.restore(id)
		return err
	})
	return found, err
}

func (r *JobRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.read(ctx, func(s *state) error {
		count = int64(len(s.rows))
		return nil
	})
	return count, err
}

func (r *JobRepository) FindAll(ctx context.Context) ([]*job.Job, error) {
	return r.find(ctx, nil)
}

func (r *JobRepository) FindFeatured(ctx context.Context) ([]*job.Job, error) {
	return r.find(ctx, func(j *job.Job) bool { return j.Featured() })
}

func (r *JobRepository) FindByCategory(ctx context.Context, category string) ([]*job.Job, error) {
	return r.find(ctx, func(j *job.Job) bool { return j.Category() == category })
}

func (r *JobRepository) FindByLocationContaining(ctx context.Context, fragment string) ([]*job.Job, error) {
	return r.find(ctx, func(j *job.Job) bool { return job.ContainsFold(j.Location(), fragment) })
}

func (r *JobRepository) FindWithFilters(ctx context.Context, filter job.Filter) ([]*job.Job, error) {
	return r.find(ctx, filter.Matches)
}

func (r *JobRepository) FindAllCategories(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, func(d job.Details) string { return d.Category })
}

func (r *JobRepository) FindAllLocations(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, func(d job.Details) string { return d.Location })
}

func (r *JobRepository) read(ctx context.Context, fn func(*state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.access.read(fn)
}

func (r *JobRepository) find(ctx context.Context, keep func(*job.Job) bool) ([]*job.Job, error) {
	var jobs []*job.Job
	err := r.read(ctx, func(s *state) (err error) {
		jobs, err = s.sorted(keep)
		return err
	})
	return jobs, err
}

func (r *JobRepository) distinct(ctx context.Context, field func(job.Details) string) ([]string, error) {
	values := make([]string, 0)
	err := r.read(ctx, func(s *state) error {
		seen := make(map[string]struct{})
		for _, r := range s.rows {
			v := field(r.details)
			if v == "" {
				continue
			}
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				values = append(values, v)
			}
		}
		return nil
	})
	sort.Strings(values)
	return values, err
}

func toRow(j *job.Job) row {
	return row{
		details:    j.Details(),
		applicants: j.Applicants(),
		createdAt:  j.CreatedAt(),
		updatedAt:  j.UpdatedAt(),
	}
}
