package queries_test

import (
	"errors"
	"testing"
	"time"

	"hiring/internal/core/application/usecases/queries"
	"hiring/internal/core/domain/model/job"
	"hiring/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restored(t *testing.T, id job.ID, title, location, category string) *job.Job {
	t.Helper()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	j, err := job.RestoreJob(id, job.Details{Title: title, Location: location, Category: category}, 0, now, now)
	require.NoError(t, err)
	return j
}

func TestNewListJobsByCategoryQuery_RequiresCategory(t *testing.T) {
	_, err := queries.NewListJobsByCategoryQuery("  ")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestListJobsQuery_NotConstructed(t *testing.T) {
	h := queries.NewListJobsQueryHandler(new(MockJobRepository))
	_, err := h.Handle(testContext(t), queries.ListJobsQuery{})
	assert.ErrorIs(t, err, queries.ErrListJobsQueryIsNotConstructed)
}

func TestListJobsQueryHandler_Handle_Scopes(t *testing.T) {
	ctx := testContext(t)
	backend := restored(t, 1, "Backend Engineer", "Pune", "engineering")
	byCategory, _ := queries.NewListJobsByCategoryQuery("engineering")

	tests := []struct {
		name   string
		query  queries.ListJobsQuery
		method string
		args   []any
	}{
		{"all", queries.NewListAllJobsQuery(), "FindAll", []any{ctx}},
		{"featured", queries.NewListFeaturedJobsQuery(), "FindFeatured", []any{ctx}},
		{"category", byCategory, "FindByCategory", []any{ctx, "engineering"}},
		{"location", queries.NewListJobsByLocationQuery("pune"), "FindByLocationContaining", []any{ctx, "pune"}},
		{
			"search",
			queries.NewSearchJobsQuery(" engineer ", "all", "Pune"),
			"FindWithFilters",
			[]any{ctx, job.Filter{Search: "engineer", Location: "Pune"}},
		},
		{"blank search lists everything", queries.NewSearchJobsQuery("", "ALL", " "), "FindAll", []any{ctx}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockJobRepository)
			repo.On(tt.method, tt.args...).Return([]*job.Job{backend}, nil).Once()

			jobs, err := queries.NewListJobsQueryHandler(repo).Handle(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, []*job.Job{backend}, jobs)
			repo.AssertExpectations(t)
		})
	}
}

func TestListJobsQueryHandler_Handle_NilBecomesEmpty(t *testing.T) {
	ctx := testContext(t)
	repo := new(MockJobRepository)
	repo.On("FindFeatured", ctx).Return(nil, nil).Once()

	jobs, err := queries.NewListJobsQueryHandler(repo).Handle(ctx, queries.NewListFeaturedJobsQuery())
	require.NoError(t, err)
	assert.NotNil(t, jobs)
	assert.Empty(t, jobs)
}

func TestListJobsQueryHandler_Handle_RepositoryError(t *testing.T) {
	ctx := testContext(t)
	repo := new(MockJobRepository)
	repo.On("FindAll", ctx).Return(nil, errors.New("db down")).Once()

	_, err := queries.NewListJobsQueryHandler(repo).Handle(ctx, queries.NewListAllJobsQuery())
	assert.EqualError(t, err, "db down")
}
