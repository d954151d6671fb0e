package queries_test

import (
	"context"

	"hiring/internal/core/domain/model/job"

	"github.com/stretchr/testify/mock"
)

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Add(context.Context, *job.Job) error    { return nil }
func (m *MockJobRepository) Update(context.Context, *job.Job) error { return nil }
func (m *MockJobRepository) Delete(context.Context, job.ID) error   { return nil }

func (m *MockJobRepository) Get(ctx context.Context, id job.ID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if j, ok := args.Get(0).(*job.Job); ok {
		return j, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJobRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJobRepository) FindAll(ctx context.Context) ([]*job.Job, error) {
	return m.jobs(m.Called(ctx))
}

func (m *MockJobRepository) FindFeatured(ctx context.Context) ([]*job.Job, error) {
	return m.jobs(m.Called(ctx))
}

func (m *MockJobRepository) FindByCategory(ctx context.Context, category string) ([]*job.Job, error) {
	return m.jobs(m.Called(ctx, category))
}

func (m *MockJobRepository) FindByLocationContaining(ctx context.Context, fragment string) ([]*job.Job, error) {
	return m.jobs(m.Called(ctx, fragment))
}

func (m *MockJobRepository) FindWithFilters(ctx context.Context, filter job.Filter) ([]*job.Job, error) {
	return m.jobs(m.Called(ctx, filter))
}

func (m *MockJobRepository) FindAllCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	values, _ := args.Get(0).([]string)
	return values, args.Error(1)
}

func (m *MockJobRepository) FindAllLocations(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	values, _ := args.Get(0).([]string)
	return values, args.Error(1)
}

func (m *MockJobRepository) jobs(args mock.Arguments) ([]*job.Job, error) {
	jobs, _ := args.Get(0).([]*job.Job)
	return jobs, args.Error(1)
}
