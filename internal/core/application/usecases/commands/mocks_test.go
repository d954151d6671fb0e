package commands_test

import (
	"context"

	"hiring/internal/core/application/usecases/commands"
	"hiring/internal/core/domain/model/job"
	"hiring/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Add(ctx context.Context, j *job.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockJobRepository) Update(ctx context.Context, j *job.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockJobRepository) Delete(ctx context.Context, id job.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

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

func (m *MockJobRepository) FindAll(context.Context) ([]*job.Job, error) { return nil, nil }

func (m *MockJobRepository) FindFeatured(context.Context) ([]*job.Job, error) { return nil, nil }

func (m *MockJobRepository) FindByCategory(context.Context, string) ([]*job.Job, error) {
	return nil, nil
}

func (m *MockJobRepository) FindByLocationContaining(context.Context, string) ([]*job.Job, error) {
	return nil, nil
}

func (m *MockJobRepository) FindWithFilters(context.Context, job.Filter) ([]*job.Job, error) {
	return nil, nil
}

func (m *MockJobRepository) FindAllCategories(context.Context) ([]string, error) { return nil, nil }

func (m *MockJobRepository) FindAllLocations(context.Context) ([]string, error) { return nil, nil }

type MockJobUoW struct{ mock.Mock }

func (m *MockJobUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockJobUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockJobUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockJobUoW) JobRepository() ports.JobRepository {
	args := m.Called()
	return args.Get(0).(ports.JobRepository)
}

type MockJobUoWFactory struct{ mock.Mock }

func (m *MockJobUoWFactory) Create() commands.JobUoW {
	args := m.Called()
	return args.Get(0).(commands.JobUoW)
}

type MockJobNotifier struct{ mock.Mock }

func (m *MockJobNotifier) NotifyJobPosted(ctx context.Context, j *job.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}
