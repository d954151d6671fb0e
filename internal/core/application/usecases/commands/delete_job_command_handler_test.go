package commands_test

import (
	"errors"
	"testing"

	"hiring/internal/core/application/usecases/commands"
	"hiring/internal/core/domain/model/job"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteJobCommandHandler_Handle_Success(t *testing.T) {
	ctx := testContext(t)
	cmd, _ := commands.NewDeleteJobCommand(8)

	repo := new(MockJobRepository)
	uow := new(MockJobUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(repo).Once(),
		repo.On("Delete", ctx, job.ID(8)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteJobCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteJobCommandHandler_Handle_DeleteError(t *testing.T) {
	ctx := testContext(t)
	cmd, _ := commands.NewDeleteJobCommand(8)

	repo := new(MockJobRepository)
	uow := new(MockJobUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(repo).Once(),
		repo.On("Delete", ctx, job.ID(8)).Return(errors.New("delete error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteJobCommandHandler(factory)
	require.EqualError(t, h.Handle(ctx, cmd), "delete error")
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestDeleteJobCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewDeleteJobCommandHandler(new(MockJobUoWFactory))
	require.ErrorIs(t, h.Handle(testContext(t), commands.DeleteJobCommand{}), commands.ErrDeleteJobCommandIsNotConstructed)
}
