package commands

import (
	"context"
)

type DeleteJobCommandHandler struct {
	uowFactory JobUoWFactory
}

func NewDeleteJobCommandHandler(uowFactory JobUoWFactory) DeleteJobCommandHandler {
	return DeleteJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the job. A missing job is not an error.
func (h DeleteJobCommandHandler) Handle(ctx context.Context, cmd DeleteJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.JobRepository().Delete(ctx, cmd.JobID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
