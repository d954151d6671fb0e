package commands

import (
	"context"

	"hiring/internal/core/domain/model/job"
)

// UpdateJobCommandHandler loads a listing, overwrites its details and saves it.
//
// Example:
//
//	cmd, _ := NewUpdateJobCommand(job.ID(7), details)
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // nothing was written
//	}
type UpdateJobCommandHandler struct {
	uowFactory JobUoWFactory
}

func NewUpdateJobCommandHandler(uowFactory JobUoWFactory) UpdateJobCommandHandler {
	return UpdateJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the updated job, or errs.ObjectNotFoundError when the id is unknown.
func (h UpdateJobCommandHandler) Handle(ctx context.Context, cmd UpdateJobCommand) (*job.Job, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.JobRepository()

	existing, err := repo.Get(ctx, cmd.JobID())
	if err != nil {
		return nil, err
	}

	if err = existing.Update(cmd.Details()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
