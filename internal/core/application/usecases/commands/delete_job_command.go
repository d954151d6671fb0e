package commands

import (
	"errors"

	"hiring/internal/core/domain/model/job"
	"hiring/internal/pkg/errs"
	"hiring/internal/pkg/guard"
)

var ErrDeleteJobCommandIsNotConstructed = errors.New(
	"DeleteJobCommand must be created via NewDeleteJobCommand constructor",
)

// DeleteJobCommand removes a listing. Deleting an unknown id succeeds.
type DeleteJobCommand struct { //nolint:recvcheck //using for validation
	jobID job.ID

	guard guard.ConstructorGuard
}

func NewDeleteJobCommand(jobID job.ID) (DeleteJobCommand, error) {
	if jobID.IsZero() {
		return DeleteJobCommand{}, errs.NewValueIsRequiredError("jobID")
	}

	return DeleteJobCommand{
		jobID: jobID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteJobCommand) Validate() error {
	return c.guard.Validate(ErrDeleteJobCommandIsNotConstructed)
}

func (c DeleteJobCommand) JobID() job.ID {
	return c.jobID
}
