package commands

import (
	"errors"
	"strings"

	"hiring/internal/core/domain/model/job"
	"hiring/internal/pkg/errs"
	"hiring/internal/pkg/guard"
)

var ErrUpdateJobCommandIsNotConstructed = errors.New(
	"UpdateJobCommand must be created via NewUpdateJobCommand constructor",
)

// UpdateJobCommand overwrites the editable fields of an existing listing.
// The id, applicant counter and timestamps are never part of an update.
type UpdateJobCommand struct { //nolint:recvcheck //using for validation
	jobID   job.ID
	details job.Details

	guard guard.ConstructorGuard
}

func NewUpdateJobCommand(jobID job.ID, details job.Details) (UpdateJobCommand, error) {
	cmd := UpdateJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setDetails(details),
	); err != nil {
		return UpdateJobCommand{}, err
	}

	return cmd, nil
}

func (c UpdateJobCommand) Validate() error {
	return c.guard.Validate(ErrUpdateJobCommandIsNotConstructed)
}

func (c UpdateJobCommand) JobID() job.ID {
	return c.jobID
}

func (c UpdateJobCommand) Details() job.Details {
	return c.details
}

func (c *UpdateJobCommand) setJobID(jobID job.ID) error {
	if jobID.IsZero() {
		return errs.NewValueIsRequiredError("jobID")
	}

	c.jobID = jobID
	return nil
}

func (c *UpdateJobCommand) setDetails(details job.Details) error {
	if strings.TrimSpace(details.Title) == "" {
		return errs.NewValueIsRequiredError("title")
	}

	c.details = details
	return nil
}
