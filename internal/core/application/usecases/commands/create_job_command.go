package commands

import (
	"errors"
	"strings"

	"hiring/internal/core/domain/model/job"
	"hiring/internal/pkg/errs"
	"hiring/internal/pkg/guard"
)

var ErrCreateJobCommandIsNotConstructed = errors.New(
	"CreateJobCommand must be created via NewCreateJobCommand constructor",
)

// CreateJobCommand represents a request to post a new job listing.
//
// Example:
//
//	cmd, err := NewCreateJobCommand(job.Details{Title: "Backend Engineer"}, 0)
//	if err != nil {
//	    return fmt.Errorf("invalid job data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateJobCommand struct { //nolint:recvcheck //using for validation
	details    job.Details
	applicants int

	guard guard.ConstructorGuard
}

// NewCreateJobCommand validates the listing fields and the initial applicant count.
func NewCreateJobCommand(details job.Details, applicants int) (CreateJobCommand, error) {
	cmd := CreateJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDetails(details),
		cmd.setApplicants(applicants),
	); err != nil {
		return CreateJobCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateJobCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobCommandIsNotConstructed)
}

func (c CreateJobCommand) Details() job.Details {
	return c.details
}

func (c CreateJobCommand) Applicants() int {
	return c.applicants
}

func (c *CreateJobCommand) setDetails(details job.Details) error {
	if strings.TrimSpace(details.Title) == "" {
		return errs.NewValueIsRequiredError("title")
	}

	c.details = details
	return nil
}

func (c *CreateJobCommand) setApplicants(applicants int) error {
	if applicants < 0 || applicants > job.MaxApplicants {
		return errs.NewValueIsOutOfRangeError("applicants", applicants, 0, job.MaxApplicants)
	}

	c.applicants = applicants
	return nil
}
