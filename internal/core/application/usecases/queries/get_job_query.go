package queries

import (
	"errors"

	"hiring/internal/core/domain/model/job"
	"hiring/internal/pkg/errs"
	"hiring/internal/pkg/guard"
)

var ErrGetJobQueryIsNotConstructed = errors.New(
	"GetJobQuery must be created via NewGetJobQuery constructor",
)

// GetJobQuery retrieves a single listing by id.
type GetJobQuery struct {
	jobID job.ID

	guard guard.ConstructorGuard
}

func NewGetJobQuery(jobID job.ID) (GetJobQuery, error) {
	if jobID.IsZero() {
		return GetJobQuery{}, errs.NewValueIsRequiredError("jobID")
	}
	return GetJobQuery{jobID: jobID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetJobQuery) Validate() error {
	return q.guard.Validate(ErrGetJobQueryIsNotConstructed)
}

func (q GetJobQuery) JobID() job.ID {
	return q.jobID
}
