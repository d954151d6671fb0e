package commands

import (
	"errors"

	"hiring/internal/pkg/guard"
)

var ErrSeedDefaultJobsCommandIsNotConstructed = errors.New(
	"SeedDefaultJobsCommand must be created via NewSeedDefaultJobsCommand constructor",
)

// SeedDefaultJobsCommand fills an empty store with the sample listings.
// It runs once at startup and does nothing when any job exists.
type SeedDefaultJobsCommand struct {
	guard guard.ConstructorGuard
}

func NewSeedDefaultJobsCommand() SeedDefaultJobsCommand {
	return SeedDefaultJobsCommand{guard: guard.NewConstructorGuard()}
}

func (c SeedDefaultJobsCommand) Validate() error {
	return c.guard.Validate(ErrSeedDefaultJobsCommandIsNotConstructed)
}
