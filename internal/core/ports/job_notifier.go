package ports

import (
	"context"

	"hiring/internal/core/domain/model/job"
)

// JobNotifier announces newly posted jobs outside the system.
type JobNotifier interface {
	NotifyJobPosted(ctx context.Context, posted *job.Job) error
}
