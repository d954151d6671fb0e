package commands

import (
	"context"
	"log/slog"
	"time"

	"hiring/internal/core/domain/model/job"
	"hiring/internal/core/ports"
)

// DefaultNotifyTimeout bounds how long a create request waits for the announcement.
const DefaultNotifyTimeout = 10 * time.Second

// CreateJobCommandHandler stores a new listing and announces it.
// A failed or timed out announcement is logged; the listing stays created.
type CreateJobCommandHandler struct {
	uowFactory    JobUoWFactory
	notifier      ports.JobNotifier
	notifyTimeout time.Duration
	clock         Clock
	logger        *slog.Logger
}

// NewCreateJobCommandHandler creates the handler. notifier may be nil.
func NewCreateJobCommandHandler(
	uowFactory JobUoWFactory,
	notifier ports.JobNotifier,
	clock Clock,
	logger *slog.Logger,
) CreateJobCommandHandler {
	if clock == nil {
		clock = SystemClock
	}
	if logger == nil {
		logger = slog.Default()
	}
	return CreateJobCommandHandler{
		uowFactory:    uowFactory,
		notifier:      notifier,
		notifyTimeout: DefaultNotifyTimeout,
		clock:         clock,
		logger:        logger.With("component", "create_job"),
	}
}

// WithNotifyTimeout returns a copy of h that gives up on the announcement
// after d. Non-positive values keep the current timeout.
func (h CreateJobCommandHandler) WithNotifyTimeout(d time.Duration) CreateJobCommandHandler {
	if d > 0 {
		h.notifyTimeout = d
	}
	return h
}

// Handle persists the job and returns it with its assigned id.
func (h CreateJobCommandHandler) Handle(ctx context.Context, cmd CreateJobCommand) (*job.Job, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	created, err := job.NewJob(cmd.Details(), cmd.Applicants(), h.clock())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.JobRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Job created", "job_id", created.ID(), "title", created.Title())

	h.announce(ctx, created)

	return created, nil
}

func (h CreateJobCommandHandler) announce(ctx context.Context, created *job.Job) {
	if h.notifier == nil {
		return
	}

	notifyCtx, cancel := context.WithTimeout(ctx, h.notifyTimeout)
	defer cancel()

	if err := h.notifier.NotifyJobPosted(notifyCtx, created); err != nil {
		h.logger.WarnContext(ctx, "Failed to announce job", "job_id", created.ID(), "error", err)
	}
}
