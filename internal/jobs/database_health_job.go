package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultDatabaseHealthSpec runs the probe every 30 seconds.
const DefaultDatabaseHealthSpec = "*/30 * * * * *"

// AvailabilityChecker is satisfied by gormstore.Provisioner.
type AvailabilityChecker interface {
	IsAvailable(ctx context.Context) bool
}

// DatabaseHealthJob probes the database on a schedule and logs every
// change of availability. The first probe only records the state.
type DatabaseHealthJob struct {
	checker AvailabilityChecker
	spec    string
	cron    *cron.Cron
	logger  *slog.Logger

	mu        sync.RWMutex
	probed    bool
	available bool
	checkedAt time.Time
}

// NewDatabaseHealthJob creates the job. An empty spec means DefaultDatabaseHealthSpec.
func NewDatabaseHealthJob(checker AvailabilityChecker, spec string, logger *slog.Logger) *DatabaseHealthJob {
	if spec == "" {
		spec = DefaultDatabaseHealthSpec
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DatabaseHealthJob{
		checker: checker,
		spec:    spec,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "database_health_job"),
	}
}

func (j *DatabaseHealthJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, func() { j.Probe(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Database health job started", "spec", j.spec)
	return nil
}

func (j *DatabaseHealthJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Database health job stopped")
}

// Probe runs one availability check and returns its result.
func (j *DatabaseHealthJob) Probe(ctx context.Context) bool {
	available := j.checker.IsAvailable(ctx)

	j.mu.Lock()
	changed := j.probed && available != j.available
	j.probed = true
	j.available = available
	j.checkedAt = time.Now()
	j.mu.Unlock()

	switch {
	case changed && available:
		j.logger.InfoContext(ctx, "Database is available again")
	case changed:
		j.logger.ErrorContext(ctx, "Database became unavailable")
	case !available:
		j.logger.WarnContext(ctx, "Database is unavailable")
	}

	return available
}

// Status returns the last probe result and its time. ok is false before the first probe.
func (j *DatabaseHealthJob) Status() (available bool, checkedAt time.Time, ok bool) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.available, j.checkedAt, j.probed
}
