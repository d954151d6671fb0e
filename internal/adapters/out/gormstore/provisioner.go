package gormstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// AvailabilityTimeout bounds a single availability probe.
const AvailabilityTimeout = 5 * time.Second

// ErrDatabaseUnavailable is returned by WaitUntilAvailable once every attempt failed.
var ErrDatabaseUnavailable = errors.New("database not available")

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Provisioner checks that the pooled connection can reach the database.
//
// Example:
//
//	db, _ := gormstore.Open(cfg, logger)
//	sqlDB, _ := db.DB()
//	p := gormstore.NewProvisioner(sqlDB, logger)
//	if err := p.WaitUntilAvailable(ctx, 30, 2*time.Second); err != nil {
//	    log.Fatal(err)
//	}
type Provisioner struct {
	pinger  Pinger
	timeout time.Duration
	logger  *slog.Logger
}

// NewProvisioner creates a provisioner probing through pinger.
func NewProvisioner(pinger Pinger, logger *slog.Logger) *Provisioner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Provisioner{
		pinger:  pinger,
		timeout: AvailabilityTimeout,
		logger:  logger.With("component", "db_provisioner"),
	}
}

// IsAvailable acquires a connection and validates it within AvailabilityTimeout.
// Any failure reports false.
func (p *Provisioner) IsAvailable(ctx context.Context) bool {
	if p.pinger == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.pinger.PingContext(ctx); err != nil {
		p.logger.DebugContext(ctx, "Database ping failed", "error", err)
		return false
	}
	return true
}

// WaitUntilAvailable polls IsAvailable up to maxRetries times, sleeping delay
// between attempts. It returns nil on the first success and
// ErrDatabaseUnavailable after the last failed attempt. Cancelling ctx stops
// the wait with the context error.
func (p *Provisioner) WaitUntilAvailable(ctx context.Context, maxRetries int, delay time.Duration) error {
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if p.IsAvailable(ctx) {
			if attempt > 1 {
				p.logger.InfoContext(ctx, "Database became available", "attempt", attempt)
			}
			return nil
		}

		p.logger.WarnContext(ctx, "Database not available yet",
			"attempt", attempt, "max_retries", maxRetries, "retry_in", delay)

		if attempt == maxRetries {
			break
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return fmt.Errorf("%w after %d attempts", ErrDatabaseUnavailable, maxRetries)
}
