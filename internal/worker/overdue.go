package worker

import (
	"context"
	"fmt"
	"time"

	"bookstore/internal/lending"
	"bookstore/pkg/logger"
	"bookstore/pkg/metrics"
	"bookstore/pkg/storage"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// OverdueAuditWorker periodically counts the active loans that have been out
// past the late threshold and publishes the count as a gauge. Returning such a
// loan penalizes the member; the audit gives operators visibility into how
// many penalties are pending before the books actually come back.
type OverdueAuditWorker struct {
	river.WorkerDefaults[lending.OverdueAuditArgs]

	// storage is used to count overdue loans.
	storage storage.Storage
	// latePeriod is the duration after which an open loan counts as overdue.
	latePeriod time.Duration
	// clock returns the current time; it defaults to time.Now and exists so
	// tests can pin the clock.
	clock func() time.Time
}

// NewOverdueAuditWorker constructs an OverdueAuditWorker using the provided
// storage and lending options.
func NewOverdueAuditWorker(st storage.Storage, options lending.Options) *OverdueAuditWorker {
	clock := options.Clock
	if clock == nil {
		clock = time.Now
	}

	return &OverdueAuditWorker{
		storage:    st,
		latePeriod: options.LatePeriod,
		clock:      clock,
	}
}

// Work executes a single audit run.
func (o *OverdueAuditWorker) Work(ctx context.Context, job *river.Job[lending.OverdueAuditArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	cutoff := o.clock().Add(-o.latePeriod)
	count, err := o.storage.CountOverdueLoans(ctx, cutoff)
	if err != nil {
		logger.Error(ctx, "error counting overdue loans", zap.Error(err))

		return fmt.Errorf("could not count overdue loans: %w", err)
	}

	metrics.OverdueLoans.Set(float64(count))
	logger.Info(ctx, "overdue loan audit completed",
		zap.Int64("overdueLoans", count),
		zap.Time("cutoff", cutoff))

	return nil
}
