package lending

import "github.com/riverqueue/river"

// OverdueAuditArgs is the (empty) payload of the periodic overdue-loan audit
// job. The job is scheduled by the worker's periodic job config rather than
// enqueued ad hoc, so it carries no arguments.
type OverdueAuditArgs struct{}

// Kind returns the River job kind used to register and dispatch the audit worker.
func (OverdueAuditArgs) Kind() string { return "OverdueAuditJob" }

// InsertOpts limits the queue to a single audit job at a time.
func (OverdueAuditArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
		},
	}
}
