package webhook

import (
	"context"
	"time"

	"gitlab-master-sync/internal/estimate"
	"gitlab-master-sync/internal/mastersync"
	pkgLog "gitlab-master-sync/pkg/log"
)

// Dispatcher runs webhook-requested jobs one at a time on a single worker.
// Each job kind has at most one pending run; requests arriving while one is
// pending are folded into it.
type Dispatcher struct {
	l          pkgLog.Logger
	syncUC     mastersync.UseCase
	estimateUC estimate.UseCase
	timeout    time.Duration
	pending    map[Job]chan struct{}
}

// NewDispatcher creates a Dispatcher. estimateUC may be nil, in which case estimate jobs are refused.
func NewDispatcher(l pkgLog.Logger, syncUC mastersync.UseCase, estimateUC estimate.UseCase, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = defaultJobTimeout
	}
	return &Dispatcher{
		l:          l,
		syncUC:     syncUC,
		estimateUC: estimateUC,
		timeout:    timeout,
		pending: map[Job]chan struct{}{
			JobSync:     make(chan struct{}, 1),
			JobEstimate: make(chan struct{}, 1),
		},
	}
}

// Supports reports whether the dispatcher can run job.
func (d *Dispatcher) Supports(job Job) bool {
	switch job {
	case JobSync:
		return d.syncUC != nil
	case JobEstimate:
		return d.estimateUC != nil
	default:
		return false
	}
}

// Enqueue schedules job. It returns false when an identical run is already pending.
func (d *Dispatcher) Enqueue(job Job) bool {
	ch, ok := d.pending[job]
	if !ok || !d.Supports(job) {
		return false
	}
	select {
	case ch <- struct{}{}:
		return true
	default:
		return false
	}
}

// Run executes pending jobs until ctx is done. Sync runs are preferred over estimate runs.
func (d *Dispatcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-d.pending[JobSync]:
			d.execute(ctx, JobSync)
		default:
			select {
			case <-ctx.Done():
				return
			case <-d.pending[JobSync]:
				d.execute(ctx, JobSync)
			case <-d.pending[JobEstimate]:
				d.execute(ctx, JobEstimate)
			}
		}
	}
}

func (d *Dispatcher) execute(parent context.Context, job Job) {
	ctx, cancel := context.WithTimeout(parent, d.timeout)
	defer cancel()

	d.l.Infof(ctx, "webhook.Dispatcher.execute: running %s", job)

	switch job {
	case JobSync:
		out, err := d.syncUC.Sync(ctx, mastersync.SyncInput{})
		if err != nil {
			d.l.Errorf(ctx, "webhook.Dispatcher.execute: sync failed: %v", err)
			return
		}
		d.l.Infof(ctx, "webhook.Dispatcher.execute: sync %s finished with %s", out.RunID, out.Status)
	case JobEstimate:
		out, err := d.estimateUC.Run(ctx, estimate.RunInput{})
		if err != nil {
			d.l.Errorf(ctx, "webhook.Dispatcher.execute: estimate failed: %v", err)
			return
		}
		d.l.Infof(ctx, "webhook.Dispatcher.execute: estimated %d issues of milestone %d", len(out.Issues), out.MilestoneID)
	}
}
