package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/BruksfildServices01/pg-backoffice/internal/domain/activity"
	"github.com/BruksfildServices01/pg-backoffice/internal/models"
)

// Recorder persists one activity.
type Recorder interface {
	Record(ctx context.Context, in activity.Input) (*models.Activity, error)
}

type Options struct {
	// Sync writes inline on the caller's goroutine instead of queueing.
	Sync         bool
	QueueSize    int
	Workers      int
	WriteTimeout time.Duration
}

type job struct {
	ctx context.Context
	in  activity.Input
}

// Dispatcher records activities without ever failing the caller. Writes are
// time-boxed; in async mode a full queue drops the event.
type Dispatcher struct {
	rec     Recorder
	opts    Options
	metrics *Metrics

	queue chan job
	wg    sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(rec Recorder, opts Options, metrics *Metrics) *Dispatcher {
	if opts.QueueSize <= 0 {
		opts.QueueSize = 1000
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = 2 * time.Second
	}

	d := &Dispatcher{
		rec:     rec,
		opts:    opts,
		metrics: metrics,
	}

	if !opts.Sync {
		d.queue = make(chan job, opts.QueueSize)
		for i := 0; i < opts.Workers; i++ {
			d.wg.Add(1)
			go d.worker()
		}
	}

	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for j := range d.queue {
		if d.metrics != nil {
			d.metrics.QueueDepth.Dec()
		}
		d.write(j.ctx, j.in)
	}
}

// Dispatch records in. The request context only contributes values: its
// cancellation does not abort the write.
func (d *Dispatcher) Dispatch(ctx context.Context, in activity.Input) {
	ctx = context.WithoutCancel(ctx)

	if d.opts.Sync {
		d.write(ctx, in)
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.drop(ctx, in, "dispatcher closed")
		return
	}

	select {
	case d.queue <- job{ctx: ctx, in: in}:
		if d.metrics != nil {
			d.metrics.QueueDepth.Inc()
		}
	default:
		d.drop(ctx, in, "queue full")
	}
}

func (d *Dispatcher) write(ctx context.Context, in activity.Input) {
	ctx, cancel := context.WithTimeout(ctx, d.opts.WriteTimeout)
	defer cancel()

	start := time.Now()
	_, err := d.rec.Record(ctx, in)

	if d.metrics != nil {
		d.metrics.WriteTime.Observe(time.Since(start).Seconds())
		if err != nil {
			d.metrics.Failed.Inc()
		} else {
			d.metrics.Recorded.Inc()
		}
	}

	if err != nil {
		slog.ErrorContext(ctx, "activity record failed",
			"type", in.Type,
			"user_id", in.UserID,
			"error", err,
		)
	}
}

func (d *Dispatcher) drop(ctx context.Context, in activity.Input, reason string) {
	if d.metrics != nil {
		d.metrics.Dropped.Inc()
	}
	slog.WarnContext(ctx, "activity dropped",
		"reason", reason,
		"type", in.Type,
		"user_id", in.UserID,
	)
}

// Close stops accepting events and waits until queued ones are written.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	if d.queue != nil {
		close(d.queue)
	}
	d.mu.Unlock()

	d.wg.Wait()
}
